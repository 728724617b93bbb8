package cmd

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/renderer"
	"github.com/google/subcommands"
	"github.com/hjson/hjson-go/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// decodeInput reads a JSON or Hjson file into v.
// Hjson is decoded to generic values first and re-encoded so that v's JSON decoding
// (Cents, decimals, dates) applies unchanged.
func decodeInput(path string, v any) error {
	if path == "" {
		return fmt.Errorf("%w: missing -in file", finengine.ErrInvalidInput)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	opts := hjson.DefaultDecoderOptions()
	opts.UseJSONNumber = true
	var generic any
	if err := hjson.UnmarshalWithOptions(data, &generic, opts); err != nil {
		return fmt.Errorf("%w: %s: %v", finengine.ErrInvalidInput, path, err)
	}
	data, err = json.Marshal(generic)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	dec.UseNumber() // scenario values stay exact
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", finengine.ErrInvalidInput, path, err)
	}
	log.WithField("file", path).Debug("input decoded")
	return nil
}

// output holds the flags shared by every report command.
type output struct {
	format string
	query  string
	raw    bool
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "markdown", "Output format (markdown, html, json)")
	f.StringVar(&o.query, "query", "", "JSONPath expression selecting part of the json output, e.g. $.summary")
	f.BoolVar(&o.raw, "raw", false, "Print markdown as is, without terminal styling")
}

func (o *output) options() renderer.Options { return renderer.Options{Currency: *currency} }

func (o *output) check() error {
	switch o.format {
	case "markdown", "html", "json":
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
	if o.query != "" && o.format != "json" {
		return fmt.Errorf("-query requires -format json")
	}
	return nil
}

// print writes the report: md in markdown or html, v in json.
func (o *output) print(md string, v any) error {
	switch o.format {
	case "json":
		return printJSON(v, o.query)
	case "html":
		var b bytes.Buffer
		if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &b); err != nil {
			return err
		}
		_, err := stdout.Write(b.Bytes())
		return err
	default:
		if o.raw {
			_, err := fmt.Fprint(stdout, md)
			return err
		}
		printMarkdown(md)
		return nil
	}
}

// printMarkdown renders md for the terminal, falling back to plain markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.WithError(err).Debug("terminal rendering failed")
	fmt.Fprint(stdout, md)
}

func printJSON(v any, query string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if query != "" {
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		if v, err = jsonpath.Get(query, generic); err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail reports err on stderr.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage reports a flag problem on stderr.
func usage(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
