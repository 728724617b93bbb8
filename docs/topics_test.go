package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/finengine/insights"
	"github.com/hjson/hjson-go/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the files.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	one, err := GetTopic("amortization")
	if err != nil {
		t.Fatalf("GetTopic() error = %v", err)
	}
	if !strings.Contains(all, one) {
		t.Errorf("GetTopics(*) does not contain the amortization topic")
	}
	if _, err := GetTopics("amortization", "nosuchtopic"); err == nil {
		t.Errorf("GetTopics() with an unknown topic: want error")
	}
}

// Block is a fenced code block of a topic.
type Block struct {
	Lang    string
	Content string
	File    string
}

// parseMarkdown returns the level of the first heading of file and its code blocks.
func parseMarkdown(t *testing.T, file string) (level int, blocks []Block) {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if level == 0 {
				level = n.Level
			}
		case *ast.FencedCodeBlock:
			var b strings.Builder
			for i := 0; i < n.Lines().Len(); i++ {
				line := n.Lines().At(i)
				b.Write(line.Value(content))
			}
			blocks = append(blocks, Block{Lang: string(n.Language(content)), Content: b.String(), File: file})
		}
		return ast.WalkContinue, nil
	})
	return level, blocks
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			level, blocks := parseMarkdown(t, file)
			if level != 1 {
				t.Errorf("%s does not start with a level 1 heading", file)
			}
			for _, b := range blocks {
				switch b.Lang {
				case "json", "hjson":
					var v any
					if err := hjson.Unmarshal([]byte(b.Content), &v); err != nil {
						t.Errorf("%s: invalid %s block: %v\n%s", b.File, b.Lang, err, b.Content)
					}
				case "yaml":
					if _, err := insights.LoadConfiguration(strings.NewReader(b.Content)); err != nil {
						t.Errorf("%s: invalid rule configuration: %v\n%s", b.File, err, b.Content)
					}
				}
			}
		})
	}
}
