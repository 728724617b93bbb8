package cmd

import (
	"flag"

	"github.com/etnz/finengine/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request and exits, it returns when the program
// is not run for completion. Install with COMP_INSTALL=1 fincalc.
func Complete(name string) {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(f)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	root.Complete(name)
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) { flags[fl.Name] = predictFlag(fl) })
	return flags
}

func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "format":
		return predict.Set{"markdown", "html", "json"}
	case "period":
		return predict.Set{"month", "quarter", "year"}
	case "in", "scenario":
		return predict.Files("*.*json")
	case "rounding":
		return predict.Set{"half-up", "half-down", "half-even", "up", "down", "ceiling", "floor"}
	case "rules":
		return predict.Files("*.yaml")
	case "xlsx":
		return predict.Files("*.xlsx")
	default:
		return predict.Something
	}
}
