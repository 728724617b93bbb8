package insights

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/etnz/finengine"
)

// Generate computes the metrics of in and evaluates every enabled rule of cfg.
//
// Insights are sorted by severity (alerts first), then rule priority, then id, so the
// same input always yields the same list.
func Generate(in Input, cfg Configuration) (Report, error) {
	metrics, err := ComputeMetrics(in)
	if err != nil {
		return Report{}, err
	}
	e := evaluation{in: in, metrics: metrics}
	log := finengine.Log("insights")

	insights := []Insight{}
	for _, id := range Rules {
		rc := cfg.Rule(id)
		if !rc.Enabled {
			log.Debugf("rule %s is disabled", id)
			continue
		}
		found, err := ruleFuncs[id](e, rc)
		if err != nil {
			return Report{}, fmt.Errorf("rule %s: %w", id, err)
		}
		for _, ins := range found {
			ins.Rule = id
			ins.Priority = rc.Priority
			insights = append(insights, ins)
		}
	}
	SortInsights(insights)
	return Report{ReferenceDate: in.ReferenceDate, Metrics: metrics, Insights: insights}, nil
}

// SortInsights sorts by severity, alerts first, then priority, then id.
func SortInsights(insights []Insight) {
	slices.SortStableFunc(insights, func(a, b Insight) int {
		if c := cmp.Compare(b.Severity, a.Severity); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
