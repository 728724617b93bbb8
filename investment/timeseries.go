package investment

import (
	"slices"

	"github.com/etnz/finengine"
)

// BuildPortfolioTimeSeries returns the snapshots sorted by date, each with its change
// since the previous one. The first point has no change. The input is left untouched.
func BuildPortfolioTimeSeries(snapshots []ValueSnapshot) ([]TimeSeriesPoint, error) {
	for i, s := range snapshots {
		if s.Date.IsZero() {
			return nil, finengine.Invalidf("snapshot %d has no date", i)
		}
	}
	sorted := slices.Clone(snapshots)
	slices.SortStableFunc(sorted, func(a, b ValueSnapshot) int { return a.Date.Compare(b.Date) })

	var c finengine.Calc
	res := make([]TimeSeriesPoint, len(sorted))
	for i, s := range sorted {
		res[i] = TimeSeriesPoint{Date: s.Date, Value: s.Value}
		if i > 0 {
			prev := sorted[i-1].Value
			res[i].Change = c.Sub(s.Value, prev)
			res[i].ChangePercent = finengine.Share(res[i].Change, prev.Abs())
		}
	}
	return res, c.Err()
}
