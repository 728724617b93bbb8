package investment

import (
	"slices"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
)

func checkPeriod(p date.Period) error {
	switch p {
	case date.Monthly, date.Quarterly, date.Yearly:
		return nil
	}
	return finengine.Invalidf("transactions are bucketed by month, quarter or year, not %s", p)
}

// AggregateByPeriod sums transactions by calendar period, oldest period first whatever
// the input order. Periods without transactions are omitted.
func AggregateByPeriod(txs []Transaction, p date.Period) ([]PeriodTotals, error) {
	if err := checkPeriod(p); err != nil {
		return nil, err
	}
	var c finengine.Calc
	index := make(map[date.Range]int)
	var res []PeriodTotals
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		r := date.NewRange(tx.Date, p)
		i, ok := index[r]
		if !ok {
			i = len(res)
			index[r] = i
			res = append(res, PeriodTotals{Period: r.Identifier(), Range: r})
		}
		res[i].Totals.add(&c, tx)
	}
	for i := range res {
		res[i].Totals.NetContributions = c.Sub(res[i].Totals.Contributions, res[i].Totals.Withdrawals)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b PeriodTotals) int { return a.Range.From.Compare(b.Range.From) })
	return res, nil
}

// DividendsByPeriod sums dividends by calendar period, oldest period first. Periods
// without dividends are omitted.
func DividendsByPeriod(txs []Transaction, p date.Period) ([]PeriodAmount, error) {
	var dividends []Transaction
	for _, tx := range txs {
		if tx.Type == Dividend {
			dividends = append(dividends, tx)
		}
	}
	totals, err := AggregateByPeriod(dividends, p)
	if err != nil {
		return nil, err
	}
	res := make([]PeriodAmount, len(totals))
	for i, t := range totals {
		res[i] = PeriodAmount{Period: t.Period, Amount: t.Totals.Dividends}
	}
	return res, nil
}
