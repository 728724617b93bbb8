// Package renderer formats engine results as markdown reports.
package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

// Options configure every report.
type Options struct {
	Currency string // ISO 4217 code used to format amounts, USD when empty
}

func (o Options) money(c finengine.Cents) string {
	if o.Currency == "" {
		return c.String()
	}
	return c.Format(o.Currency)
}

func (o Options) signed(c finengine.Cents) string {
	if c.IsPositive() {
		return "+" + o.money(c)
	}
	return o.money(c)
}

func percent(d decimal.Decimal) string { return d.StringFixed(2) + "%" }

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
