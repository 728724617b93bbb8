// Package export writes engine results as XLSX workbooks.
//
// Amounts are written in major units with two decimals, dates as ISO strings and
// percentages as plain numbers.
package export

import (
	"fmt"
	"io"

	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// builtin number format "#,##0.00"
const amountFormat = 4

// workbook wraps an excelize file with a sticky error, sheets are filled row by row.
type workbook struct {
	f      *excelize.File
	header int // header style
	amount int // amount style
	sheet  string
	row    int
	err    error
}

func newWorkbook() *workbook {
	wb := &workbook{f: excelize.NewFile()}
	wb.header, wb.err = wb.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if wb.err == nil {
		wb.amount, wb.err = wb.f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	}
	return wb
}

// startSheet makes name the current sheet and writes its header row.
// The default sheet of a new file is renamed instead of added.
func (wb *workbook) startSheet(name string, headers ...string) {
	if wb.err != nil {
		return
	}
	if wb.sheet == "" {
		wb.err = wb.f.SetSheetName(wb.f.GetSheetName(0), name)
	} else {
		_, wb.err = wb.f.NewSheet(name)
	}
	wb.sheet, wb.row = name, 0
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	wb.write(values...)
	if wb.err == nil && len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		wb.err = wb.f.SetCellStyle(name, "A1", last, wb.header)
	}
}

// write appends a row to the current sheet.
func (wb *workbook) write(values ...any) {
	if wb.err != nil {
		return
	}
	wb.row++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, wb.row)
		if err != nil {
			wb.err = err
			return
		}
		switch v := v.(type) {
		case finengine.Cents:
			wb.err = wb.f.SetCellFloat(wb.sheet, cell, v.Major().InexactFloat64(), -1, 64)
			if wb.err == nil {
				wb.err = wb.f.SetCellStyle(wb.sheet, cell, cell, wb.amount)
			}
		case decimal.Decimal:
			wb.err = wb.f.SetCellFloat(wb.sheet, cell, v.InexactFloat64(), -1, 64)
		case fmt.Stringer:
			wb.err = wb.f.SetCellStr(wb.sheet, cell, v.String())
		default:
			wb.err = wb.f.SetCellValue(wb.sheet, cell, v)
		}
		if wb.err != nil {
			return
		}
	}
}

// metric writes a two column row, for summary sheets.
func (wb *workbook) metric(name string, value any) { wb.write(name, value) }

// flush writes the workbook to w and closes it.
func (wb *workbook) flush(w io.Writer) error {
	defer wb.f.Close()
	if wb.err != nil {
		return fmt.Errorf("building workbook: %w", wb.err)
	}
	wb.f.SetActiveSheet(0)
	if err := wb.f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	finengine.Log("export").WithField("sheets", wb.f.GetSheetList()).Debug("workbook written")
	return nil
}
