package collector

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader decodes .xlsx workbooks.
type XLSXReader struct {
	Layout Layout
}

func NewXLSXReader(l Layout) *XLSXReader { return &XLSXReader{Layout: l} }

func (r *XLSXReader) Name() string { return "xlsx" }

func (r *XLSXReader) ReadTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if r.Layout.Sheet >= len(sheets) {
		return nil, fmt.Errorf("sheet %d not found, workbook has %d", r.Layout.Sheet, len(sheets))
	}
	// Raw values keep number formats like "#,##0" from turning 12500 into "12,500".
	rows, err := f.GetRows(sheets[r.Layout.Sheet], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return tableFromRows(rows, r.Layout), nil
}
