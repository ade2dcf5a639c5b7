package collector

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader decodes comma separated tables laid out like the spreadsheets.
type CSVReader struct {
	Layout Layout
	Comma  rune
}

func NewCSVReader(l Layout) *CSVReader { return &CSVReader{Layout: l, Comma: ','} }

func (r *CSVReader) Name() string { return "csv" }

func (r *CSVReader) ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return tableFromRows(rows, r.Layout), nil
}
