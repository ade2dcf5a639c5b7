package collector

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one product line of a monthly table. Price is nil when the cell is
// blank or not a number.
type Row struct {
	Name  string
	Price *decimal.Decimal
}

// Table is a decoded monthly price file.
type Table struct {
	Header []string // cells of the row carrying the period, e.g. "Март 2016 г."
	Rows   []Row
}

// Layout locates the period row and the name/price columns inside a sheet.
type Layout struct {
	Sheet      int
	DateRow    int // 1-based
	HeaderRows int // rows skipped before product lines start
	NameCol    int
	PriceCol   int
}

// DefaultLayout matches the published monthly average price tables.
var DefaultLayout = Layout{Sheet: 0, DateRow: 3, HeaderRows: 8, NameCol: 0, PriceCol: 6}

// TableReader decodes one file into a Table.
type TableReader interface {
	ReadTable(path string) (*Table, error)
	Name() string
}

// tableFromRows applies a layout to raw cell rows.
func tableFromRows(rows [][]string, l Layout) *Table {
	t := &Table{}
	if l.DateRow >= 1 && l.DateRow <= len(rows) {
		t.Header = rows[l.DateRow-1]
	}
	for i := l.HeaderRows; i < len(rows); i++ {
		row := rows[i]
		if l.NameCol >= len(row) {
			continue
		}
		r := Row{Name: row[l.NameCol]}
		if l.PriceCol < len(row) {
			r.Price = ParsePrice(row[l.PriceCol])
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// ParsePrice reads a price cell, accepting a decimal comma and thousands
// separated by spaces. Anything else yields nil.
func ParsePrice(cell string) *decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
