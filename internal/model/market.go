package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is one monthly data snapshot.
type Period struct {
	Year  int
	Month time.Month
}

// Compare returns -1, 0 or +1. Year is compared first, then month.
func (p Period) Compare(o Period) int {
	switch {
	case p.Year < o.Year:
		return -1
	case p.Year > o.Year:
		return 1
	case p.Month < o.Month:
		return -1
	case p.Month > o.Month:
		return 1
	}
	return 0
}

func (p Period) After(o Period) bool  { return p.Compare(o) > 0 }
func (p Period) Before(o Period) bool { return p.Compare(o) < 0 }
func (p Period) IsZero() bool         { return p.Year == 0 && p.Month == 0 }

// Prev returns the calendar month before p, wrapping January to December.
func (p Period) Prev() Period {
	if p.Month <= time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// String formats the period as "year/month", e.g. "2016/3".
func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Year, int(p.Month))
}

// PeriodOf returns the period t falls in.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Observation is a single price seen for a product in a period.
type Observation struct {
	Price  decimal.Decimal
	Period Period
}
