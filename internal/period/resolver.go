package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"PriceTracker/internal/model"
)

// Months is the lexicon of month names used in table headers.
var Months = map[string]time.Month{
	"январь":   time.January,
	"февраль":  time.February,
	"март":     time.March,
	"апрель":   time.April,
	"май":      time.May,
	"июнь":     time.June,
	"июль":     time.July,
	"август":   time.August,
	"сентябрь": time.September,
	"октябрь":  time.October,
	"ноябрь":   time.November,
	"декабрь":  time.December,
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// Resolver turns header tokens into periods and remembers the latest one seen.
type Resolver struct {
	months map[string]time.Month
	latest model.Period
}

// NewResolver creates a Resolver over the given lexicon. A nil lexicon means Months.
func NewResolver(months map[string]time.Month) *Resolver {
	if months == nil {
		months = Months
	}
	return &Resolver{months: months}
}

// Resolve finds the first month name and the first four-digit year among tokens.
// Tokens may be whole header cells; they are split on whitespace first.
func (r *Resolver) Resolve(tokens []string) (model.Period, error) {
	var (
		month time.Month
		year  int
	)
	for _, cell := range tokens {
		for _, tok := range strings.Fields(cell) {
			if month == 0 {
				if m, ok := r.months[strings.ToLower(tok)]; ok {
					month = m
					continue
				}
			}
			if year == 0 {
				if y := yearPattern.FindString(tok); y != "" {
					year, _ = strconv.Atoi(y)
				}
			}
		}
	}
	if month == 0 {
		return model.Period{}, fmt.Errorf("%w: no month name in %q", model.ErrMalformedPeriod, tokens)
	}
	if year == 0 {
		return model.Period{}, fmt.Errorf("%w: no year in %q", model.ErrMalformedPeriod, tokens)
	}

	p := model.Period{Year: year, Month: month}
	if p.After(r.latest) {
		r.latest = p
	}
	return p, nil
}

// Latest returns the greatest period resolved so far, zero if none.
func (r *Resolver) Latest() model.Period {
	return r.latest
}
