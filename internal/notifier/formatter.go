package notifier

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"PriceTracker/internal/model"
)

// NothingFound is printed when a query matches no product.
const NothingFound = "Nothing found!"

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	s = cases.Lower(language.Russian).String(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatResult renders query engine blocks for the console.
func FormatResult(blocks []model.ResultBlock, delta decimal.Decimal, currency string) string {
	if len(blocks) == 0 {
		return NothingFound
	}
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("=", 80) + "\n")
		b.WriteString(fmt.Sprintf("%s is %s %s these days\n", Capitalize(blk.Name), blk.Latest.Price.Round(2), currency))
		b.WriteString(fmt.Sprintf("Lowest was on %s at price %s %s\n", blk.Min.Period, blk.Min.Price.Round(2), currency))
		b.WriteString(fmt.Sprintf("Highest was on %s at price %s %s\n", blk.Max.Period, blk.Max.Price.Round(2), currency))
		b.WriteString(fmt.Sprintf("\nFor the same price (+/- %s %s) you can get:", delta, currency))
		for _, p := range blk.Similar {
			b.WriteString(fmt.Sprintf("\n%s with price %s %s", Capitalize(p.Name), p.Price, currency))
		}
	}
	return b.String()
}

// FormatStat renders a folder scanner answer with the products priced like
// the current one.
func FormatStat(query string, stat *model.Stat, similar []string, delta decimal.Decimal, currency string) string {
	if stat == nil {
		return NothingFound
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 80) + "\n")
	if stat.Curr != nil {
		b.WriteString(fmt.Sprintf("%s is %s %s these days\n", Capitalize(query), stat.Curr.Round(2), currency))
	} else {
		b.WriteString(fmt.Sprintf("%s has no price this month\n", Capitalize(query)))
	}
	b.WriteString(fmt.Sprintf("Lowest was on %s at price %s %s\n", stat.MinDate, stat.Min.Round(2), currency))
	b.WriteString(fmt.Sprintf("Highest was on %s at price %s %s", stat.MaxDate, stat.Max.Round(2), currency))
	if stat.Curr != nil {
		b.WriteString(fmt.Sprintf("\n\nFor the same price (+/- %s %s) you can get:", delta, currency))
		for _, name := range similar {
			b.WriteString("\n" + Capitalize(name))
		}
	}
	return b.String()
}
