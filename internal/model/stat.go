package model

import "github.com/shopspring/decimal"

// Stat is the folder scanner's answer for one query across all period files.
// Curr is nil when the current period's file has no usable price.
type Stat struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Curr    *decimal.Decimal
	MinDate string
	MaxDate string
}
