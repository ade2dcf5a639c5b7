package model

import "github.com/shopspring/decimal"

// SimilarProduct is a product whose latest price is close to the queried one.
type SimilarProduct struct {
	Name  string
	Price decimal.Decimal
}

// ResultBlock is the answer for one product matching a query term.
type ResultBlock struct {
	Name    string
	Latest  Observation
	Min     Observation
	Max     Observation
	Similar []SimilarProduct
}
