package query

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"PriceTracker/internal/history"
	"PriceTracker/internal/model"
)

// DefaultDelta is the absolute price band used to find similar products.
var DefaultDelta = decimal.RequireFromString("0.2")

// Engine answers product queries against a history store.
type Engine struct {
	Store *history.Store
	Delta decimal.Decimal
}

// NewEngine creates an Engine. A zero delta falls back to DefaultDelta.
func NewEngine(store *history.Store, delta decimal.Decimal) *Engine {
	if delta.IsZero() {
		delta = DefaultDelta
	}
	return &Engine{Store: store, Delta: delta}
}

// Query returns one block per product in the latest set whose name contains
// term as a whole token. No match yields a nil slice.
func (e *Engine) Query(term string) ([]model.ResultBlock, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return nil, nil
	}

	var (
		blocks []model.ResultBlock
		err    error
	)
	e.Store.Latest().Each(func(name string, latest model.Observation) bool {
		if !hasToken(name, needle, fold) {
			return true
		}
		var block model.ResultBlock
		block, err = e.buildBlock(name, latest)
		if err != nil {
			return false
		}
		blocks = append(blocks, block)
		return true
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (e *Engine) buildBlock(name string, latest model.Observation) (model.ResultBlock, error) {
	low, err := e.Store.MinObservation(name)
	if err != nil {
		return model.ResultBlock{}, fmt.Errorf("min of %q: %w", name, err)
	}
	high, err := e.Store.MaxObservation(name)
	if err != nil {
		return model.ResultBlock{}, fmt.Errorf("max of %q: %w", name, err)
	}
	return model.ResultBlock{
		Name:    name,
		Latest:  latest,
		Min:     low,
		Max:     high,
		Similar: e.Similar(name, latest.Price),
	}, nil
}

// Similar lists other products in the latest set priced within Delta of price.
func (e *Engine) Similar(self string, price decimal.Decimal) []model.SimilarProduct {
	from, to := price.Sub(e.Delta), price.Add(e.Delta)
	out := []model.SimilarProduct{}
	e.Store.Latest().Each(func(name string, o model.Observation) bool {
		if name == self {
			return true
		}
		if o.Price.LessThan(from) || o.Price.GreaterThan(to) {
			return true
		}
		out = append(out, model.SimilarProduct{Name: name, Price: o.Price})
		return true
	})
	return out
}

func hasToken(name, needle string, fold cases.Caser) bool {
	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, tok := range tokens {
		if fold.String(tok) == needle {
			return true
		}
	}
	return false
}
