package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"PriceTracker/internal/model"
)

const (
	DefaultDenominationYear      = 2017
	DefaultDenominationRate      = 10000
	DefaultDenominationThreshold = 1000
)

// Denomination rescales a raw price into current currency units.
type Denomination interface {
	Apply(price decimal.Decimal, p model.Period) decimal.Decimal
	Name() string
}

// DateCutoffDenomination divides prices of periods before CutoffYear by Rate.
type DateCutoffDenomination struct {
	CutoffYear int
	Rate       decimal.Decimal
}

func NewDateCutoffDenomination(cutoffYear int, rate int64) *DateCutoffDenomination {
	return &DateCutoffDenomination{CutoffYear: cutoffYear, Rate: decimal.NewFromInt(rate)}
}

func (d *DateCutoffDenomination) Name() string { return "date_cutoff" }

func (d *DateCutoffDenomination) Apply(price decimal.Decimal, p model.Period) decimal.Decimal {
	if p.Year < d.CutoffYear {
		return price.Div(d.Rate)
	}
	return price
}

// MagnitudeHeuristicDenomination divides any price above Threshold by Rate,
// regardless of period.
type MagnitudeHeuristicDenomination struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

func NewMagnitudeHeuristicDenomination(threshold, rate int64) *MagnitudeHeuristicDenomination {
	return &MagnitudeHeuristicDenomination{
		Threshold: decimal.NewFromInt(threshold),
		Rate:      decimal.NewFromInt(rate),
	}
}

func (d *MagnitudeHeuristicDenomination) Name() string { return "magnitude" }

func (d *MagnitudeHeuristicDenomination) Apply(price decimal.Decimal, _ model.Period) decimal.Decimal {
	if price.GreaterThan(d.Threshold) {
		return price.Div(d.Rate)
	}
	return price
}

// NewDenomination builds a strategy by name. An empty name yields fallback.
func NewDenomination(name, fallback string, cutoffYear int, threshold, rate int64) (Denomination, error) {
	if name == "" {
		name = fallback
	}
	switch name {
	case "date_cutoff":
		return NewDateCutoffDenomination(cutoffYear, rate), nil
	case "magnitude":
		return NewMagnitudeHeuristicDenomination(threshold, rate), nil
	default:
		return nil, fmt.Errorf("unknown denomination strategy %q", name)
	}
}
