package history

import (
	"github.com/shopspring/decimal"

	"PriceTracker/internal/calculator"
	"PriceTracker/internal/model"
)

// Store keeps every observation per canonical product name plus the latest set.
//
// Record never clears the latest set by itself. Whoever drives ingestion must
// call ResetLatest exactly once before the first row of a newer period,
// otherwise products missing from the new period keep stale latest entries.
type Store struct {
	denom   calculator.Denomination
	history map[string][]model.Observation
	latest  *LatestSet
}

// NewStore creates an empty Store that rescales prices with denom.
func NewStore(denom calculator.Denomination) *Store {
	return &Store{
		denom:   denom,
		history: make(map[string][]model.Observation),
		latest:  NewLatestSet(),
	}
}

// Record ingests one table row. Rows with an absent or zero price and names
// that normalise to nothing are ignored. It reports whether the row was kept.
func (s *Store) Record(rawName string, p model.Period, rawPrice *decimal.Decimal, isLatest bool) bool {
	if rawPrice == nil || rawPrice.IsZero() {
		return false
	}
	name := CanonicalName(rawName)
	if name == "" {
		return false
	}

	o := model.Observation{Price: s.denom.Apply(*rawPrice, p), Period: p}
	s.history[name] = append(s.history[name], o)
	if isLatest {
		s.latest.Put(name, o)
	}
	return true
}

// ResetLatest empties the latest set ahead of a newer period.
func (s *Store) ResetLatest() {
	s.latest.Reset()
}

// HistoryOf returns the observations for name in ingestion order.
// Unknown names yield an empty slice.
func (s *Store) HistoryOf(name string) []model.Observation {
	h := s.history[name]
	out := make([]model.Observation, len(h))
	copy(out, h)
	return out
}

func (s *Store) MinObservation(name string) (model.Observation, error) {
	return calculator.MinObservation(s.history[name])
}

func (s *Store) MaxObservation(name string) (model.Observation, error) {
	return calculator.MaxObservation(s.history[name])
}

func (s *Store) LatestObservation(name string) (model.Observation, bool) {
	return s.latest.Get(name)
}

// Latest exposes the latest set for read-only scans.
func (s *Store) Latest() *LatestSet {
	return s.latest
}

// Products returns the number of distinct products with history.
func (s *Store) Products() int {
	return len(s.history)
}
