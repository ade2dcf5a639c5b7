package calculator

import "PriceTracker/internal/model"

// MinObservation scans history and returns the cheapest observation.
// On equal prices the earliest observation is kept.
func MinObservation(history []model.Observation) (model.Observation, error) {
	if len(history) == 0 {
		return model.Observation{}, model.ErrEmptyHistory
	}
	low := history[0]
	for _, o := range history[1:] {
		if o.Price.LessThan(low.Price) {
			low = o
		}
	}
	return low, nil
}

// MaxObservation scans history and returns the most expensive observation.
// On equal prices the earliest observation is kept.
func MaxObservation(history []model.Observation) (model.Observation, error) {
	if len(history) == 0 {
		return model.Observation{}, model.ErrEmptyHistory
	}
	high := history[0]
	for _, o := range history[1:] {
		if o.Price.GreaterThan(high.Price) {
			high = o
		}
	}
	return high, nil
}
