package history

import "PriceTracker/internal/model"

// LatestSet holds one observation per product for the most recent period.
// Products are kept in the order they first entered the set.
type LatestSet struct {
	byName map[string]model.Observation
	order  []string
}

func NewLatestSet() *LatestSet {
	return &LatestSet{byName: make(map[string]model.Observation)}
}

// Put stores o as the sole latest entry for name, replacing any earlier one.
func (l *LatestSet) Put(name string, o model.Observation) {
	if _, ok := l.byName[name]; !ok {
		l.order = append(l.order, name)
	}
	l.byName[name] = o
}

func (l *LatestSet) Get(name string) (model.Observation, bool) {
	o, ok := l.byName[name]
	return o, ok
}

// Reset drops every entry.
func (l *LatestSet) Reset() {
	l.byName = make(map[string]model.Observation)
	l.order = nil
}

func (l *LatestSet) Len() int { return len(l.order) }

// Each visits entries in insertion order until fn returns false.
func (l *LatestSet) Each(fn func(name string, o model.Observation) bool) {
	for _, name := range l.order {
		if !fn(name, l.byName[name]) {
			return
		}
	}
}
