package collector

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"PriceTracker/internal/history"
	"PriceTracker/internal/model"
	"PriceTracker/internal/period"
)

// MockReader returns fixed tables by file base name, for development and testing.
type MockReader struct {
	Tables map[string]*Table
}

func (m *MockReader) Name() string { return "mock" }

func (m *MockReader) ReadTable(path string) (*Table, error) {
	t, ok := m.Tables[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("no mock table for %s", filepath.Base(path))
	}
	return t, nil
}

// Collector loads monthly tables from a folder into a history store.
type Collector struct {
	Readers  map[string]TableReader // keyed by lower-case extension, e.g. ".xlsx"
	Store    *history.Store
	Resolver *period.Resolver

	current model.Period
	seen    map[string]bool
}

// NewCollector creates a new Collector.
func NewCollector(store *history.Store, resolver *period.Resolver, readers map[string]TableReader) *Collector {
	return &Collector{
		Readers:  readers,
		Store:    store,
		Resolver: resolver,
		seen:     make(map[string]bool),
	}
}

type datedTable struct {
	file   string
	period model.Period
	table  *Table
}

// LoadResult summarises one LoadDir call.
type LoadResult struct {
	Files   int
	Rows    int
	Skipped int
	Latest  model.Period
}

// LoadDir ingests every supported file in dir not loaded before. New files are
// ingested oldest period first so the latest set ends on the newest period.
func (c *Collector) LoadDir(dir string) (*LoadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	res := &LoadResult{}
	var batch []datedTable
	for _, e := range entries {
		if e.IsDir() || c.seen[e.Name()] {
			continue
		}
		reader, ok := c.Readers[strings.ToLower(filepath.Ext(e.Name()))]
		if !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		t, err := reader.ReadTable(path)
		if err != nil {
			log.Printf("[WARN] skip %s: %v", e.Name(), err)
			res.Skipped++
			continue
		}
		p, err := c.Resolver.Resolve(t.Header)
		if err != nil {
			if errors.Is(err, model.ErrMalformedPeriod) {
				c.seen[e.Name()] = true
			}
			log.Printf("[WARN] skip %s: %v", e.Name(), err)
			res.Skipped++
			continue
		}
		batch = append(batch, datedTable{file: e.Name(), period: p, table: t})
	}

	sort.SliceStable(batch, func(i, j int) bool { return batch[i].period.Before(batch[j].period) })

	for _, dt := range batch {
		n := c.Ingest(dt.period, dt.table)
		c.seen[dt.file] = true
		res.Files++
		res.Rows += n
		log.Printf("[INFO] loaded %s (%s): %d rows", dt.file, dt.period, n)
	}
	res.Latest = c.current
	return res, nil
}

// Ingest records one table. A period newer than any before it resets the
// latest set once; only rows of the newest period are marked latest.
func (c *Collector) Ingest(p model.Period, t *Table) int {
	if p.After(c.current) {
		c.Store.ResetLatest()
		c.current = p
	}
	isLatest := p == c.current

	n := 0
	for _, row := range t.Rows {
		if row.Price == nil {
			continue
		}
		if c.Store.Record(row.Name, p, row.Price, isLatest) {
			n++
		}
	}
	return n
}
