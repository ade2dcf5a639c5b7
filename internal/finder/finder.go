package finder

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"PriceTracker/internal/calculator"
	"PriceTracker/internal/collector"
	"PriceTracker/internal/model"
	"PriceTracker/internal/period"
)

// Finder answers single-column statistics over a folder of per-period CSV
// files named "<month>.<year>.csv". The first column holds product names,
// Region names the price column.
type Finder struct {
	Dir    string
	Region string
	Ext    string
	Denom  calculator.Denomination
	Now    func() time.Time

	current     model.Period
	currentFile string
}

// Option configures a Finder.
type Option func(*Finder)

// WithClock overrides the time source used to start the current-file walk.
func WithClock(now func() time.Time) Option {
	return func(f *Finder) { f.Now = now }
}

// WithExtension sets the period file extension, ".csv" by default.
func WithExtension(ext string) Option {
	return func(f *Finder) { f.Ext = ext }
}

// NewFinder creates a Finder and locates the current period file.
func NewFinder(dir, region string, denom calculator.Denomination, opts ...Option) (*Finder, error) {
	f := &Finder{Dir: dir, Region: region, Ext: ".csv", Denom: denom, Now: time.Now}
	for _, o := range opts {
		o(f)
	}
	if err := f.Refresh(); err != nil {
		return nil, err
	}
	return f, nil
}

// Refresh re-runs the current file lookup starting from today.
func (f *Finder) Refresh() error {
	name, p, err := locateCurrent(f.Dir, f.Ext, model.PeriodOf(f.Now()))
	if err != nil {
		return err
	}
	if name != f.currentFile {
		log.Printf("[INFO] current period file: %s", name)
	}
	f.currentFile = name
	f.current = p
	return nil
}

// Current returns the current period and its file path.
func (f *Finder) Current() (model.Period, string) {
	return f.current, filepath.Join(f.Dir, f.currentFile)
}

// FindPrice returns the region price of the first row whose name contains
// query, case-insensitively, followed by whitespace or the end of the name.
// The match is not anchored on the left, so "молоко" also finds "Пахта-молоко".
// A matching row with a blank price yields zero; ok is false when no row matches.
func (f *Finder) FindPrice(path, query string) (price decimal.Decimal, ok bool, err error) {
	return f.findPrice(path, queryPattern(query))
}

func queryPattern(query string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(strings.TrimSpace(query)) + `(\s|$)`)
}

func (f *Finder) findPrice(path string, re *regexp.Regexp) (decimal.Decimal, bool, error) {
	var (
		price decimal.Decimal
		found bool
	)
	err := f.scan(path, func(name string, p *decimal.Decimal) bool {
		if !re.MatchString(name) {
			return true
		}
		found = true
		if p != nil {
			price = *p
		}
		return false
	})
	return price, found, err
}

// FindStat folds every period file into min, max and current price for query.
// Files are visited oldest first; a later file only replaces min or max with
// a strictly better price. It returns nil when no file has a usable price.
func (f *Finder) FindStat(query string) (*model.Stat, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	files, err := f.periodFiles()
	if err != nil {
		return nil, err
	}
	re := queryPattern(query)

	var stat *model.Stat
	for _, pf := range files {
		raw, ok, err := f.findPrice(filepath.Join(f.Dir, pf.name), re)
		if err != nil {
			return nil, err
		}
		if !ok || raw.IsZero() {
			continue
		}
		price := f.Denom.Apply(raw, pf.period)
		date := period.Stem(pf.period)

		if stat == nil {
			stat = &model.Stat{Min: price, Max: price, MinDate: date, MaxDate: date}
		} else {
			if price.GreaterThan(stat.Max) {
				stat.Max, stat.MaxDate = price, date
			}
			if price.LessThan(stat.Min) {
				stat.Min, stat.MinDate = price, date
			}
		}
		if pf.period == f.current {
			curr := price
			stat.Curr = &curr
		}
	}
	return stat, nil
}

// FindSimilar lists products in path priced within [low, high]. An empty
// path means the current period file.
func (f *Finder) FindSimilar(low, high decimal.Decimal, path string) ([]string, error) {
	p := f.current
	if path == "" {
		_, path = f.Current()
	} else if parsed, err := period.ParseFileName(filepath.Base(path)); err == nil {
		p = parsed
	}

	var out []string
	err := f.scan(path, func(name string, raw *decimal.Decimal) bool {
		if raw == nil || raw.IsZero() {
			return true
		}
		price := f.Denom.Apply(*raw, p)
		if price.LessThan(low) || price.GreaterThan(high) {
			return true
		}
		out = append(out, name)
		return true
	})
	return out, err
}

type periodFile struct {
	name   string
	period model.Period
}

func (f *Finder) periodFiles() ([]periodFile, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}
	var files []periodFile
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), f.Ext) {
			continue
		}
		p, err := period.ParseFileName(e.Name())
		if err != nil {
			log.Printf("[WARN] skip %s: %v", e.Name(), err)
			continue
		}
		files = append(files, periodFile{name: e.Name(), period: p})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].period.Before(files[j].period) })
	return files, nil
}

// scan reads a headed CSV and calls fn with each row's name and region price
// until fn returns false.
func (f *Finder) scan(path string, fn func(name string, price *decimal.Decimal) bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == f.Region {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("column %q not found in %s", f.Region, filepath.Base(path))
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if len(row) == 0 {
			continue
		}
		var price *decimal.Decimal
		if col < len(row) {
			price = collector.ParsePrice(row[col])
		}
		if !fn(row[0], price) {
			return nil
		}
	}
}
