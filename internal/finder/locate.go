package finder

import (
	"fmt"
	"os"
	"path/filepath"

	"PriceTracker/internal/model"
	"PriceTracker/internal/period"
)

// locator walks back one month at a time from a start period until a
// "<month>.<year><ext>" file exists, giving up after a fixed number of probes.
type locator struct {
	dir   string
	ext   string
	at    model.Period
	left  int
	found string
}

func newLocator(dir, ext string, start model.Period, probes int) *locator {
	return &locator{dir: dir, ext: ext, at: start, left: probes}
}

// step probes the current candidate. It returns false once the walk is over,
// either because a file was found or the probe budget ran out.
func (l *locator) step() bool {
	if l.left <= 0 || l.found != "" {
		return false
	}
	l.left--
	name := period.FileName(l.at, l.ext)
	if info, err := os.Stat(filepath.Join(l.dir, name)); err == nil && info.Mode().IsRegular() {
		l.found = name
		return false
	}
	l.at = l.at.Prev()
	return true
}

// locateCurrent finds the newest period file not later than start. The probe
// budget is the number of files in dir plus one.
func locateCurrent(dir, ext string, start model.Period) (string, model.Period, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", model.Period{}, fmt.Errorf("read folder: %w", err)
	}
	files := 0
	for _, e := range entries {
		if !e.IsDir() {
			files++
		}
	}

	l := newLocator(dir, ext, start, files+1)
	for l.step() {
	}
	if l.found == "" {
		return "", model.Period{}, fmt.Errorf("%w: %s has no file within %d months of %s", model.ErrNoCurrentFile, dir, files+1, start)
	}
	return l.found, l.at, nil
}
