package scheduler

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"PriceTracker/internal/collector"
	"PriceTracker/internal/finder"
	"PriceTracker/internal/notifier"
	"PriceTracker/internal/query"
)

// Handler answers one query and reloads its data on refresh ticks.
type Handler interface {
	Handle(term string) (answer string, matches int, err error)
	Refresh() error
	Mode() string
}

// HistoryHandler serves queries from the in-memory history store.
type HistoryHandler struct {
	Collector *collector.Collector
	Engine    *query.Engine
	Dir       string
	Currency  string
}

func (h *HistoryHandler) Mode() string { return "history" }

func (h *HistoryHandler) Handle(term string) (string, int, error) {
	blocks, err := h.Engine.Query(term)
	if err != nil {
		return "", 0, fmt.Errorf("query %q: %w", term, err)
	}
	return notifier.FormatResult(blocks, h.Engine.Delta, h.Currency), len(blocks), nil
}

// Refresh ingests files added to the data folder since the last load.
func (h *HistoryHandler) Refresh() error {
	res, err := h.Collector.LoadDir(h.Dir)
	if err != nil {
		return err
	}
	if res.Files > 0 {
		log.Printf("[INFO] ingested %d files, %d rows, latest period %s, %d products",
			res.Files, res.Rows, res.Latest, h.Collector.Store.Products())
	}
	return nil
}

// FolderHandler serves queries by scanning per-period CSV files.
type FolderHandler struct {
	Finder   *finder.Finder
	Delta    decimal.Decimal
	Currency string
}

func (h *FolderHandler) Mode() string { return "folder" }

func (h *FolderHandler) Handle(term string) (string, int, error) {
	stat, err := h.Finder.FindStat(term)
	if err != nil {
		return "", 0, fmt.Errorf("stat %q: %w", term, err)
	}
	if stat == nil {
		return notifier.NothingFound, 0, nil
	}
	var similar []string
	if stat.Curr != nil {
		similar, err = h.Finder.FindSimilar(stat.Curr.Sub(h.Delta), stat.Curr.Add(h.Delta), "")
		if err != nil {
			return "", 0, fmt.Errorf("similar to %q: %w", term, err)
		}
	}
	return notifier.FormatStat(term, stat, similar, h.Delta, h.Currency), 1, nil
}

func (h *FolderHandler) Refresh() error {
	return h.Finder.Refresh()
}
