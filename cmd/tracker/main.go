package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"

	"PriceTracker/internal/calculator"
	"PriceTracker/internal/collector"
	"PriceTracker/internal/config"
	"PriceTracker/internal/finder"
	"PriceTracker/internal/history"
	"PriceTracker/internal/notifier"
	"PriceTracker/internal/period"
	"PriceTracker/internal/query"
	"PriceTracker/internal/recorder"
	"PriceTracker/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceTracker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath, ".env")
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fallback := "date_cutoff"
	if cfg.Mode == config.ModeFolder {
		fallback = "magnitude"
	}
	denom, err := calculator.NewDenomination(cfg.Denomination.Strategy, fallback,
		cfg.Denomination.CutoffYear, cfg.Denomination.Threshold, cfg.Denomination.Rate)
	if err != nil {
		log.Fatalf("[FATAL] denomination: %v", err)
	}
	log.Printf("[INFO] mode: %s, denomination: %s", cfg.Mode, denom.Name())

	delta := decimal.NewFromFloat(cfg.Query.Delta)

	// Init handler
	var handler scheduler.Handler
	switch cfg.Mode {
	case config.ModeFolder:
		f, err := finder.NewFinder(cfg.Folder.Dir, cfg.Folder.Region, denom, finder.WithExtension(cfg.Folder.Extension))
		if err != nil {
			log.Fatalf("[FATAL] init folder scanner: %v", err)
		}
		handler = &scheduler.FolderHandler{Finder: f, Delta: delta, Currency: cfg.Query.Currency}
	default:
		handler = newHistoryHandler(cfg, denom, delta)
		log.Println("[INFO] collecting data...")
		if err := handler.Refresh(); err != nil {
			log.Fatalf("[FATAL] collect data: %v", err)
		}
		log.Println("[INFO] collecting data...done")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.Driver != "" {
		sr, err := recorder.NewSQLRecorder(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Printf("[WARN] init query journal failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(handler, notifier.NewConsoleNotifier(os.Stdout), rec)
	if err := sched.RegisterRefresh(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("Exiting")
		cancel()
	}()

	sched.Run(ctx, notifier.StartPolling(ctx, os.Stdin))
	log.Println("[INFO] PriceTracker stopped")
}

func newHistoryHandler(cfg *config.Config, denom calculator.Denomination, delta decimal.Decimal) *scheduler.HistoryHandler {
	layout := collector.Layout{
		Sheet:      cfg.Layout.Sheet,
		DateRow:    cfg.Layout.DateRow,
		HeaderRows: cfg.Layout.HeaderRows,
		NameCol:    cfg.Layout.NameCol,
		PriceCol:   cfg.Layout.PriceCol,
	}
	readers := make(map[string]collector.TableReader)
	for _, ext := range cfg.Data.Extensions {
		switch ext = strings.ToLower(ext); ext {
		case ".xlsx":
			readers[ext] = collector.NewXLSXReader(layout)
		case ".csv":
			readers[ext] = collector.NewCSVReader(layout)
		default:
			log.Printf("[WARN] no reader for %s files", ext)
		}
	}

	store := history.NewStore(denom)
	return &scheduler.HistoryHandler{
		Collector: collector.NewCollector(store, period.NewResolver(nil), readers),
		Engine:    query.NewEngine(store, delta),
		Dir:       cfg.Data.Dir,
		Currency:  cfg.Query.Currency,
	}
}
