package scheduler

import (
	"context"
	"fmt"
	"log"

	"PriceTracker/internal/notifier"
	"PriceTracker/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the read loop. Cron jobs only post refresh ticks; every
// refresh and query runs on the goroutine that called Run.
type Scheduler struct {
	Cron     *cron.Cron
	Handler  Handler
	Notifier notifier.Notifier
	Recorder recorder.Recorder

	ticks chan struct{}
}

// NewScheduler creates a new Scheduler.
func NewScheduler(h Handler, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Handler:  h,
		Notifier: n,
		Recorder: rec,
		ticks:    make(chan struct{}, 1),
	}
}

// RegisterRefresh schedules data folder refreshes.
func (s *Scheduler) RegisterRefresh(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.postTick); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// postTick never blocks; a pending tick absorbs later ones.
func (s *Scheduler) postTick() {
	select {
	case s.ticks <- struct{}{}:
	default:
	}
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// Run answers queries from lines until lines closes or ctx ends.
func (s *Scheduler) Run(ctx context.Context, lines <-chan string) {
	s.trySend(notifier.Prompt)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ticks:
			if ctx.Err() != nil {
				return
			}
			if err := s.Handler.Refresh(); err != nil {
				log.Printf("[ERROR] refresh: %v", err)
			}
		case line, ok := <-lines:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			s.trySend(s.HandleCommand(line))
			s.trySend(notifier.Prompt)
		}
	}
}

// HandleCommand answers one query and journals it.
func (s *Scheduler) HandleCommand(term string) string {
	answer, matches, err := s.Handler.Handle(term)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return fmt.Sprintf("Could not answer %q", term)
	}
	if err := s.Recorder.RecordQuery(recorder.NewQueryEvent(s.Handler.Mode(), term, matches)); err != nil {
		log.Printf("[ERROR] record query: %v", err)
	}
	return answer
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(text); err != nil {
		log.Printf("[ERROR] send answer: %v", err)
	}
}
