package notifier

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"
)

// Prompt is shown before every query.
const Prompt = "\nWhat price are you looking for?"

// StartPolling reads one query per line from r and delivers non-empty lines on
// the returned channel. The channel is closed on EOF, read error or ctx end.
// Lines are only handed over; handling happens on the receiving goroutine.
func StartPolling(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("[WARN] read input: %v", err)
		}
	}()
	return out
}
