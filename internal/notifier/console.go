package notifier

import (
	"fmt"
	"io"
	"sync"
)

// Notifier delivers answers to the user.
type Notifier interface {
	Send(text string) error
}

// ConsoleNotifier writes answers to a terminal or any writer.
type ConsoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Send writes text followed by a newline.
func (c *ConsoleNotifier) Send(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	return nil
}
