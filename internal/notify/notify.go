package notify

import (
	"context"
	"os/exec"
	"time"

	"tamalife/internal/logger"
)

// Sink delivers a notification. Delivery is best effort: implementations
// never block the caller for long and never report failure.
type Sink interface {
	Notify(title, body string)
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(title, body string) {}

// Log writes notifications to the logger.
type Log struct {
	Log *logger.Logger
}

func (l Log) Notify(title, body string) {
	l.Log.Info("notification", "title", title, "body", body)
}

// Termux shows notifications through the termux-notification command.
type Termux struct {
	Log     *logger.Logger
	Timeout time.Duration

	// command is swapped out in tests
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewTermux returns a Termux sink with a short delivery timeout.
func NewTermux(log *logger.Logger) *Termux {
	return &Termux{Log: log, Timeout: 5 * time.Second, command: exec.CommandContext}
}

func (t *Termux) Notify(title, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.Timeout)
		defer cancel()
		cmd := t.command(ctx, "termux-notification", "--title", title, "--content", body)
		if err := cmd.Run(); err != nil {
			t.Log.Debug("termux notification failed", "error", err)
		}
	}()
}
