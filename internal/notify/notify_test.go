package notify

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"tamalife/internal/logger"
)

func TestTermuxNotify(t *testing.T) {
	type call struct {
		name string
		args []string
	}
	calls := make(chan call, 1)

	sink := NewTermux(logger.Nop())
	sink.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		calls <- call{name: name, args: args}
		return exec.CommandContext(ctx, "true")
	}

	sink.Notify("🐣 Pet hatched!", "Say hello")

	select {
	case c := <-calls:
		if c.name != "termux-notification" {
			t.Errorf("Expected termux-notification, got %s", c.name)
		}
		want := []string{"--title", "🐣 Pet hatched!", "--content", "Say hello"}
		if len(c.args) != len(want) {
			t.Fatalf("Expected args %v, got %v", want, c.args)
		}
		for i := range want {
			if c.args[i] != want[i] {
				t.Errorf("Expected arg %d to be %q, got %q", i, want[i], c.args[i])
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Notification command was never built")
	}
}

func TestTermuxMissingCommandDoesNotPanic(t *testing.T) {
	done := make(chan struct{})
	sink := &Termux{
		Log:     logger.Nop(),
		Timeout: time.Second,
		command: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			defer close(done)
			return exec.CommandContext(ctx, "tamalife-no-such-binary")
		},
	}

	sink.Notify("title", "body")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notification never attempted")
	}
}

func TestNopAndLog(t *testing.T) {
	Nop{}.Notify("title", "body")
	Log{Log: logger.Nop()}.Notify("title", "body")
}
