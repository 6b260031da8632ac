package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tamalife/internal/game"
	"tamalife/internal/logger"
	"tamalife/internal/pet"
)

type discardStore struct{}

func (discardStore) Save(ctx context.Context, p *pet.Pet) error                 { return nil }
func (discardStore) Archive(ctx context.Context, p *pet.Pet, at time.Time) error { return nil }

type stillRand struct{}

func (stillRand) Float64() float64 { return 0.99 }
func (stillRand) IntN(n int) int   { return 0 }

var testStart = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, stage pet.Stage) Model {
	t.Helper()
	tmpl := pet.DefaultTemplate()
	tmpl.Personality = pet.PersonalityCurious
	p := tmpl.New(testStart, stillRand{})
	p.AgeStage = stage
	if stage != pet.StageEgg {
		p.AgeMinutes = pet.ChildAgeMinutes
	}
	p.CurrentEvent = pet.WorldEvent{Type: pet.EventNone, LastUpdate: testStart}

	clock := func() time.Time { return testStart }
	s := game.NewSession(p, pet.NewEngine(stillRand{}, tmpl), discardStore{}, logger.Nop(), game.WithClock(clock))
	m := NewModel(context.Background(), s, time.Minute)
	m.now = clock
	return m
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func TestModelMenu(t *testing.T) {
	t.Run("Enter performs the selected action", func(t *testing.T) {
		m := newTestModel(t, pet.StageChild)
		m = press(m, tea.KeyDown) // play

		m = press(m, tea.KeyEnter)

		if m.Animation.Type != AnimPlay {
			t.Errorf("Expected the play animation, got %v", m.Animation.Type)
		}
		if m.Message == "" {
			t.Error("Expected an outcome message")
		}
		if m.Snapshot.Happiness <= 80 {
			t.Errorf("Expected happiness to rise, got %.1f", m.Snapshot.Happiness)
		}
	})

	t.Run("Rejections show a message", func(t *testing.T) {
		m := newTestModel(t, pet.StageEgg)

		m = press(m, tea.KeyEnter)

		if m.Message != pet.ReasonEgg.Message() {
			t.Errorf("Expected %q, got %q", pet.ReasonEgg.Message(), m.Message)
		}
		if m.Animation.Type != AnimNone {
			t.Error("Expected no animation for a rejected action")
		}
	})

	t.Run("Cursor stays inside the menu", func(t *testing.T) {
		m := newTestModel(t, pet.StageChild)
		m = press(m, tea.KeyUp)
		if m.Choice != 0 {
			t.Errorf("Expected choice 0, got %d", m.Choice)
		}
		for range len(m.Menu) + 3 {
			m = press(m, tea.KeyDown)
		}
		if m.Choice != len(m.Menu)-1 {
			t.Errorf("Expected the last entry, got %d", m.Choice)
		}
		if m.Menu[m.Choice].Command.Action != game.ActionQuit {
			t.Errorf("Expected quit last, got %s", m.Menu[m.Choice].Command)
		}
	})

	t.Run("Stale animation ticks are dropped", func(t *testing.T) {
		m := newTestModel(t, pet.StageChild)
		m.startAnimation(AnimFeed)

		next, cmd := m.Update(animTickMsg{started: testStart.Add(-time.Second)})
		if cmd != nil || next.(Model).Animation.Frame != 0 {
			t.Error("Expected a stale tick to be ignored")
		}

		next, _ = m.Update(animTickMsg{started: m.Animation.StartTime})
		if next.(Model).Animation.Frame != 1 {
			t.Errorf("Expected frame 1, got %d", next.(Model).Animation.Frame)
		}
	})
}

func TestMakeBar(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "░░░░░"},
		{19.9, "░░░░░"},
		{40, "██░░░"},
		{100, "█████"},
	}
	for _, tt := range tests {
		if got := makeBar(tt.value); got != tt.expected {
			t.Errorf("makeBar(%.1f): expected %s, got %s", tt.value, tt.expected, got)
		}
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		minutes  float64
		expected string
	}{
		{0, "0m"},
		{59.9, "59m"},
		{61, "1h 1m"},
		{1440 + 120, "1d 2h"},
	}
	for _, tt := range tests {
		if got := formatAge(tt.minutes); got != tt.expected {
			t.Errorf("formatAge(%.1f): expected %s, got %s", tt.minutes, tt.expected, got)
		}
	}
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	m := newTestModel(t, pet.StageChild)

	c.Render(m.Snapshot)
	c.Message("hello")

	text := out.String()
	if !strings.Contains(text, m.Snapshot.Name) || !strings.Contains(text, "Status: ") {
		t.Errorf("Expected the pet card, got:\n%s", text)
	}
	if !strings.HasSuffix(text, "hello\n") {
		t.Errorf("Expected the message last, got:\n%s", text)
	}
}

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("feed\nplay\n"))
	ctx := context.Background()

	for _, want := range []string{"feed", "play"} {
		got, err := lr.ReadCommand(ctx)
		if err != nil || got != want {
			t.Fatalf("Expected %q, got %q (%v)", want, got, err)
		}
	}
	if _, err := lr.ReadCommand(ctx); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}

	t.Run("Cancelled context", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		blocked := NewLineReader(pr)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := blocked.ReadCommand(ctx); err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}
