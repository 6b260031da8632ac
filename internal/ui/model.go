package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tamalife/internal/game"
	"tamalife/internal/pet"
)

// menuEntry is one line of the main menu.
type menuEntry struct {
	Label   string
	Command game.Command
}

func mainMenu() []menuEntry {
	entries := make([]menuEntry, 0, len(pet.CareActions)+3)
	for _, a := range pet.CareActions {
		entries = append(entries, menuEntry{Label: actionLabel(a), Command: game.Command{Action: a}})
	}
	return append(entries,
		menuEntry{Label: "Medicine", Command: game.Command{Action: pet.ActionUseItem, Arg: pet.ItemMedicine}},
		menuEntry{Label: "Retire", Command: game.Command{Action: pet.ActionRetire}},
		menuEntry{Label: "Quit", Command: game.Command{Action: game.ActionQuit}},
	)
}

func actionLabel(a pet.Action) string {
	s := string(a)
	return string(s[0]-'a'+'A') + s[1:]
}

// Model is the bubbletea model for the interactive game.
type Model struct {
	session  *game.Session
	ctx      context.Context
	interval time.Duration
	now      func() time.Time

	Snapshot       pet.Snapshot
	Menu           []menuEntry
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
}

type tickMsg time.Time
type animTickMsg struct {
	started time.Time
}

// NewModel creates a model over a running session. interval sets how often
// the pet is ticked while the screen is open.
func NewModel(ctx context.Context, s *game.Session, interval time.Duration) Model {
	s.Tick()
	return Model{
		session:  s,
		ctx:      ctx,
		interval: interval,
		now:      time.Now,
		Snapshot: s.Snapshot(),
		Menu:     mainMenu(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			switch msg.String() {
			case "ctrl+c", "q":
				m.Quitting = true
				return m, tea.Quit
			default:
				return m, nil
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(m.Menu)-1 {
				m.Choice++
			}
		case "enter", " ":
			cmd := m.Menu[m.Choice].Command
			if cmd.Action == game.ActionQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			if m.act(cmd) {
				return m, animTick(m.Animation.StartTime)
			}
		}

	case tickMsg:
		m.session.Tick()
		m.Snapshot = m.session.Snapshot()
		return m, m.tick()

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

// act runs a command through the session and reports whether an animation
// was started.
func (m *Model) act(cmd game.Command) bool {
	out, err := m.session.Act(m.ctx, cmd)
	m.Snapshot = m.session.Snapshot()

	var rejected *pet.ActionError
	switch {
	case errors.As(err, &rejected):
		m.setMessage(rejected.Reason.Message())
		return false
	case err != nil:
		m.setMessage("⚠️ " + err.Error())
		return false
	}

	m.setMessage(out.Message)
	anim := animationFor(cmd)
	if anim == AnimNone {
		return false
	}
	m.startAnimation(anim)
	return true
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.now().Add(3 * time.Second)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: m.now(),
	}
}

// Run opens the interactive screen until the player quits or ctx ends.
func Run(ctx context.Context, s *game.Session, interval time.Duration) error {
	program := tea.NewProgram(NewModel(ctx, s, interval), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
