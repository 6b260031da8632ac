package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tamalife/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Snapshot pet.Snapshot
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	return StatsCard(m.Snapshot) + "\nPress ESC, click, or any key to close..."
}

// StatsCard renders the full character sheet.
func StatsCard(s pet.Snapshot) string {
	var b strings.Builder
	b.WriteString(renderTitle(s) + "\n\n")
	b.WriteString(renderStats(s) + "\n\n")

	b.WriteString(gameStyles.title.Render("Skills") + "\n")
	for _, sk := range pet.Skills {
		fmt.Fprintf(&b, "  %-13s lv %-3d (%.1f)\n", sk, s.SkillLevels[sk], s.Skills[sk])
	}

	if s.Hobby != pet.HobbyNone {
		fmt.Fprintf(&b, "\n  Hobby: %s\n", s.Hobby)
	}
	if len(s.Decor) > 0 {
		fmt.Fprintf(&b, "  Room:  %s\n", strings.Join(s.Decor, ", "))
	}
	var bag []string
	for _, item := range pet.Items() {
		if n := s.Inventory[item.Name]; n > 0 {
			bag = append(bag, fmt.Sprintf("%s %s x%d", item.Emoji, item.Name, n))
		}
	}
	if len(bag) > 0 {
		fmt.Fprintf(&b, "  Bag:   %s\n", strings.Join(bag, ", "))
	}

	b.WriteString("\n" + gameStyles.title.Render("Legacy") + "\n")
	fmt.Fprintf(&b, "  Stardust: ✨ %d\n", s.Stardust)
	for _, name := range pet.LegacyBonuses {
		fmt.Fprintf(&b, "  %-6s x%.1f\n", name, s.Legacy(name))
	}
	fmt.Fprintf(&b, "  Achievements: %d/%d\n", s.CountEarned(), len(pet.Achievements))
	return b.String()
}

// DisplayStats shows the stats screen until a key is pressed.
func DisplayStats(s pet.Snapshot) error {
	program := tea.NewProgram(StatsModel{Snapshot: s}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run stats display: %w", err)
	}
	return nil
}
