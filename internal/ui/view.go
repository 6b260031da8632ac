package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tamalife/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	event   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	event: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	s := m.Snapshot
	sections := []string{
		renderTitle(s),
		"",
		renderStats(s),
		"",
		gameStyles.status.Render("Status: " + s.Status),
	}

	if emoji, msg, ok := s.GetEventDisplay(); ok {
		sections = append(sections, "", gameStyles.event.Render(fmt.Sprintf("%s %s", emoji, msg)))
	}

	if m.Message != "" && m.now().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderTitle(s pet.Snapshot) string {
	return gameStyles.title.Render(fmt.Sprintf("%s %s %s", s.StageEmoji, s.Name, s.StageEmoji))
}

func renderStats(s pet.Snapshot) string {
	stats := []struct {
		name, value string
	}{
		{"Form", s.FormName},
		{"Nature", pet.GetPersonalityEmoji(s.Personality) + " " + string(s.Personality)},
		{"Level", fmt.Sprintf("%d (%.0f xp to next)", s.Level, s.XPToNext)},
		{"Hunger", fmt.Sprintf("%s %3.0f%%", makeBar(s.Hunger), s.Hunger)},
		{"Happiness", fmt.Sprintf("%s %3.0f%%", makeBar(s.Happiness), s.Happiness)},
		{"Energy", fmt.Sprintf("%s %3.0f%%", makeBar(s.Energy), s.Energy)},
		{"Clean", fmt.Sprintf("%s %3.0f%%", makeBar(s.Cleanliness), s.Cleanliness)},
		{"Health", fmt.Sprintf("%s %3.0f%%", makeBar(s.Health), s.Health)},
		{"Age", formatAge(s.AgeMinutes)},
		{"Coins", fmt.Sprintf("🪙 %d", s.Coins)},
		{"Sick", map[bool]string{true: "Yes", false: "No"}[s.IsSick]},
	}
	if s.SkillPoints > 0 {
		stats = append(stats, struct{ name, value string }{"Points", fmt.Sprintf("%d unspent", s.SkillPoints)})
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, entry := range m.Menu {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, entry.Label))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		renderTitle(m.Snapshot),
		"",
		animStyle.Render(frame),
	}

	if m.Message != "" && m.now().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// makeBar draws a five-cell gauge for a 0-100 stat.
func makeBar(value float64) string {
	filled := int(value) / 20
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

func formatAge(minutes float64) string {
	total := int(minutes)
	days, hours, mins := total/1440, total%1440/60, total%60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
