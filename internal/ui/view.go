package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vpet/internal/pet"
)

var gameStyles = struct {
	title  lipgloss.Style
	status lipgloss.Style
	stats  lipgloss.Style
	sprite lipgloss.Style
	info   lipgloss.Style
	help   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	sprite: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true),

	info: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Padding(0, 1),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Padding(0, 1),
}

const helpText = "f feed • w water • p pet • arrows move • drag to carry • right-click to pet • q quit"

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Bye!\n"
	}

	a := m.shown.attrs
	title := gameStyles.title.Render(fmt.Sprintf("%s  %s", a.Name, pet.GetStatusWithLabel(a)))

	sections := []string{
		m.renderPlayArea(),
		title,
		gameStyles.stats.Render(strings.Join(StatLines(a), "\n")),
		m.renderPlayback(),
	}

	if m.Message != "" && m.clock.Now().Before(m.MessageExpires) {
		sections = append(sections, gameStyles.status.Padding(0, 1).Render(m.Message))
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, gameStyles.help.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPlayArea draws the sprite at the pet's position. The area starts at
// the top-left of the terminal so mouse coordinates map to it directly.
func (m Model) renderPlayArea() string {
	pos := m.shown.position
	sprite := gameStyles.sprite.Render(SpriteFor(m.shown.attrs.Animation, m.engine.Player().FrameIndex()))

	placed := lipgloss.NewStyle().
		MarginLeft(int(pos.X)).
		MarginTop(int(pos.Y)).
		Render(sprite)

	area := lipgloss.NewStyle().Height(m.playRows()).MaxHeight(m.playRows())
	if m.width > 0 {
		area = area.MaxWidth(m.width)
	}
	return area.Render(placed)
}

func (m Model) renderPlayback() string {
	var lines []string

	seq := m.shown.sequence
	if seq == nil {
		lines = append(lines, "Animation: none")
	} else {
		lines = append(lines,
			fmt.Sprintf("Animation: %s (%s) frame %d/%d", seq.Category(), seq.Name(), m.engine.Player().FrameIndex()+1, seq.FrameCount()),
			fmt.Sprintf("Sequence:  %s", seq.ID()),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Image:     %s (%s)", m.shown.frame.ImagePath, m.shown.frame.Duration),
		fmt.Sprintf("Position:  %s", m.shown.position),
	)
	if m.Dragging() {
		lines = append(lines, "Dragging...")
	}

	return gameStyles.info.Render(strings.Join(lines, "\n"))
}
