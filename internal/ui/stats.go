package ui

import (
	"fmt"
	"strings"

	"vpet/internal/pet"
)

const barCells = 10

// makeBar draws value (0-100) as a fixed-width bar
func makeBar(value float64) string {
	filled := int(value / (pet.MaxStat / barCells))
	filled = min(max(filled, 0), barCells)
	return strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)
}

// StatLines returns one bar line per attribute
func StatLines(a pet.Attributes) []string {
	stats := []struct {
		name  string
		value float64
	}{
		{"Health", a.Health},
		{"Happiness", a.Happiness},
		{"Hunger", a.Hunger},
		{"Thirst", a.Thirst},
	}

	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3.0f%%", s.name+":", makeBar(s.value), s.value))
	}
	return lines
}

// StatsCard renders a boxed summary of the pet, used outside the TUI
func StatsCard(a pet.Attributes) string {
	var s strings.Builder
	s.WriteString("╔══════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %-32s║\n", a.Name))
	s.WriteString("╠══════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  %-10s %-21s║\n", "Mood:", a.Mood))
	s.WriteString(fmt.Sprintf("║  %-10s %-21s║\n", "Animation:", a.Animation))
	for _, line := range StatLines(a) {
		s.WriteString(fmt.Sprintf("║  %s    ║\n", line))
	}
	s.WriteString("╚══════════════════════════════════╝\n")
	return s.String()
}
