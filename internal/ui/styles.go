package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vellumtools/vellum/internal/model"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): highlights, paths, interactive elements
// - Muted (gray): secondary info, counts, prefixes
// - Entity kinds each get their own highlight color

var (
	// Accent style for entity names, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info, hints, structural prefixes
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// kindStyles holds the per-kind highlight styles, configurable from the
// workspace config.
var kindStyles = map[model.EntityKind]lipgloss.Style{
	model.KindTerm:   highlightStyle("#A78BFA"),
	model.KindDate:   highlightStyle("#7DC4E4"),
	model.KindPerson: highlightStyle("#A6DA95"),
	model.KindPlace:  highlightStyle("#EED49F"),
}

func highlightStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color(color))
}

// ConfigureKindColor overrides the highlight color for one entity kind.
func ConfigureKindColor(kind model.EntityKind, color string) {
	if color == "" {
		return
	}
	kindStyles[kind] = highlightStyle(color)
}

// KindStyle returns the highlight style for an entity kind.
func KindStyle(kind model.EntityKind) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}
	return Accent
}
