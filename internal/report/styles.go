// Package report renders crafting plans for the terminal.
package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Rarity colors follow the in-game palette
var rarityColors = map[domain.Rarity]lipgloss.Color{
	domain.RarityCommon:    lipgloss.Color("#9e9e9e"),
	domain.RarityUncommon:  lipgloss.Color("#4caf50"),
	domain.RarityRare:      lipgloss.Color("#2196f3"),
	domain.RarityEpic:      lipgloss.Color("#ab47bc"),
	domain.RarityLegendary: lipgloss.Color("#ffc107"),
}

var (
	mutedColor   = lipgloss.Color("#6b7280")
	warningColor = lipgloss.Color("#e53935")
	accentColor  = lipgloss.Color("#8bc34a")
)

// Styles holds the lipgloss styles used by the renderers
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Muted     lipgloss.Style
	Warning   lipgloss.Style
	Quantity  lipgloss.Style
	Separator string

	// ColorRarity tints item names by rarity
	ColorRarity bool
}

// DefaultStyles returns the standard colored styles. lipgloss drops the
// colors itself when the output is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Header:      lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Muted:       lipgloss.NewStyle().Foreground(mutedColor),
		Warning:     lipgloss.NewStyle().Foreground(warningColor),
		Quantity:    lipgloss.NewStyle().Bold(true),
		Separator:   "│",
		ColorRarity: true,
	}
}

// PlainStyles returns styles without any decoration
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:     plain,
		Header:    plain.Padding(0, 1),
		Cell:      plain.Padding(0, 1),
		Muted:     plain,
		Warning:   plain,
		Quantity:  plain,
		Separator: "|",
	}
}

func (s Styles) itemName(item *domain.Item, id string) string {
	if item == nil {
		return s.Warning.Render(id + " (unknown)")
	}
	name := item.DisplayName()
	if !s.ColorRarity {
		return name
	}
	return lipgloss.NewStyle().Foreground(rarityColors[item.Rarity]).Render(name)
}
