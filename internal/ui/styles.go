package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sergiud/glsexpand/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// List view styles
	ID       lipgloss.Style
	Short    lipgloss.Style
	Long     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style

	// Preview styles
	PreviewHeader lipgloss.Style
	PreviewText   lipgloss.Style

	// Chrome styles
	Border lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		ID:            lipgloss.NewStyle().Bold(true),
		Short:         lipgloss.NewStyle(),
		Long:          lipgloss.NewStyle(),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PreviewHeader: lipgloss.NewStyle().Bold(true),
		PreviewText:   lipgloss.NewStyle(),
		Border:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		SelectedBg:    lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	idColor := ParseANSIColor(config.GetColorID())
	shortColor := ParseANSIColor(config.GetColorShort())
	longColor := ParseANSIColor(config.GetColorLong())
	borderColor := lipgloss.Color(config.GetColorBorder())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	dimColor := lipgloss.Color(config.GetColorDim())

	// List view styles
	s.ID = lipgloss.NewStyle().Bold(true).Foreground(idColor)
	s.Short = lipgloss.NewStyle().Foreground(shortColor)
	s.Long = lipgloss.NewStyle().Foreground(longColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)

	// Preview styles
	s.PreviewHeader = lipgloss.NewStyle().Bold(true).Foreground(idColor)
	s.PreviewText = lipgloss.NewStyle().Foreground(shortColor)

	// Chrome styles
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.SelectedBg = selectedBg
}

// ParseANSIColor converts ANSI color codes to lipgloss colors
func ParseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
