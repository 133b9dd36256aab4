package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))

	// Outline styles
	CodeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	LinkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue)).Underline(true)
	MathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan)).Italic(true)
	CalloutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange)).Bold(true)
	FootnoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment)).Italic(true)
)

// HeadingStyle returns the style for a heading of the given level. Levels
// past the second render progressively dimmer.
func HeadingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	case 2:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Yellow))
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))
	}
}
