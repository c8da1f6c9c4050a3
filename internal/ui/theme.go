package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vloureiro/garagem/internal/checklist"
	"github.com/vloureiro/garagem/internal/notify"
)

// Theme defines the color palette for the checklist screen.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	SelectionBg   string
	SelectionText string
}

// DefaultTheme is a dark palette in the Dracula family.
var DefaultTheme = Theme{
	Name:          "Dracula",
	Text:          "#F8F8F2",
	Muted:         "#6272A4",
	Accent:        "#BD93F9",
	Success:       "#50FA7B",
	Warning:       "#F1FA8C",
	Danger:        "#FF5555",
	Info:          "#8BE9FD",
	SelectionBg:   "#44475A",
	SelectionText: "#F8F8F2",
}

// Styles returns pre-built Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		InfoText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains the rendered Lipgloss styles.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
	Selected    lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
}

// statusStyle picks the text style for an item status.
func (s Styles) statusStyle(status checklist.Status) lipgloss.Style {
	switch status {
	case checklist.StatusCompleted:
		return s.SuccessText
	case checklist.StatusNeedsReplacement:
		return s.WarningText
	case checklist.StatusIgnored:
		return s.MutedText
	default:
		return s.Text
	}
}

// toastStyle picks the text style for a notification level.
func (s Styles) toastStyle(level notify.Level) lipgloss.Style {
	switch level {
	case notify.LevelError:
		return s.DangerText
	case notify.LevelWarn:
		return s.WarningText
	default:
		return s.InfoText
	}
}
