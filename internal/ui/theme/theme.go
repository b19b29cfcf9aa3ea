package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/clinictrack/clinictrack/internal/rank"
)

// Color palette
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// rankStyles colors each tier from dim to bright.
var rankStyles = map[string]lipgloss.Style{
	rank.Trainee.Label:  lipgloss.NewStyle().Foreground(TextDim),
	rank.Junior.Label:   lipgloss.NewStyle().Foreground(Secondary),
	rank.Standard.Label: lipgloss.NewStyle().Foreground(Primary),
	rank.Expert.Label:   lipgloss.NewStyle().Foreground(Accent).Bold(true),
	rank.Master.Label:   lipgloss.NewStyle().Foreground(Success).Bold(true),
}

// RankBadge renders a rank label in its tier color.
func RankBadge(r rank.Rank) string {
	style, ok := rankStyles[r.Label]
	if !ok {
		style = Body
	}
	return style.Render(r.Label)
}
