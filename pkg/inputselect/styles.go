package inputselect

import "github.com/charmbracelet/lipgloss"

// Colors shared by the trigger and the panel.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	BgSecondary  = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
)

// Trigger styles
var (
	LabelText = lipgloss.NewStyle().Foreground(Muted)

	TriggerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	TriggerBoxFocused = TriggerBox.
				BorderForeground(Primary)

	PlaceholderText = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	ValueText       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Panel styles
var (
	PanelBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderNormal).
			Background(BgSecondary)

	RowNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	RowHighlighted = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	RowSelected = lipgloss.NewStyle().
			Foreground(Primary)

	RowMuted = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	RowCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	MoreIndicator = lipgloss.NewStyle().Foreground(Muted)
)
