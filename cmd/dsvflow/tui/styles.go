package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dsv-enterprise/dsvflow/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#D4A017")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F3F4F6")
	colorBorder  = lipgloss.Color("#4B5563")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	statBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 1)

	notifStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warnNotifStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	reportStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

var statusStyles = map[models.OrderStatus]lipgloss.Style{
	models.StatusDraft:      lipgloss.NewStyle().Foreground(colorMuted),
	models.StatusPending:    lipgloss.NewStyle().Foreground(colorWarning),
	models.StatusApproved:   lipgloss.NewStyle().Foreground(colorInfo),
	models.StatusProduction: lipgloss.NewStyle().Foreground(colorPrimary),
	models.StatusCompleted:  lipgloss.NewStyle().Foreground(colorSuccess),
	models.StatusDelivered:  lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
}

// FormatStatus returns a styled lifecycle state name.
func FormatStatus(status models.OrderStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status.String())
	}
	return status.String()
}

// FormatKey formats one help entry.
func FormatKey(key, description string) string {
	return helpKeyStyle.Render(key) + " " + statLabelStyle.Render(description)
}
