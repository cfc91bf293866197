package tui

import (
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1)
	activeTab     = tabStyle.Bold(true).Underline(true)

	riskStyles = map[string]lipgloss.Style{
		model.RiskHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		model.RiskMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.RiskLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
	statusStyles = map[string]lipgloss.Style{
		model.StatusActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		model.StatusRenewalDue: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.StatusExpired:    lipgloss.NewStyle().Faint(true),
	}
)

func panel(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(inner)
}

func styled(styles map[string]lipgloss.Style, v string) string {
	if s, ok := styles[v]; ok {
		return s.Render(v)
	}
	return v
}
