package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func successToast(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func errorToast(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

func pageTitle(title string) string {
	return titleStyle.Render(title)
}

func dim(msg string) string {
	return dimStyle.Render(msg)
}
