package main

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	colorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}

	styleTitle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleHeader  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleCell    = lipgloss.NewStyle().PaddingRight(2)
)

const (
	iconSuccess = "✔"
	iconError   = "✘"
	iconWarning = "⚠"
)
