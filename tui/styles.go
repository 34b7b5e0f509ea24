package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("63")
	secondaryColor = lipgloss.Color("240")
	accentColor    = lipgloss.Color("205")
	errorColor     = lipgloss.Color("196")
	easyColor      = lipgloss.Color("42")
	titleColor     = lipgloss.Color("228")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(titleColor).
			Border(lipgloss.NormalBorder()).
			Align(lipgloss.Center)

	listTitleStyle = lipgloss.NewStyle().
			Foreground(titleColor)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(primaryColor)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(titleColor).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	activeFieldStyle = fieldStyle.
				BorderForeground(titleColor).
				Foreground(titleColor)

	cardFrontStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center)

	incorrectStyle = lipgloss.NewStyle().Foreground(errorColor)
	correctStyle   = lipgloss.NewStyle().Foreground(titleColor)
	easyStyle      = lipgloss.NewStyle().Foreground(easyColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

