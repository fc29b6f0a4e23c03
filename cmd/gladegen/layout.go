package main

import (
	"fmt"
	"strings"

	"gladegen/cmd/gladegen/glade"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleLayoutTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99")).
				Padding(0, 1)

	styleLayoutBody = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// printLayout renders the --layout view: a styled frame around the model's
// plain-text structural report.
func printLayout(m *glade.Model, source string) {
	fmt.Println(styleLayoutTitle.Render(fmt.Sprintf("%s: %d objects", source, m.Len())))
	fmt.Println(styleLayoutBody.Render(strings.TrimRight(m.Layout(), "\n")))
}
