package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Align(lipgloss.Center).
		Width(72).
		MarginBottom(1)

	taglineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Italic(true).
		Align(lipgloss.Center).
		Width(72).
		MarginBottom(1)
)

// ShowWelcomeBanner prints the interactive-mode welcome screen.
func ShowWelcomeBanner() {
	banner := `
████████╗██╗███╗   ███╗
╚══██╔══╝██║████╗ ████║   TIME IN MARKET
   ██║   ██║██╔████╔██║   Savings Plan Simulator
   ██║   ██║██║╚██╔╝██║
   ╚═╝   ╚═╝╚═╝     ╚═╝
`
	fmt.Print(bannerStyle.Render(banner))
	fmt.Println()
	fmt.Print(taglineStyle.Render("Backtest a recurring investment plan against real market history"))
	fmt.Println()
	fmt.Println()
}
