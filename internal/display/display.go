package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kvbadhan/timeinmarket/internal/dataflows"
	"github.com/kvbadhan/timeinmarket/internal/sip"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0EA5E9")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2).
			Width(62)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Width(22)

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
)

// ShowSummary renders the simulation KPI panel for a finished run.
func ShowSummary(inst *dataflows.Instrument, sched sip.Schedule, res *sip.Result) {
	fmt.Println(titleStyle.Render("📊 Simulation Summary"))

	pnlStyle := gainStyle
	if res.Profit.IsNegative() {
		pnlStyle = lossStyle
	}

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Instrument", fmt.Sprintf("%s (%s)", inst.Name, inst.Symbol))
	row("Plan", fmt.Sprintf("€%s %s", sched.Amount.StringFixed(2), sched.Describe()))
	if !res.Empty() {
		first := res.Series[0].Date
		last := res.Series[len(res.Series)-1].Date
		row("Period", fmt.Sprintf("%s → %s  (%d trading days)",
			first.Format("2006-01-02"), last.Format("2006-01-02"), len(res.Series)))
	}
	row("Purchases", fmt.Sprintf("%d", len(res.Purchases)))
	row("Total invested", "€"+res.TotalInvested.StringFixed(2))
	row("Final value", "€"+res.FinalValue.StringFixed(2))
	row("Profit", pnlStyle.Render(fmt.Sprintf("€%s (%s%%)",
		res.Profit.StringFixed(2), res.ProfitPct.StringFixed(2))))

	fmt.Println(panelStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// ShowChart prints a terminal chart of portfolio value against cash
// invested across the valuation series.
func ShowChart(res *sip.Result) {
	if res.Empty() {
		return
	}

	fmt.Println(titleStyle.Render("📈 Portfolio Value vs Cash Invested"))
	fmt.Println(RenderChart(res.Series, 64, 14))
	fmt.Println(dimStyle.Render("   █ portfolio value   · cash invested"))
	fmt.Println()
}

// ShowEmptyResult explains a run that produced no valuation points.
func ShowEmptyResult(sched sip.Schedule) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(
		"Nothing to simulate: the start date %s is after the last available trading day.",
		sched.Start.Format("2006-01-02"))))
}
