package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/metricsdash/internal/client/dashboard"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
)

const (
	DefaultWidth = 80
	barGlyph     = "█"
	pieGlyph     = "●"
)

// Screen is what the renderer reads from a dashboard view.
type Screen interface {
	State() dashboard.State
	ErrorMessage() string
	Data() dashboard.Data
	Messages() *i18n.Catalog
}

// Dashboard renders the whole screen for the view's current state. Width
// bounds the chart bars; values below 20 fall back to DefaultWidth.
func Dashboard(s Screen, width int) string {
	if width < 20 {
		width = DefaultWidth
	}
	msgs := s.Messages()

	if s.State() == dashboard.StateLoading {
		return Muted.Render(msgs.T(i18n.KeyLoading))
	}

	// A failed load keeps the full layout: the banner sits under the header
	// and the cards and charts show the empty batch.
	blocks := []string{Header(msgs, width), ""}
	if s.State() == dashboard.StateError {
		blocks = append(blocks, Banner.Render(s.ErrorMessage()), "")
	}

	data := s.Data()
	return lipgloss.JoinVertical(lipgloss.Left, append(blocks,
		Cards(data.Summary, msgs),
		"",
		BarChart(data.Bar, msgs.T(i18n.KeySalesChart), msgs, width),
		"",
		PieChart(data.Pie, msgs.T(i18n.KeyUsersChart), msgs),
	)...)
}

// Header renders the dashboard title with the logout action on the right.
func Header(msgs *i18n.Catalog, width int) string {
	title := Title.Render(msgs.T(i18n.KeyDashboardTitle))
	logout := Muted.Render("[logout] " + msgs.T(i18n.KeyLogout))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(logout), 1)
	return title + strings.Repeat(" ", gap) + logout
}

// Cards renders the total, sales and users counts side by side.
func Cards(sum dashboard.Summary, msgs *i18n.Catalog) string {
	card := func(label string, n int) string {
		return Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			Muted.Render(label),
			CardValue.Render(fmt.Sprint(n)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(msgs.T(i18n.KeyCardTotal), sum.Total),
		card(msgs.T(i18n.KeyCardSales), sum.Sales),
		card(msgs.T(i18n.KeyCardUsers), sum.Users),
	)
}

// BarChart renders one horizontal bar per category, scaled to the largest
// value.
func BarChart(chart dashboard.BarChart, title string, msgs *i18n.Catalog, width int) string {
	lines := []string{Title.Render(title)}
	if len(chart.Values) == 0 {
		return strings.Join(append(lines, Muted.Render(msgs.T(i18n.KeyNoData))), "\n")
	}

	labelWidth := 0
	maxValue := 0.0
	for i, label := range chart.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(label))
		maxValue = max(maxValue, chart.Values[i])
	}

	values := make([]string, len(chart.Values))
	valueWidth := 0
	for i, v := range chart.Values {
		values[i] = msgs.Number(v)
		valueWidth = max(valueWidth, len(values[i]))
	}

	room := max(width-labelWidth-valueWidth-2, 1)
	for i, label := range chart.Categories {
		n := barLength(chart.Values[i], maxValue, room)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			padRight(label, labelWidth),
			Bar.Render(strings.Repeat(barGlyph, n))+strings.Repeat(" ", room-n),
			values[i],
		))
	}
	return strings.Join(lines, "\n")
}

// PieChart renders the slices as a legend with each slice's share of the
// total.
func PieChart(chart dashboard.PieChart, title string, msgs *i18n.Catalog) string {
	lines := []string{Title.Render(title)}
	if len(chart.Slices) == 0 {
		return strings.Join(append(lines, Muted.Render(msgs.T(i18n.KeyNoData))), "\n")
	}

	total := 0.0
	nameWidth := 0
	for _, s := range chart.Slices {
		total += math.Abs(s.Value)
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	for i, s := range chart.Slices {
		dot := lipgloss.NewStyle().Foreground(pieColors[i%len(pieColors)]).Render(pieGlyph)
		lines = append(lines, fmt.Sprintf("%s %s %s (%s%%)",
			dot,
			padRight(s.Name, nameWidth),
			msgs.Number(s.Value),
			msgs.Number(share(s.Value, total)),
		))
	}
	return strings.Join(lines, "\n")
}

// barLength scales v against maxValue into at most width cells. Non-positive
// values get no bar.
func barLength(v, maxValue float64, width int) int {
	if v <= 0 || maxValue <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(v / maxValue * float64(width)))
	return min(max(n, 1), width)
}

func share(v, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Abs(v) / total * 100
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
