package dashboard

// ECharts option objects, as consumed by a web front end.

const (
	barColor  = "#3b82f6"
	pieRadius = "50%"
)

type Title struct {
	Text string `json:"text"`
	Left string `json:"left"`
}

type Tooltip struct {
	Trigger string `json:"trigger"`
}

type CategoryAxis struct {
	Type string   `json:"type"`
	Data []string `json:"data"`
}

type ValueAxis struct {
	Type string `json:"type"`
}

type ItemStyle struct {
	Color string `json:"color"`
}

type Series struct {
	Type      string     `json:"type"`
	Data      any        `json:"data"`
	Radius    string     `json:"radius,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
}

type Option struct {
	Title   Title         `json:"title"`
	Tooltip Tooltip       `json:"tooltip"`
	XAxis   *CategoryAxis `json:"xAxis,omitempty"`
	YAxis   *ValueAxis    `json:"yAxis,omitempty"`
	Series  []Series      `json:"series"`
}

// Option returns the bar chart configuration titled title.
func (b BarChart) Option(title string) Option {
	return Option{
		Title:   Title{Text: title, Left: "center"},
		Tooltip: Tooltip{Trigger: "axis"},
		XAxis:   &CategoryAxis{Type: "category", Data: b.Categories},
		YAxis:   &ValueAxis{Type: "value"},
		Series: []Series{{
			Type:      "bar",
			Data:      b.Values,
			ItemStyle: &ItemStyle{Color: barColor},
		}},
	}
}

// Option returns the pie chart configuration titled title.
func (p PieChart) Option(title string) Option {
	return Option{
		Title:   Title{Text: title, Left: "center"},
		Tooltip: Tooltip{Trigger: "item"},
		Series: []Series{{
			Type:   "pie",
			Data:   p.Slices,
			Radius: pieRadius,
		}},
	}
}
