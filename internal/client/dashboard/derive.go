package dashboard

import "github.com/dmitrijs2005/metricsdash/internal/client/models"

// Summary holds the three card counts.
type Summary struct {
	Total int `json:"total"`
	Sales int `json:"sales"`
	Users int `json:"users"`
}

// BarChart is the sales chart: one bar per metric, in backend order.
type BarChart struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PieChart is the users chart: one slice per metric.
type PieChart struct {
	Slices []PieSlice `json:"slices"`
}

// Data is everything the dashboard renders, derived from one metric batch.
type Data struct {
	Sales   []models.Metric `json:"-"`
	Users   []models.Metric `json:"-"`
	Summary Summary         `json:"summary"`
	Bar     BarChart        `json:"bar"`
	Pie     PieChart        `json:"pie"`
}

// Partition returns the metrics in category, keeping their order. The result
// is never nil.
func Partition(metrics []models.Metric, category string) []models.Metric {
	out := make([]models.Metric, 0, len(metrics))
	for _, m := range metrics {
		if m.InCategory(category) {
			out = append(out, m)
		}
	}
	return out
}

// Derive computes the render data of metrics. It has no side effects and
// gives the same result for the same input.
func Derive(metrics []models.Metric) Data {
	sales := Partition(metrics, models.CategorySales)
	users := Partition(metrics, models.CategoryUsers)

	bar := BarChart{
		Categories: make([]string, 0, len(sales)),
		Values:     make([]float64, 0, len(sales)),
	}
	for _, m := range sales {
		bar.Categories = append(bar.Categories, m.Label)
		bar.Values = append(bar.Values, m.Value)
	}

	pie := PieChart{Slices: make([]PieSlice, 0, len(users))}
	for _, m := range users {
		pie.Slices = append(pie.Slices, PieSlice{Name: m.Label, Value: m.Value})
	}

	return Data{
		Sales: sales,
		Users: users,
		Summary: Summary{
			Total: len(metrics),
			Sales: len(sales),
			Users: len(users),
		},
		Bar: bar,
		Pie: pie,
	}
}
