package models

import "time"

// Known metric categories. Anything else, including a null category, is
// shown only in the total count.
const (
	CategorySales = "vendas"
	CategoryUsers = "usuarios"
)

// Metric is a single labeled data point, as returned by the backend.
// Metrics are never modified client-side.
type Metric struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Category is nil when the backend sends null.
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryName returns the category or "" when it is null.
func (m Metric) CategoryName() string {
	if m.Category == nil {
		return ""
	}
	return *m.Category
}

// InCategory reports whether the metric belongs to category.
func (m Metric) InCategory(category string) bool {
	return m.Category != nil && *m.Category == category
}
