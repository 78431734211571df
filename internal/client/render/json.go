package render

import (
	"encoding/json"

	"github.com/dmitrijs2005/metricsdash/internal/client/dashboard"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
)

// Charts is the JSON document printed by the json command.
type Charts struct {
	Summary dashboard.Summary `json:"summary"`
	Bar     dashboard.Option  `json:"bar"`
	Pie     dashboard.Option  `json:"pie"`
}

// ChartsJSON returns the chart options of data, titled in msgs' locale, as
// indented JSON.
func ChartsJSON(data dashboard.Data, msgs *i18n.Catalog) ([]byte, error) {
	return json.MarshalIndent(Charts{
		Summary: data.Summary,
		Bar:     data.Bar.Option(msgs.T(i18n.KeySalesChart)),
		Pie:     data.Pie.Option(msgs.T(i18n.KeyUsersChart)),
	}, "", "  ")
}
