package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/supply_plotter/domain/models"
)

// GenerateSupplySummary renders a table describing the plotted points.
func GenerateSupplySummary(payload models.SupplyPayload, years string) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})

	n := min(len(payload.X), len(payload.Y))
	t.AppendRow(table.Row{"Years", years})
	t.AppendRow(table.Row{"Points", n})
	if n > 0 {
		x, y := payload.X[:n], payload.Y[:n]
		minY, maxY := y[0], y[0]
		for _, v := range y {
			minY = min(minY, v)
			maxY = max(maxY, v)
		}
		change := y[n-1] - y[0]

		t.AppendRows([]table.Row{
			{"First block", formatNumber(x[0])},
			{"Last block", formatNumber(x[n-1])},
			{"Start supply", formatNumber(y[0])},
			{"End supply", formatNumber(y[n-1])},
			{"Min supply", formatNumber(minY)},
			{"Max supply", formatNumber(maxY)},
			{"Net change", formatNumber(change)},
		})
		if y[0] != 0 {
			t.AppendRow(table.Row{"Net change %", strconv.FormatFloat(change/y[0]*100, 'f', 2, 64) + "%"})
		}
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
