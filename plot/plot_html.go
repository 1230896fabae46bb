package plot

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DrawLineChartHTML renders the same series as an interactive echarts page.
func DrawLineChartHTML(data dataForGraph) ([]byte, error) {
	xValues := data.getXValues()
	yValues := data.getYValues()
	if len(xValues) != len(yValues) {
		return nil, fmt.Errorf("error rendering html chart: %d x values for %d y values", len(xValues), len(yValues))
	}

	labels := make([]string, len(xValues))
	items := make([]opts.LineData, len(yValues))
	for i := range xValues {
		labels[i] = formatTick(xValues[i], -1)
		items[i] = opts.LineData{Value: yValues[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: data.GetNameGraph()}),
		charts.WithTitleOpts(opts.Title{Title: data.GetNameGraph()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: data.getNameXAxis()}),
		charts.WithYAxisOpts(opts.YAxis{Name: data.getNameYAxis()}),
	)
	line.SetXAxis(labels).AddSeries(data.getNameYAxis(), items)

	buffer := bytes.NewBuffer([]byte{})
	if err := line.Render(buffer); err != nil {
		return nil, fmt.Errorf("error rendering html chart: %w", err)
	}
	return buffer.Bytes(), nil
}
