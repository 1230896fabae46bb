package plot

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

const maxGridTicks = 100

// DrawLineChart renders data as a single line series and returns the PNG bytes.
// Unequal series lengths are left to go-chart's validation. Two empty series
// produce a chart with titled, labelled axes and no line.
func DrawLineChart(data dataForGraph, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	series := chart.ContinuousSeries{
		Name:    data.getNameYAxis(),
		XValues: data.getXValues(),
		YValues: data.getYValues(),
		Style: chart.Style{
			StrokeColor: drawing.ColorBlue,
			StrokeWidth: 2,
		},
	}

	graph := chart.Chart{
		Title: data.GetNameGraph(),
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           data.getNameXAxis(),
			ValueFormatter: axisValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           data.getNameYAxis(),
			ValueFormatter: axisValueFormatter,
			Ticks:          data.generateGrid(),
			GridMajorStyle: chart.Style{
				StrokeColor:     drawing.ColorFromHex("efefef"),
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		Series: []chart.Series{series},
	}

	if len(data.getXValues()) == 0 && len(data.getYValues()) == 0 {
		// go-chart rejects empty series; anchor the axes with an invisible one
		graph.Series = []chart.Series{chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{Hidden: true},
		}}
		graph.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	}

	// assign only non-nil pointers: a typed nil in chart.Range would not read as unset
	if r := data.xRange(); r != nil {
		graph.XAxis.Range = r
	}
	if r := data.yRange(); r != nil {
		graph.YAxis.Range = r
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}

	return buffer.Bytes(), nil
}

func axisValueFormatter(v interface{}) string {
	if vf, isFloat := v.(float64); isFloat {
		return formatTick(vf, -1)
	}
	return ""
}

// formatTick prints v with a fixed number of decimals, or the shortest exact form when decimals < 0.
func formatTick(v float64, decimals int) string {
	if math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	if decimals < 0 {
		return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// stepDecimals is the number of decimals needed to print multiples of step without noise.
func stepDecimals(step float64) int {
	if step <= 0 || step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(step) - 1e-9))
}

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	if maxValue < 1e-10 {
		return 1e-10
	}

	// order of magnitude, then normalize to [1, 10)
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// round large steps to whole tens/hundreds
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}

	return finalStep
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func findMinValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	min := y[0]
	for _, v := range y {
		if v < min {
			min = v
		}
	}
	return min
}
