package plot

import "github.com/wcharczuk/go-chart/v2"

type dataForGraph interface {
	GetNameGraph() string
	getNameXAxis() string
	getNameYAxis() string
	getXValues() []float64
	getYValues() []float64
	generateGrid() []chart.Tick
	xRange() *chart.ContinuousRange
	yRange() *chart.ContinuousRange
}
