package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

type dataLineForGraph struct {
	xValues   []float64
	yValues   []float64
	nameXAxis string
	nameYAxis string
	nameGraph string
}

func NewDataLineForGraph(x []float64, y []float64, nameXAxis, nameYAxis, nameGraph string) dataLineForGraph {
	return dataLineForGraph{
		xValues:   x,
		yValues:   y,
		nameXAxis: nameXAxis,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataLineForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataLineForGraph) getNameXAxis() string {
	return d.nameXAxis
}
func (d dataLineForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataLineForGraph) getXValues() []float64 {
	return d.xValues
}
func (d dataLineForGraph) getYValues() []float64 {
	return d.yValues
}

// generateGrid returns y ticks aligned to a nice step that cover the whole data span.
// An empty result leaves the range to the chart library.
func (d dataLineForGraph) generateGrid() []chart.Tick {
	if len(d.yValues) == 0 {
		return nil
	}
	minY, maxY := findMinValue(d.yValues), findMaxValue(d.yValues)
	span := maxY - minY
	if !isFinite(span) || span <= 0 {
		return nil
	}
	gridStep := calculateGridStep(span)
	if !isFinite(gridStep) || gridStep <= 0 {
		return nil
	}
	start := math.Floor(minY/gridStep) * gridStep
	end := math.Ceil(maxY/gridStep) * gridStep
	if !isFinite(start) || !isFinite(end) {
		return nil
	}
	decimals := stepDecimals(gridStep)

	var ticks []chart.Tick
	for i := 0; i < maxGridTicks; i++ {
		v := start + float64(i)*gridStep
		if v > end+gridStep/2 {
			break
		}
		ticks = append(ticks, chart.Tick{
			Value: v,
			Label: formatTick(v, decimals),
		})
	}
	return ticks
}

// xRange pads a zero-width x span so a single block still gets an axis.
func (d dataLineForGraph) xRange() *chart.ContinuousRange {
	return paddedRange(d.xValues)
}

// yRange pads a flat supply curve, where generateGrid yields no ticks.
func (d dataLineForGraph) yRange() *chart.ContinuousRange {
	return paddedRange(d.yValues)
}

func paddedRange(values []float64) *chart.ContinuousRange {
	if len(values) == 0 {
		return nil
	}
	minV, maxV := findMinValue(values), findMaxValue(values)
	if minV != maxV {
		return nil
	}
	pad := math.Abs(minV) * 0.1
	if pad == 0 {
		pad = 1
	}
	// clamp so the range stays finite next to ±MaxFloat64
	lo, hi := minV-pad, maxV+pad
	if math.IsInf(lo, -1) {
		lo = -math.MaxFloat64
	}
	if math.IsInf(hi, 1) {
		hi = math.MaxFloat64
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
