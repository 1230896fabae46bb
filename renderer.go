package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pivolan/supply_plotter/domain/models"
	logging "github.com/pivolan/supply_plotter/log"
	"github.com/pivolan/supply_plotter/plot"
)

const (
	xAxisName = "Time (blocks)"
	yAxisName = "Supply (tokens)"
)

func ChartTitle(years string) string {
	return fmt.Sprintf("Token Supply vs. Time (over %s years)", years)
}

func ChartFileName(years string, format models.ArtifactFormat) string {
	return fmt.Sprintf("supply_over_time_%syrs.%s", years, format)
}

type renderedChart struct {
	format models.ArtifactFormat
	body   []byte
}

type SupplyChartRenderer struct {
	OutputDir string
	Width     int
	Height    int
	HTML      bool
}

// Render draws the supply curve and writes it to OutputDir, overwriting any previous
// chart for the same years. Everything is rendered before the first write, so a
// rendering error leaves no file behind.
func (r SupplyChartRenderer) Render(payload models.SupplyPayload, years string) ([]models.ChartArtifact, error) {
	data := plot.NewDataLineForGraph(payload.X, payload.Y, xAxisName, yAxisName, ChartTitle(years))

	pngBytes, err := plot.DrawLineChart(data, r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	outputs := []renderedChart{{models.ArtifactPNG, pngBytes}}

	if r.HTML {
		htmlBytes, err := plot.DrawLineChartHTML(data)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, renderedChart{models.ArtifactHTML, htmlBytes})
	}

	dir := r.OutputDir
	if dir == "" {
		dir = "."
	}

	artifacts := make([]models.ChartArtifact, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, ChartFileName(years, out.format))
		if err := os.WriteFile(path, out.body, 0644); err != nil {
			return artifacts, fmt.Errorf("failed to write chart: %w", err)
		}
		logging.LogInfo("Chart saved",
			zap.String("path", path),
			zap.String("format", string(out.format)),
			zap.Int("size", len(out.body)))
		artifacts = append(artifacts, models.ChartArtifact{
			Path:   path,
			Format: out.format,
			Size:   int64(len(out.body)),
		})
	}
	return artifacts, nil
}
