package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pivolan/supply_plotter/domain/models"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrMissingKey     = errors.New("missing payload key")
)

type rawSupplyPayload struct {
	X *[]float64 `json:"x"`
	Y *[]float64 `json:"y"`
}

// ParsePayload decodes {"x": [...], "y": [...]}. Lengths are not compared here;
// the chart library rejects mismatched series at render time.
func ParsePayload(raw string) (models.SupplyPayload, error) {
	var p rawSupplyPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.SupplyPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.X == nil {
		return models.SupplyPayload{}, fmt.Errorf("%w: %q", ErrMissingKey, "x")
	}
	if p.Y == nil {
		return models.SupplyPayload{}, fmt.Errorf("%w: %q", ErrMissingKey, "y")
	}
	return models.SupplyPayload{X: *p.X, Y: *p.Y}, nil
}
