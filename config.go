package wieringa

import (
	"errors"
	"fmt"
)

// Config controls how individual tiles are built.
type Config struct {
	// SpaceTiles shrinks every tile about its center by Spacing to show gaps.
	SpaceTiles bool    `yaml:"space_tiles"`
	Spacing    float64 `yaml:"spacing"`
	// TileHeight is the extrusion thickness of a tile.
	TileHeight float64 `yaml:"tile_height"`
}

// DefaultConfig returns the configuration used by the command line tool.
func DefaultConfig() Config {
	return Config{
		SpaceTiles: false,
		Spacing:    0.95,
		TileHeight: 0.02,
	}
}

// Validate checks the configuration values. Spacing is only checked when
// SpaceTiles is set.
func (c Config) Validate() error {
	if !(c.TileHeight > 0) {
		return fmt.Errorf("tile height must be positive, got %g", c.TileHeight)
	}
	if c.SpaceTiles && !(c.Spacing > 0 && c.Spacing <= 1) {
		return fmt.Errorf("tile spacing must be in (0, 1], got %g", c.Spacing)
	}
	return nil
}

// RoofParams controls how the layout layers are stacked into a roof.
type RoofParams struct {
	// Resolution is passed to Layout.Layer.
	Resolution float64 `yaml:"resolution"`
	// XYScale scales each layer in the horizontal plane.
	XYScale float64 `yaml:"xy_scale"`
	// ZScale scales layer heights.
	ZScale float64 `yaml:"z_scale"`
	// LayerOffset is the vertical distance between the two layers.
	LayerOffset float64 `yaml:"layer_offset"`
}

// DefaultRoofParams returns the parameters used by the command line tool.
func DefaultRoofParams() RoofParams {
	return RoofParams{
		Resolution:  1,
		XYScale:     10,
		ZScale:      10,
		LayerOffset: 2,
	}
}

var errBadScale = errors.New("roof scales must be positive")

// Validate checks the roof parameters.
func (p RoofParams) Validate() error {
	if !(p.Resolution > 0) {
		return fmt.Errorf("roof resolution must be positive, got %g", p.Resolution)
	}
	if !(p.XYScale > 0) || !(p.ZScale > 0) {
		return errBadScale
	}
	if p.LayerOffset < 0 {
		return fmt.Errorf("roof layer offset must not be negative, got %g", p.LayerOffset)
	}
	return nil
}
