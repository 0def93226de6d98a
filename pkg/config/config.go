/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package config resolves and validates the tunable parameters described in §6: camera field of
// view, catalog filtering, imager thresholds, matcher tolerance, and the quadruple-builder's PRNG
// seed.
package config

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/stonkchonk/interplanetary-localization/pkg/imager"
	"github.com/stonkchonk/interplanetary-localization/pkg/vector"
)

/*****************************************************************************************************************/

const (
	DefaultFieldOfViewDeg  = 17.0
	MaxFieldOfViewDeg      = 120.0
	DefaultStarThreshold   = imager.DefaultThreshold
	DefaultMatchToleranceDeg = 0.1
	DefaultMaxQuadruples   = 20
)

/*****************************************************************************************************************/

// AngleBounds is an inclusive (min, max) pair of angles, in degrees.
type AngleBounds struct {
	MinDeg float64
	MaxDeg float64
}

/*****************************************************************************************************************/

// Configuration holds every recognized option from §6's "Configuration struct".
type Configuration struct {
	FieldOfViewDeg      float64
	MagnitudeLimit      float64
	StarThreshold       int
	ComponentAreaBounds imager.AreaBounds
	PairAngleBoundsDeg  AngleBounds
	MatchToleranceDeg   float64
	MaxQuadruples       int

	// RNGSeedSet distinguishes "seed supplied" from "seed is zero"; when false, Resolve sets the
	// seed to the fixed value 1 rather than drawing it from wall-clock entropy, since the core has
	// no clock dependency (§5).
	RNGSeed    uint64
	RNGSeedSet bool
}

/*****************************************************************************************************************/

// Resolve fills unset fields with their documented defaults and returns the result; it never
// mutates the receiver, following the candidate-then-fallback pattern the rest of the pipeline
// uses for optional inputs.
func (c Configuration) Resolve() Configuration {
	resolved := c

	if resolved.FieldOfViewDeg == 0 {
		resolved.FieldOfViewDeg = DefaultFieldOfViewDeg
	}

	if resolved.StarThreshold == 0 {
		resolved.StarThreshold = DefaultStarThreshold
	}

	if resolved.ComponentAreaBounds == (imager.AreaBounds{}) {
		resolved.ComponentAreaBounds = imager.DefaultAreaBounds
	}

	if resolved.PairAngleBoundsDeg == (AngleBounds{}) {
		resolved.PairAngleBoundsDeg = AngleBounds{
			MinDeg: resolved.FieldOfViewDeg / 1000,
			MaxDeg: resolved.FieldOfViewDeg,
		}
	}

	if resolved.MatchToleranceDeg == 0 {
		resolved.MatchToleranceDeg = DefaultMatchToleranceDeg
	}

	if resolved.MaxQuadruples == 0 {
		resolved.MaxQuadruples = DefaultMaxQuadruples
	}

	if !resolved.RNGSeedSet {
		resolved.RNGSeed = 1
		resolved.RNGSeedSet = true
	}

	return resolved
}

/*****************************************************************************************************************/

// Validate checks that every field of a resolved Configuration is within its documented range,
// following the same candidate-validate shape the teacher uses for header-derived values.
func (c Configuration) Validate() error {
	if c.FieldOfViewDeg <= 0 || c.FieldOfViewDeg > MaxFieldOfViewDeg {
		return fmt.Errorf("config: field_of_view_deg %v out of range (0, %v]", c.FieldOfViewDeg, MaxFieldOfViewDeg)
	}

	if math.IsNaN(c.MagnitudeLimit) {
		return fmt.Errorf("config: magnitude_limit must not be NaN")
	}

	if c.StarThreshold < 0 || c.StarThreshold > 255 {
		return fmt.Errorf("config: star_threshold %d out of range [0, 255]", c.StarThreshold)
	}

	if c.ComponentAreaBounds.Min <= 0 || c.ComponentAreaBounds.Max < c.ComponentAreaBounds.Min {
		return fmt.Errorf("config: component_area_bounds %+v is invalid", c.ComponentAreaBounds)
	}

	if c.PairAngleBoundsDeg.MinDeg < 0 || c.PairAngleBoundsDeg.MaxDeg < c.PairAngleBoundsDeg.MinDeg {
		return fmt.Errorf("config: pair_angle_bounds_deg %+v is invalid", c.PairAngleBoundsDeg)
	}

	if c.MatchToleranceDeg <= 0 {
		return fmt.Errorf("config: match_tolerance_deg must be positive, got %v", c.MatchToleranceDeg)
	}

	if c.MaxQuadruples <= 0 {
		return fmt.Errorf("config: max_quadruples must be positive, got %d", c.MaxQuadruples)
	}

	return nil
}

/*****************************************************************************************************************/

// FovRad returns the field of view in radians.
func (c Configuration) FovRad() float64 {
	return c.FieldOfViewDeg * vector.DegreesToRadians
}

/*****************************************************************************************************************/

// PairAngleBoundsRad returns the pair-generation angle bounds in radians.
func (c Configuration) PairAngleBoundsRad() (minRad, maxRad float64) {
	return c.PairAngleBoundsDeg.MinDeg * vector.DegreesToRadians, c.PairAngleBoundsDeg.MaxDeg * vector.DegreesToRadians
}

/*****************************************************************************************************************/

// MatchToleranceRad returns the matcher tolerance in radians.
func (c Configuration) MatchToleranceRad() float64 {
	return c.MatchToleranceDeg * vector.DegreesToRadians
}

/*****************************************************************************************************************/
