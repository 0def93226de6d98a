/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package config

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestResolveAppliesDocumentedDefaults(t *testing.T) {
	resolved := Configuration{MagnitudeLimit: 6.0}.Resolve()

	if resolved.FieldOfViewDeg != DefaultFieldOfViewDeg {
		t.Errorf("FieldOfViewDeg = %v; want %v", resolved.FieldOfViewDeg, DefaultFieldOfViewDeg)
	}
	if resolved.StarThreshold != DefaultStarThreshold {
		t.Errorf("StarThreshold = %v; want %v", resolved.StarThreshold, DefaultStarThreshold)
	}
	if resolved.ComponentAreaBounds.Min != 1 || resolved.ComponentAreaBounds.Max != 20 {
		t.Errorf("ComponentAreaBounds = %+v; want (1, 20)", resolved.ComponentAreaBounds)
	}
	if resolved.PairAngleBoundsDeg.MinDeg != DefaultFieldOfViewDeg/1000 {
		t.Errorf("PairAngleBoundsDeg.MinDeg = %v; want fov/1000", resolved.PairAngleBoundsDeg.MinDeg)
	}
	if resolved.PairAngleBoundsDeg.MaxDeg != DefaultFieldOfViewDeg {
		t.Errorf("PairAngleBoundsDeg.MaxDeg = %v; want fov", resolved.PairAngleBoundsDeg.MaxDeg)
	}
	if resolved.MatchToleranceDeg != DefaultMatchToleranceDeg {
		t.Errorf("MatchToleranceDeg = %v; want %v", resolved.MatchToleranceDeg, DefaultMatchToleranceDeg)
	}
	if resolved.MaxQuadruples != DefaultMaxQuadruples {
		t.Errorf("MaxQuadruples = %v; want %v", resolved.MaxQuadruples, DefaultMaxQuadruples)
	}
	if !resolved.RNGSeedSet {
		t.Error("RNGSeedSet = false; want true after Resolve")
	}
}

/*****************************************************************************************************************/

func TestResolvePreservesExplicitValues(t *testing.T) {
	c := Configuration{
		FieldOfViewDeg:    30.0,
		MagnitudeLimit:    5.0,
		StarThreshold:     100,
		MatchToleranceDeg: 0.2,
		RNGSeed:           99,
		RNGSeedSet:        true,
	}

	resolved := c.Resolve()

	if resolved.FieldOfViewDeg != 30.0 {
		t.Errorf("FieldOfViewDeg = %v; want 30.0 (explicit value overwritten)", resolved.FieldOfViewDeg)
	}
	if resolved.StarThreshold != 100 {
		t.Errorf("StarThreshold = %v; want 100", resolved.StarThreshold)
	}
	if resolved.RNGSeed != 99 {
		t.Errorf("RNGSeed = %v; want 99", resolved.RNGSeed)
	}
}

/*****************************************************************************************************************/

func TestValidateRejectsOutOfRangeFieldOfView(t *testing.T) {
	c := Configuration{FieldOfViewDeg: 150}.Resolve()
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for field_of_view_deg exceeding max")
	}
}

/*****************************************************************************************************************/

func TestValidateAcceptsDefaultResolvedConfiguration(t *testing.T) {
	c := Configuration{MagnitudeLimit: 6.0}.Resolve()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

/*****************************************************************************************************************/

func TestValidateRejectsInvertedAreaBounds(t *testing.T) {
	c := Configuration{MagnitudeLimit: 6.0}.Resolve()
	c.ComponentAreaBounds.Max = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inverted component area bounds")
	}
}

/*****************************************************************************************************************/
