/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package attitude

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/stonkchonk/interplanetary-localization/pkg/vector"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

// Scenario S1: three catalog unit vectors e_x, e_y, e_z, each observed at pixel distances chosen
// so that all three cosines equal 1/sqrt(3); the solver must return (1/sqrt3, 1/sqrt3, 1/sqrt3).
func TestViewRecoversEquidistantUnitDiagonal(t *testing.T) {
	geom := Geometry{FovRad: math.Pi / 2, Width: 1000}

	theta := math.Acos(1 / math.Sqrt(3))
	d := theta * float64(geom.Width) / geom.FovRad

	target := PixelPoint{X: 0, Y: 0}

	correspondences := [3]Correspondence{
		{Pixel: PixelPoint{X: d, Y: 0}, CatalogDir: vector.UnitVector{X: 1, Y: 0, Z: 0}},
		{Pixel: PixelPoint{X: 0, Y: d}, CatalogDir: vector.UnitVector{X: 0, Y: 1, Z: 0}},
		{Pixel: PixelPoint{X: -d, Y: 0}, CatalogDir: vector.UnitVector{X: 0, Y: 0, Z: 1}},
	}

	v, err := View(target, correspondences, geom)
	if err != nil {
		t.Fatalf("View() returned unexpected error: %v", err)
	}

	want := 1 / math.Sqrt(3)
	if !almostEqual(v.X, want, 1e-9) || !almostEqual(v.Y, want, 1e-9) || !almostEqual(v.Z, want, 1e-9) {
		t.Errorf("View() = %+v; want (%v, %v, %v)", v, want, want, want)
	}
}

/*****************************************************************************************************************/

func TestViewReturnsDegenerateForColinearCatalogDirections(t *testing.T) {
	geom := Geometry{FovRad: math.Pi / 2, Width: 1000}

	correspondences := [3]Correspondence{
		{Pixel: PixelPoint{X: 100, Y: 0}, CatalogDir: vector.UnitVector{X: 1, Y: 0, Z: 0}},
		{Pixel: PixelPoint{X: 200, Y: 0}, CatalogDir: vector.UnitVector{X: 1, Y: 0, Z: 0}},
		{Pixel: PixelPoint{X: 300, Y: 0}, CatalogDir: vector.UnitVector{X: 1, Y: 0, Z: 0}},
	}

	_, err := View(PixelPoint{X: 0, Y: 0}, correspondences, geom)
	if err != ErrDegenerate {
		t.Fatalf("View() error = %v; want ErrDegenerate", err)
	}
}

/*****************************************************************************************************************/

func TestSolveProducesRADecAndRollAxis(t *testing.T) {
	geom := Geometry{FovRad: math.Pi / 2, Width: 1000}

	theta := math.Acos(1 / math.Sqrt(3))
	d := theta * float64(geom.Width) / geom.FovRad

	correspondences := [3]Correspondence{
		{Pixel: PixelPoint{X: 500 + d, Y: 500}, CatalogDir: vector.UnitVector{X: 1, Y: 0, Z: 0}},
		{Pixel: PixelPoint{X: 500, Y: 500 + d}, CatalogDir: vector.UnitVector{X: 0, Y: 1, Z: 0}},
		{Pixel: PixelPoint{X: 500 - d, Y: 500}, CatalogDir: vector.UnitVector{X: 0, Y: 0, Z: 1}},
	}

	result, err := Solve(PixelPoint{X: 500, Y: 500}, 1000, 1000, correspondences, geom)
	if err != nil {
		t.Fatalf("Solve() returned unexpected error: %v", err)
	}

	if result.DecDeg < -90 || result.DecDeg > 90 {
		t.Errorf("Solve() Dec = %v degrees; out of range", result.DecDeg)
	}
	if result.RADeg < 0 || result.RADeg >= 360 {
		t.Errorf("Solve() RA = %v degrees; out of [0, 360) range", result.RADeg)
	}

	axisNorm := result.Axis.Norm()
	if axisNorm < 1e-9 {
		t.Errorf("Solve() roll axis is degenerate (near-zero norm): %+v", result.Axis)
	}
}

/*****************************************************************************************************************/
