/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package attitude triangulates a camera's pointing direction from three matched
// observed-to-catalog star correspondences, per §4.6.
package attitude

/*****************************************************************************************************************/

import (
	"errors"
	"math"

	"github.com/stonkchonk/interplanetary-localization/pkg/matrix"
	"github.com/stonkchonk/interplanetary-localization/pkg/vector"
)

/*****************************************************************************************************************/

// ErrDegenerate is returned when the three catalog unit vectors are coplanar with the origin
// (colinear on the sphere), leaving the triangulation system without a unique solution.
var ErrDegenerate = errors.New("attitude: triangulation matrix is singular (degenerate triple)")

/*****************************************************************************************************************/

// PixelPoint is an image-plane position in pixel coordinates.
type PixelPoint struct {
	X float64
	Y float64
}

/*****************************************************************************************************************/

// Correspondence pairs one observed star's pixel position with its matched catalog unit vector.
type Correspondence struct {
	Pixel      PixelPoint
	CatalogDir vector.UnitVector
}

/*****************************************************************************************************************/

// Geometry carries the frame parameters needed to convert pixel distance into angular separation.
type Geometry struct {
	FovRad float64
	Width  int
}

/*****************************************************************************************************************/

// View triangulates the pointing direction v such that v . u_i = cos(theta_i) for each of the
// three correspondences, where theta_i is derived from the pixel distance between target and the
// correspondence's observed position (§4.6 step 1-2). No renormalization is performed; in exact
// arithmetic v is already unit length.
func View(target PixelPoint, correspondences [3]Correspondence, geom Geometry) (vector.UnitVector, error) {
	u, err := matrix.New(3, 3)
	if err != nil {
		return vector.UnitVector{}, err
	}

	c, err := matrix.New(3, 1)
	if err != nil {
		return vector.UnitVector{}, err
	}

	for i, corr := range correspondences {
		dx := target.X - corr.Pixel.X
		dy := target.Y - corr.Pixel.Y
		d := math.Sqrt(dx*dx + dy*dy)
		theta := (d / float64(geom.Width)) * geom.FovRad

		if err := u.Set(i, 0, corr.CatalogDir.X); err != nil {
			return vector.UnitVector{}, err
		}
		if err := u.Set(i, 1, corr.CatalogDir.Y); err != nil {
			return vector.UnitVector{}, err
		}
		if err := u.Set(i, 2, corr.CatalogDir.Z); err != nil {
			return vector.UnitVector{}, err
		}
		if err := c.Set(i, 0, math.Cos(theta)); err != nil {
			return vector.UnitVector{}, err
		}
	}

	x, err := u.Solve(c)
	if err != nil {
		return vector.UnitVector{}, ErrDegenerate
	}

	vx, _ := x.At(0, 0)
	vy, _ := x.At(1, 0)
	vz, _ := x.At(2, 0)

	return vector.UnitVector{X: vx, Y: vy, Z: vz}, nil
}

/*****************************************************************************************************************/

// RollAxis triangulates the view vectors at the image's horizontal midline edges (leftmost and
// rightmost pixels) and returns v_R x v_L as the camera's roll axis (§4.6 "Rotation axis"; up to
// renormalization by the caller).
func RollAxis(width, height int, correspondences [3]Correspondence, geom Geometry) (vector.UnitVector, error) {
	midY := float64(height) / 2

	left := PixelPoint{X: 0, Y: midY}
	right := PixelPoint{X: float64(width - 1), Y: midY}

	vL, err := View(left, correspondences, geom)
	if err != nil {
		return vector.UnitVector{}, err
	}

	vR, err := View(right, correspondences, geom)
	if err != nil {
		return vector.UnitVector{}, err
	}

	return vR.Cross(vL), nil
}

/*****************************************************************************************************************/

// Result is the final per-frame output: the recovered pointing vector, the roll axis, and their
// RA/Dec equivalent in degrees.
type Result struct {
	View   vector.UnitVector
	Axis   vector.UnitVector
	RADeg  float64
	DecDeg float64
}

/*****************************************************************************************************************/

// Solve triangulates the view vector at target, the roll axis at the frame's horizontal midline
// edges, and converts the view vector to RA/Dec degrees.
func Solve(target PixelPoint, width, height int, correspondences [3]Correspondence, geom Geometry) (Result, error) {
	v, err := View(target, correspondences, geom)
	if err != nil {
		return Result{}, err
	}

	axis, err := RollAxis(width, height, correspondences, geom)
	if err != nil {
		return Result{}, err
	}

	raDeg, decDeg := v.RADecDegrees()

	return Result{View: v, Axis: axis, RADeg: raDeg, DecDeg: decDeg}, nil
}

/*****************************************************************************************************************/
