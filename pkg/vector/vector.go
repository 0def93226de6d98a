/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package vector

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// DegreesToRadians converts the literal scale factor for a sexagesimal degree field to radians.
const DegreesToRadians = math.Pi / 180

/*****************************************************************************************************************/

// HoursToRadians converts the literal scale factor for a sexagesimal right-ascension hour field to radians.
const HoursToRadians = 15 * math.Pi / 180

/*****************************************************************************************************************/

// UnitVector represents a point on the celestial sphere as a 3-vector of unit length.
type UnitVector struct {
	X float64
	Y float64
	Z float64
}

/*****************************************************************************************************************/

// Sexagesimal represents a right-ascension/declination pair expressed in hours/minutes/seconds
// and sign/degrees/arcminutes/arcseconds, as found in a fixed-width star catalog.
type Sexagesimal struct {
	RAHours    float64
	RAMinutes  float64
	RASeconds  float64
	DecSign    float64 // +1 or -1
	DecDegrees float64
	DecMinutes float64
	DecSeconds float64
}

/*****************************************************************************************************************/

// ToRadians converts the sexagesimal representation to (right ascension, declination) in radians.
func (s Sexagesimal) ToRadians() (ra, dec float64) {
	ra = s.RAHours*HoursToRadians +
		(s.RAMinutes/60)*HoursToRadians +
		(s.RASeconds/3600)*HoursToRadians

	decMagnitude := s.DecDegrees*DegreesToRadians +
		(s.DecMinutes/60)*DegreesToRadians +
		(s.DecSeconds/3600)*DegreesToRadians

	dec = s.DecSign * decMagnitude

	return ra, dec
}

/*****************************************************************************************************************/

// NewFromCelestialRadians builds a UnitVector from right ascension and declination, both in radians.
func NewFromCelestialRadians(ra, dec float64) UnitVector {
	cosDec := math.Cos(dec)

	return UnitVector{
		X: math.Cos(ra) * cosDec,
		Y: math.Sin(ra) * cosDec,
		Z: math.Sin(dec),
	}
}

/*****************************************************************************************************************/

// NewFromSexagesimal builds a UnitVector directly from a catalog's sexagesimal RA/Dec fields.
func NewFromSexagesimal(s Sexagesimal) UnitVector {
	ra, dec := s.ToRadians()
	return NewFromCelestialRadians(ra, dec)
}

/*****************************************************************************************************************/

// Norm returns the Euclidean (L2) norm of the vector.
func (v UnitVector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

/*****************************************************************************************************************/

// Dot returns the dot product of v and other, i.e. the cosine of the angle between them
// when both are unit vectors.
func (v UnitVector) Dot(other UnitVector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/*****************************************************************************************************************/

// Cross returns the cross product v x other.
func (v UnitVector) Cross(other UnitVector) UnitVector {
	return UnitVector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/*****************************************************************************************************************/

// Normalized returns v scaled to unit length. Returns the zero vector unchanged.
func (v UnitVector) Normalized() UnitVector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return UnitVector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

/*****************************************************************************************************************/

// RADecDegrees converts a unit view vector to right ascension and declination, both in degrees,
// with right ascension normalized to [0, 360).
func (v UnitVector) RADecDegrees() (raDeg, decDeg float64) {
	dec := math.Asin(v.Z)
	ra := math.Atan2(v.Y, v.X)

	raDeg = ra * 180 / math.Pi
	if raDeg < 0 {
		raDeg += 360
	}

	decDeg = dec * 180 / math.Pi

	return raDeg, decDeg
}

/*****************************************************************************************************************/
