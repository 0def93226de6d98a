/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package quad builds ObservedQuadruples from a frame's extracted stars, following the fixed
// pair-index convention of §4.4, and drives the randomized-alternate selection used when the
// brightest four stars fail to match.
package quad

/*****************************************************************************************************************/

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/stonkchonk/interplanetary-localization/pkg/imager"
)

/*****************************************************************************************************************/

// PairIndices is the fixed mapping from observed-pair index to the pair of star slots it joins,
// per §4.4: pair 0 joins stars (0, 1), pair 1 joins (0, 2), and so on.
var PairIndices = [6][2]int{
	{0, 1},
	{0, 2},
	{0, 3},
	{1, 2},
	{1, 3},
	{2, 3},
}

/*****************************************************************************************************************/

// IncidentPairs lists, per star slot, the indices (into PairIndices) of the pairs it belongs to.
var IncidentPairs = [4][3]int{
	{0, 1, 2},
	{0, 3, 4},
	{1, 3, 5},
	{2, 4, 5},
}

/*****************************************************************************************************************/

// ObservedPair is one of the six pairwise separations within an ObservedQuadruple.
type ObservedPair struct {
	FirstSlot        int
	SecondSlot       int
	CosineSeparation float64
}

/*****************************************************************************************************************/

// ObservedQuadruple is four observed stars plus their six derived pairwise cosine separations,
// indexed per the §4.4 convention.
type ObservedQuadruple struct {
	Stars [4]imager.ObservedStar
	Pairs [6]ObservedPair
}

/*****************************************************************************************************************/

// FieldOfView carries the parameters needed to convert pixel distance into an angular (and
// therefore cosine) separation: fov_rad is the camera's diagonal field of view in radians and
// width is the frame's pixel width (frames are square, so width == height).
type FieldOfView struct {
	FovRad float64
	Width  int
}

/*****************************************************************************************************************/

// build assembles an ObservedQuadruple from four stars selected (in order) by indices into stars,
// computing each pair's cosine separation as cos(fov_rad * pixel_distance / width) per §4.4/property 4.
func build(stars []imager.ObservedStar, indices [4]int, fov FieldOfView) ObservedQuadruple {
	var q ObservedQuadruple
	for slot, idx := range indices {
		q.Stars[slot] = stars[idx]
	}

	for p, ij := range PairIndices {
		a, b := q.Stars[ij[0]], q.Stars[ij[1]]
		dx, dy := a.X-b.X, a.Y-b.Y
		pixelDistance := math.Sqrt(dx*dx + dy*dy)
		theta := fov.FovRad * pixelDistance / float64(fov.Width)
		q.Pairs[p] = ObservedPair{
			FirstSlot:        ij[0],
			SecondSlot:       ij[1],
			CosineSeparation: math.Cos(theta),
		}
	}

	return q
}

/*****************************************************************************************************************/

// Brightest builds the ObservedQuadruple from the four brightest stars (stars must already be
// sorted descending by pixel count, as imager.Extract returns them).
func Brightest(stars []imager.ObservedStar, fov FieldOfView) ObservedQuadruple {
	return build(stars, [4]int{0, 1, 2, 3}, fov)
}

/*****************************************************************************************************************/

// combinations enumerates every 4-element combination of indices [0, n) in lexicographic order.
func combinations(n int) [][4]int {
	if n < 4 {
		return nil
	}

	var out [][4]int
	idx := [4]int{0, 1, 2, 3}

	for {
		out = append(out, idx)

		i := 3
		for i >= 0 && idx[i] == n-4+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < 4; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}

/*****************************************************************************************************************/

// Candidates returns the brightest quadruple first, followed by up to maxAlternates further
// quadruples drawn from the remaining combinations in a deterministic order shuffled by seed
// (§4.4/§5: the random quadruple builder owns its own PRNG, seeded for reproducibility).
func Candidates(stars []imager.ObservedStar, fov FieldOfView, maxAlternates int, seed uint64) []ObservedQuadruple {
	all := combinations(len(stars))
	if len(all) == 0 {
		return nil
	}

	brightestIdx := [4]int{0, 1, 2, 3}

	var rest [][4]int
	for _, c := range all {
		if c != brightestIdx {
			rest = append(rest, c)
		}
	}

	src := rand.New(rand.NewSource(seed))
	src.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	if maxAlternates >= 0 && maxAlternates < len(rest) {
		rest = rest[:maxAlternates]
	}

	quadruples := make([]ObservedQuadruple, 0, 1+len(rest))
	quadruples = append(quadruples, build(stars, brightestIdx, fov))
	for _, c := range rest {
		quadruples = append(quadruples, build(stars, c, fov))
	}

	return quadruples
}

/*****************************************************************************************************************/
