/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package pairing

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"sort"

	"github.com/stonkchonk/interplanetary-localization/pkg/catalog"
)

/*****************************************************************************************************************/

// CatalogPair is a viable pairing of two catalog stars, i.e. one whose angular separation could
// be observed together in a single frame (§4.2).
type CatalogPair struct {
	FirstID          int
	SecondID         int
	CosineSeparation float64
}

/*****************************************************************************************************************/

// PairTable is the catalog's pair list, sorted ascending by CosineSeparation.
type PairTable []CatalogPair

/*****************************************************************************************************************/

// NeighborTable maps a catalog star id to the set of star ids it pairs with in the PairTable.
type NeighborTable map[int]map[int]struct{}

/*****************************************************************************************************************/

// Bounds holds the angular bounds (in radians) used to filter viable pairs. Generate converts them
// to cosines once per call; since cosine is monotone-decreasing on [0, pi], MaxAngleRad gives the
// lower cosine bound and MinAngleRad the upper one.
type Bounds struct {
	MinAngleRad float64
	MaxAngleRad float64
}

/*****************************************************************************************************************/

// Generate filters cat by vmagMax, enumerates every unordered pair (a, b) with a < b, and retains
// those whose cosine separation lies in [cos(max_angle), cos(min_angle)] (closed on both ends,
// per the Open Question resolved in §9). The returned PairTable is sorted ascending by cosine
// separation; NeighborTable is its derived, symmetric adjacency.
func Generate(cat catalog.Catalog, vmagMax float64, bounds Bounds) (PairTable, NeighborTable) {
	filtered := cat.FilterByMagnitude(vmagMax)

	minViableCosine := math.Cos(bounds.MinAngleRad) // larger cosine == smaller angle
	maxViableCosine := math.Cos(bounds.MaxAngleRad) // smaller cosine == larger angle

	ids := make([]int, 0, len(filtered))
	for id := range filtered {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	pairs := make(PairTable, 0)

	for i := 0; i < len(ids); i++ {
		first := filtered[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			second := filtered[ids[j]]

			cosine := first.Position.Dot(second.Position)

			if cosine >= maxViableCosine && cosine <= minViableCosine {
				pairs = append(pairs, CatalogPair{
					FirstID:          ids[i],
					SecondID:         ids[j],
					CosineSeparation: cosine,
				})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].CosineSeparation < pairs[j].CosineSeparation
	})

	return pairs, pairs.Neighbors()
}

/*****************************************************************************************************************/

// Neighbors derives the NeighborTable from a PairTable: symmetric adjacency such that
// b is in N(a) iff a is in N(b).
func (t PairTable) Neighbors() NeighborTable {
	neighbors := make(NeighborTable)

	insert := func(a, b int) {
		if neighbors[a] == nil {
			neighbors[a] = make(map[int]struct{})
		}
		neighbors[a][b] = struct{}{}
	}

	for _, pair := range t {
		insert(pair.FirstID, pair.SecondID)
		insert(pair.SecondID, pair.FirstID)
	}

	return neighbors
}

/*****************************************************************************************************************/

// CandidateWindow returns the sub-slice of the (sorted) PairTable whose cosine separation lies in
// the closed interval [minCosine, maxCosine], found via binary search. minCosine must be <= maxCosine.
func (t PairTable) CandidateWindow(minCosine, maxCosine float64) PairTable {
	lo := sort.Search(len(t), func(i int) bool {
		return t[i].CosineSeparation >= minCosine
	})
	hi := sort.Search(len(t), func(i int) bool {
		return t[i].CosineSeparation > maxCosine
	})
	if hi < lo {
		return nil
	}
	return t[lo:hi]
}

/*****************************************************************************************************************/

// Contains reports whether starID is present in pair.
func (p CatalogPair) Contains(starID int) bool {
	return p.FirstID == starID || p.SecondID == starID
}

/*****************************************************************************************************************/

func (p CatalogPair) String() string {
	return fmt.Sprintf("CatalogPair(%d, %d, %v)", p.FirstID, p.SecondID, p.CosineSeparation)
}

/*****************************************************************************************************************/
