/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package match implements the §4.5 constraint-satisfaction matcher: it maps an ObservedQuadruple
// to four catalog star ids by building a compatibility matrix, seeding per-slot candidate sets,
// and pruning them to a fixed point via neighborhood consistency.
package match

/*****************************************************************************************************************/

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/stonkchonk/interplanetary-localization/pkg/catalog"
	"github.com/stonkchonk/interplanetary-localization/pkg/pairing"
	"github.com/stonkchonk/interplanetary-localization/pkg/quad"
)

/*****************************************************************************************************************/

// Status tags the outcome of a single match attempt, per §7.
type Status int

const (
	Identified Status = iota
	NoMatch
	Ambiguous
)

/*****************************************************************************************************************/

func (s Status) String() string {
	switch s {
	case Identified:
		return "Identified"
	case NoMatch:
		return "NoMatch"
	case Ambiguous:
		return "Ambiguous"
	default:
		return "Unknown"
	}
}

/*****************************************************************************************************************/

// Outcome is the result of matching one ObservedQuadruple. CatalogIDs and Matched are only
// meaningful when Status is Identified: CatalogIDs maps observed slot 0..3 to a catalog star id,
// and Matched is the specific ObservedQuadruple (pixel positions included) that produced the
// match, which may be a randomized alternate rather than the brightest four (§4.4 step 2).
type Outcome struct {
	Status     Status
	CatalogIDs [4]int
	Matched    quad.ObservedQuadruple
}

/*****************************************************************************************************************/

// clampCosine guards against floating-point drift pushing a dot product fractionally outside
// [-1, 1], which would make math.Acos return NaN.
func clampCosine(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

/*****************************************************************************************************************/

// cosineWindow converts an observed cosine separation and tolerance delta (radians) into the
// admissible catalog-cosine window [cos(alpha+delta), cos(alpha-delta)], clamped to [0, pi/2]
// exactly as §4.5 step 1 describes (cosine is monotone-decreasing on [0, pi]).
func cosineWindow(observedCosine, deltaRad float64) (minCosine, maxCosine float64) {
	alpha := math.Acos(clampCosine(observedCosine))

	lo := alpha - deltaRad
	if lo < 0 {
		lo = 0
	}
	hi := alpha + deltaRad
	if hi > math.Pi/2 {
		hi = math.Pi / 2
	}

	return math.Cos(hi), math.Cos(lo)
}

/*****************************************************************************************************************/

// logCandidatePairs prints, for each of the six observed pairs, every catalog pair whose cosine
// separation falls within its tolerance window - the Go re-expression of the original matcher's
// resolve_candidate_pairs diagnostic dump.
func logCandidatePairs(cat catalog.Catalog, table pairing.PairTable, q quad.ObservedQuadruple, deltaRad float64) {
	for p := 0; p < 6; p++ {
		minCosine, maxCosine := cosineWindow(q.Pairs[p].CosineSeparation, deltaRad)
		for _, candidate := range table.CandidateWindow(minCosine, maxCosine) {
			first := cat[candidate.FirstID]
			second := cat[candidate.SecondID]
			angleDeg := math.Acos(clampCosine(candidate.CosineSeparation)) / math.Pi * 180
			fmt.Printf("pair %d: %s <-> %s \t\t %.6f deg\n", p, first.Name, second.Name, angleDeg)
		}
	}
}

/*****************************************************************************************************************/

// BuildCompatibilityMatrix builds the |catalog| x 6 0/1 matrix M of §4.5 step 2: M[s, p] = 1 iff
// catalog star s appears in some candidate catalog pair for observed pair p. Catalog ids are
// assumed dense over [0, catalogSize). The six columns are independent and are computed
// concurrently.
func BuildCompatibilityMatrix(ctx context.Context, catalogSize int, table pairing.PairTable, q quad.ObservedQuadruple, deltaRad float64) (*mat.Dense, error) {
	m := mat.NewDense(catalogSize, 6, nil)

	group, _ := errgroup.WithContext(ctx)

	for p := 0; p < 6; p++ {
		p := p
		group.Go(func() error {
			minCosine, maxCosine := cosineWindow(q.Pairs[p].CosineSeparation, deltaRad)
			for _, candidate := range table.CandidateWindow(minCosine, maxCosine) {
				m.Set(candidate.FirstID, p, 1)
				m.Set(candidate.SecondID, p, 1)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

/*****************************************************************************************************************/

// initialMatchSets seeds S_k per §4.5 step 3: star s belongs to S_k iff M[s, p] = 1 for every pair
// index p incident to slot k.
func initialMatchSets(m *mat.Dense, catalogSize int) [4]map[int]struct{} {
	var sets [4]map[int]struct{}

	for k := 0; k < 4; k++ {
		sets[k] = make(map[int]struct{})

		for s := 0; s < catalogSize; s++ {
			all := true
			for _, p := range quad.IncidentPairs[k] {
				if m.At(s, p) == 0 {
					all = false
					break
				}
			}
			if all {
				sets[k][s] = struct{}{}
			}
		}
	}

	return sets
}

/*****************************************************************************************************************/

// pairIndexForSlots returns the PairIndices index joining observed slots a and b.
func pairIndexForSlots(a, b int) int {
	for idx, ij := range quad.PairIndices {
		if (ij[0] == a && ij[1] == b) || (ij[0] == b && ij[1] == a) {
			return idx
		}
	}
	return -1
}

/*****************************************************************************************************************/

func totalSize(sets [4]map[int]struct{}) int {
	total := 0
	for _, s := range sets {
		total += len(s)
	}
	return total
}

/*****************************************************************************************************************/

// prune runs the §4.5 step 4 fixed-point loop: repeatedly drop candidates from each S_k that have
// no neighborhood-consistent counterpart in every other slot's current set, until the total size
// stops changing. Each round reads a snapshot of the sets and applies removals afterward, which is
// what keeps the loop monotone (property 6: sum of set sizes never increases).
func prune(cat catalog.Catalog, neighbors pairing.NeighborTable, q quad.ObservedQuadruple, deltaRad float64, sets [4]map[int]struct{}) [4]map[int]struct{} {
	for {
		var toDrop [4][]int

		for k := 0; k < 4; k++ {
			for s := range sets[k] {
				if !consistent(cat, neighbors, q, deltaRad, sets, k, s) {
					toDrop[k] = append(toDrop[k], s)
				}
			}
		}

		removed := 0
		for k := 0; k < 4; k++ {
			for _, s := range toDrop[k] {
				delete(sets[k], s)
				removed++
			}
		}

		if removed == 0 || totalSize(sets) == 0 {
			break
		}
	}

	return sets
}

/*****************************************************************************************************************/

// consistent reports whether candidate s survives slot k's neighborhood check against every other
// slot, per §4.5 step 4.
func consistent(cat catalog.Catalog, neighbors pairing.NeighborTable, q quad.ObservedQuadruple, deltaRad float64, sets [4]map[int]struct{}, k, s int) bool {
	posS := cat[s].Position

	for kp := 0; kp < 4; kp++ {
		if kp == k {
			continue
		}

		pairIdx := pairIndexForSlots(k, kp)
		thetaObserved := math.Acos(clampCosine(q.Pairs[pairIdx].CosineSeparation))

		found := false
		for t := range sets[kp] {
			if _, isNeighbor := neighbors[s][t]; !isNeighbor {
				continue
			}

			thetaCatalog := math.Acos(clampCosine(posS.Dot(cat[t].Position)))
			if math.Abs(thetaCatalog-thetaObserved) <= deltaRad {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

/*****************************************************************************************************************/

// resolve applies §4.5 step 5: Identified if every S_k has exactly one element, NoMatch if any is
// empty, otherwise Ambiguous. q is the ObservedQuadruple that produced sets, carried through onto
// an Identified Outcome so callers can recover which pixel positions were actually matched.
func resolve(sets [4]map[int]struct{}, q quad.ObservedQuadruple) Outcome {
	for _, s := range sets {
		if len(s) == 0 {
			return Outcome{Status: NoMatch}
		}
	}

	for _, s := range sets {
		if len(s) > 1 {
			return Outcome{Status: Ambiguous}
		}
	}

	var catalogIDs [4]int
	for k, s := range sets {
		for id := range s {
			catalogIDs[k] = id
		}
	}

	return Outcome{Status: Identified, CatalogIDs: catalogIDs, Matched: q}
}

/*****************************************************************************************************************/

// Match runs the full §4.5 pipeline for a single ObservedQuadruple against the catalog's pair and
// neighbor tables. When verbose is true, it prints the candidate-pair diagnostic dump before
// pruning, matching the original matcher's resolve_candidate_pairs output.
func Match(ctx context.Context, cat catalog.Catalog, table pairing.PairTable, neighbors pairing.NeighborTable, q quad.ObservedQuadruple, deltaRad float64, verbose bool) (Outcome, error) {
	if verbose {
		logCandidatePairs(cat, table, q, deltaRad)
	}

	m, err := BuildCompatibilityMatrix(ctx, len(cat), table, q, deltaRad)
	if err != nil {
		return Outcome{}, err
	}

	sets := initialMatchSets(m, len(cat))
	sets = prune(cat, neighbors, q, deltaRad, sets)

	return resolve(sets, q), nil
}

/*****************************************************************************************************************/

// MatchQuadruples is the multi-quadruple driver of §4.4/§4.5: it tries each candidate quadruple in
// order, returning on the first Identified result. ctx may be cancelled between tries. verbose is
// forwarded to Match for each try.
func MatchQuadruples(ctx context.Context, cat catalog.Catalog, table pairing.PairTable, neighbors pairing.NeighborTable, quads []quad.ObservedQuadruple, deltaRad float64, verbose bool) (Outcome, error) {
	last := Outcome{Status: NoMatch}

	for _, q := range quads {
		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		default:
		}

		outcome, err := Match(ctx, cat, table, neighbors, q, deltaRad, verbose)
		if err != nil {
			return Outcome{}, err
		}

		if outcome.Status == Identified {
			return outcome, nil
		}

		last = outcome
	}

	return last, nil
}

/*****************************************************************************************************************/
