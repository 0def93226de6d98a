/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package solve is Phase B: given a persisted pair table, the catalog it was built from, and a
// captured frame, recover the camera's pointing direction.
package solve

/*****************************************************************************************************************/

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stonkchonk/interplanetary-localization/pkg/attitude"
	"github.com/stonkchonk/interplanetary-localization/pkg/catalog"
	"github.com/stonkchonk/interplanetary-localization/pkg/catalogstore"
	"github.com/stonkchonk/interplanetary-localization/pkg/config"
	"github.com/stonkchonk/interplanetary-localization/pkg/imager"
	"github.com/stonkchonk/interplanetary-localization/pkg/match"
	"github.com/stonkchonk/interplanetary-localization/pkg/quad"
	"github.com/stonkchonk/interplanetary-localization/pkg/runid"
)

/*****************************************************************************************************************/

var (
	CatalogFileLocation string
	StoreFileLocation   string
	FrameFileLocation   string
	FrameWidth          int
	FieldOfViewDeg      float64
	StarThreshold       int
	MatchToleranceDeg   float64
	MaxQuadruples       int
	RNGSeed             int64
	Verbose             bool
)

/*****************************************************************************************************************/

var SolveCommand = &cobra.Command{
	Use:   "solve",
	Short: "solve for the camera's pointing direction from a captured frame",
	Long:  "solve for the camera's pointing direction from a captured frame against a pre-built catalog pair table",
	Run: func(cmd *cobra.Command, args []string) {
		params := RunSolveParams{
			CatalogFileLocation: CatalogFileLocation,
			StoreFileLocation:   StoreFileLocation,
			FrameFileLocation:   FrameFileLocation,
			FrameWidth:          FrameWidth,
			FieldOfViewDeg:      FieldOfViewDeg,
			StarThreshold:       StarThreshold,
			MatchToleranceDeg:   MatchToleranceDeg,
			MaxQuadruples:       MaxQuadruples,
			RNGSeed:             RNGSeed,
			Verbose:             Verbose,
		}

		result, err := RunSolve(context.Background(), params)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("RA: %.6f deg, Dec: %.6f deg\n", result.RADeg, result.DecDeg)
	},
}

/*****************************************************************************************************************/

func init() {
	SolveCommand.Flags().StringVarP(&CatalogFileLocation, "catalog", "c", "", "The fixed-width star catalog file location")
	SolveCommand.MarkFlagRequired("catalog")

	SolveCommand.Flags().StringVarP(&StoreFileLocation, "store", "s", "catalog.db", "The SQLite pair table database")

	SolveCommand.Flags().StringVarP(&FrameFileLocation, "frame", "", "", "The raw BGR frame file location")
	SolveCommand.MarkFlagRequired("frame")

	SolveCommand.Flags().IntVarP(&FrameWidth, "width", "w", 1000, "The frame width (and height) in pixels")

	SolveCommand.Flags().Float64VarP(&FieldOfViewDeg, "fov", "f", config.DefaultFieldOfViewDeg, "The camera's diagonal field of view, in degrees")

	SolveCommand.Flags().IntVarP(&StarThreshold, "star-threshold", "t", config.DefaultStarThreshold, "The luminance threshold for star extraction")

	SolveCommand.Flags().Float64VarP(&MatchToleranceDeg, "match-tolerance", "", config.DefaultMatchToleranceDeg, "The matcher's angular tolerance, in degrees")

	SolveCommand.Flags().IntVarP(&MaxQuadruples, "max-quadruples", "", config.DefaultMaxQuadruples, "The maximum number of randomized alternate quadruples to try")

	SolveCommand.Flags().Int64VarP(&RNGSeed, "rng-seed", "", 1, "The deterministic seed for the randomized quadruple builder")

	SolveCommand.Flags().BoolVarP(&Verbose, "verbose", "v", false, "Print the candidate-pair diagnostic dump during matching")
}

/*****************************************************************************************************************/

type RunSolveParams struct {
	CatalogFileLocation string
	StoreFileLocation   string
	FrameFileLocation   string
	FrameWidth          int
	FieldOfViewDeg      float64
	StarThreshold       int
	MatchToleranceDeg   float64
	MaxQuadruples       int
	RNGSeed             int64
	Verbose             bool
}

/*****************************************************************************************************************/

func RunSolve(ctx context.Context, params RunSolveParams) (attitude.Result, error) {
	run := runid.New()
	fmt.Printf("[%s] starting solve attempt\n", run)

	cfg := config.Configuration{
		FieldOfViewDeg:    params.FieldOfViewDeg,
		StarThreshold:     params.StarThreshold,
		MatchToleranceDeg: params.MatchToleranceDeg,
		MaxQuadruples:     params.MaxQuadruples,
		RNGSeed:           uint64(params.RNGSeed),
		RNGSeedSet:        true,
	}.Resolve()

	if err := cfg.Validate(); err != nil {
		return attitude.Result{}, fmt.Errorf("solve: invalid configuration: %w", err)
	}

	catalogFile, err := os.Open(params.CatalogFileLocation)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: failed to open catalog file: %w", err)
	}
	defer catalogFile.Close()

	cat, err := catalog.Load(catalogFile)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: failed to load catalog: %w", err)
	}

	store, err := catalogstore.Open(params.StoreFileLocation)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: failed to open pair table store: %w", err)
	}
	defer store.Close()

	table, neighbors, err := store.Load()
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: failed to load pair table: %w", err)
	}

	frameData, err := os.ReadFile(params.FrameFileLocation)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: failed to read frame file: %w", err)
	}

	frame, err := imager.NewFrame(params.FrameWidth, params.FrameWidth, frameData)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: invalid frame: %w", err)
	}

	stars, err := imager.Extract(frame, byte(cfg.StarThreshold), cfg.ComponentAreaBounds)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: %w", err)
	}

	fov := quad.FieldOfView{FovRad: cfg.FovRad(), Width: frame.Width}
	quadruples := quad.Candidates(stars, fov, cfg.MaxQuadruples, cfg.RNGSeed)

	outcome, err := match.MatchQuadruples(ctx, cat, table, neighbors, quadruples, cfg.MatchToleranceRad(), params.Verbose)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: %w", err)
	}
	if outcome.Status != match.Identified {
		return attitude.Result{}, fmt.Errorf("solve: matcher did not identify a quadruple: %v", outcome.Status)
	}

	// The fourth matched star is dropped here: triangulation only requires three
	// non-degenerate correspondences (§4.6), and using exactly three keeps the linear
	// system square. outcome.Matched is whichever candidate quadruple actually produced the
	// Identified result - not necessarily the brightest four (§4.4 step 2 may have succeeded
	// on a randomized alternate) - so its pixel positions, not a freshly recomputed brightest
	// quadruple, must be paired with outcome.CatalogIDs.
	var correspondences [3]attitude.Correspondence
	for i := 0; i < 3; i++ {
		correspondences[i] = attitude.Correspondence{
			Pixel:      attitude.PixelPoint{X: outcome.Matched.Stars[i].X, Y: outcome.Matched.Stars[i].Y},
			CatalogDir: cat[outcome.CatalogIDs[i]].Position,
		}
	}

	geom := attitude.Geometry{FovRad: cfg.FovRad(), Width: frame.Width}
	target := attitude.PixelPoint{X: float64(frame.Width) / 2, Y: float64(frame.Height) / 2}

	result, err := attitude.Solve(target, frame.Width, frame.Height, correspondences, geom)
	if err != nil {
		return attitude.Result{}, fmt.Errorf("solve: %w", err)
	}

	fmt.Printf("[%s] identified quadruple %v\n", run, outcome.CatalogIDs)

	return result, nil
}

/*****************************************************************************************************************/
