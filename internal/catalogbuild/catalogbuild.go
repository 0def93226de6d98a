/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package catalogbuild is Phase A: load a fixed-width star catalog, generate its pair and
// neighbor tables, and persist the pair table for Phase B to load once per process (Phase B
// rederives the neighbor table from it).
package catalogbuild

/*****************************************************************************************************************/

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stonkchonk/interplanetary-localization/pkg/catalog"
	"github.com/stonkchonk/interplanetary-localization/pkg/catalogstore"
	"github.com/stonkchonk/interplanetary-localization/pkg/config"
	"github.com/stonkchonk/interplanetary-localization/pkg/pairing"
	"github.com/stonkchonk/interplanetary-localization/pkg/runid"
)

/*****************************************************************************************************************/

var (
	InputFileLocation  string
	OutputFileLocation string
	MagnitudeLimit     float64
	FieldOfViewDeg     float64
)

/*****************************************************************************************************************/

var BuildCommand = &cobra.Command{
	Use:   "build",
	Short: "build the catalog pair and neighbor tables",
	Long:  "build the catalog pair and neighbor tables from a fixed-width star catalog file",
	Run: func(cmd *cobra.Command, args []string) {
		params := RunCatalogBuildParams{
			InputFileLocation:  InputFileLocation,
			OutputFileLocation: OutputFileLocation,
			MagnitudeLimit:     MagnitudeLimit,
			FieldOfViewDeg:     FieldOfViewDeg,
		}

		if err := RunCatalogBuild(params); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	},
}

/*****************************************************************************************************************/

func init() {
	BuildCommand.Flags().StringVarP(
		&InputFileLocation,
		"input",
		"i",
		"",
		"The fixed-width star catalog file location on the filesystem",
	)
	BuildCommand.MarkFlagRequired("input")

	BuildCommand.Flags().StringVarP(
		&OutputFileLocation,
		"output",
		"o",
		"catalog.db",
		"The SQLite database file to write the pair table to",
	)

	BuildCommand.Flags().Float64VarP(
		&MagnitudeLimit,
		"magnitude-limit",
		"m",
		6.0,
		"The visual magnitude cutoff for pairing",
	)

	BuildCommand.Flags().Float64VarP(
		&FieldOfViewDeg,
		"fov",
		"f",
		config.DefaultFieldOfViewDeg,
		"The camera's diagonal field of view, in degrees, used to derive the pairing angle bounds",
	)
}

/*****************************************************************************************************************/

// createdFilePaths tracks the output database so an interrupt can roll it back, matching the
// interrupt-and-rollback shape of the teacher's one-shot build commands.
var createdFilePaths []string

/*****************************************************************************************************************/

type RunCatalogBuildParams struct {
	InputFileLocation  string
	OutputFileLocation string
	MagnitudeLimit     float64
	FieldOfViewDeg     float64
}

/*****************************************************************************************************************/

func RunCatalogBuild(params RunCatalogBuildParams) error {
	run := runid.New()
	fmt.Printf("[%s] starting catalog build\n", run)

	cfg := config.Configuration{
		FieldOfViewDeg: params.FieldOfViewDeg,
		MagnitudeLimit: params.MagnitudeLimit,
	}.Resolve()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("catalogbuild: invalid configuration: %w", err)
	}

	inputFile, err := os.Open(params.InputFileLocation)
	if err != nil {
		return fmt.Errorf("catalogbuild: failed to open input file: %w", err)
	}
	defer inputFile.Close()

	fmt.Println("Input File Location:", params.InputFileLocation)

	cat, err := catalog.Load(inputFile)
	if err != nil {
		return fmt.Errorf("catalogbuild: failed to load catalog: %w", err)
	}

	fmt.Printf("Loaded %d catalog stars\n", len(cat))

	minAngleRad, maxAngleRad := cfg.PairAngleBoundsRad()
	bounds := pairing.Bounds{MinAngleRad: minAngleRad, MaxAngleRad: maxAngleRad}

	table, neighbors := pairing.Generate(cat, cfg.MagnitudeLimit, bounds)

	fmt.Printf("Generated %d pairs across %d neighbor entries\n", len(table), len(neighbors))

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signalChannel
		fmt.Println("\nInterrupt received. Rolling back...")
		rollback(createdFilePaths)
		os.Exit(1)
	}()

	store, err := catalogstore.Open(params.OutputFileLocation)
	if err != nil {
		return fmt.Errorf("catalogbuild: failed to open output store: %w", err)
	}
	defer store.Close()

	createdFilePaths = append(createdFilePaths, params.OutputFileLocation)

	if err := store.Save(table); err != nil {
		return fmt.Errorf("catalogbuild: failed to save pair table: %w", err)
	}

	fmt.Printf("[%s] pair table saved to %s\n", run, params.OutputFileLocation)

	return nil
}

/*****************************************************************************************************************/

func rollback(filepaths []string) {
	for _, file := range filepaths {
		if err := os.Remove(file); err != nil {
			fmt.Printf("Warning: Failed to remove file %s: %v\n", file, err)
		} else {
			fmt.Printf("Rolled back: %s\n", file)
		}
	}
}

/*****************************************************************************************************************/
