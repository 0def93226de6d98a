/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"

	"github.com/stonkchonk/interplanetary-localization/internal/catalogbuild"
	"github.com/stonkchonk/interplanetary-localization/internal/solve"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "localize",
	Short: "localize is a lost-in-space star tracker: it recovers a camera's pointing direction from a single frame.",
	Long:  "localize is a lost-in-space star tracker: it recovers a camera's pointing direction from a single frame against a pre-built star catalog.",
}

/*****************************************************************************************************************/

var catalogCommand = &cobra.Command{
	Use:   "catalog",
	Short: "catalog",
	Long:  "catalog",
}

/*****************************************************************************************************************/

func init() {
	catalogCommand.AddCommand(catalogbuild.BuildCommand)
	rootCommand.AddCommand(catalogCommand)
	rootCommand.AddCommand(solve.SolveCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
