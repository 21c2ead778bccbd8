// Package cmd implements the rackmount command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rackmount",
	Short: "Parametric rack-mount switch enclosure generator",
	Long: `rackmount generates 3D-printable enclosures that mount desktop
network switches in 6-inch and 10-inch rack frames.

Given the rack standard and the switch dimensions, it solves the
required chassis height, places the rack mounting slots, carves a
retention-lip bay per switch, and adds zip-tie channels, wire
pass-throughs, and honeycomb ventilation. The result is written as a
binary STL ready for slicing.

Use 'rackmount generate --help' to see every parameter.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
