package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tinfab/rackmount/pkg/enclosure"
	"github.com/tinfab/rackmount/pkg/kernel/sdfx"
	"github.com/tinfab/rackmount/pkg/stl"
	"github.com/tinfab/rackmount/pkg/tessellate"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var (
	genRackWidth   float64
	genRackHeight  float64
	genHalfHoles   bool
	genSwitchW     float64
	genSwitchD     float64
	genSwitchH     float64
	genSwitchCount int
	genCaseThick   float64
	genTolerance   float64
	genWireDia     float64
	genZipWidth    float64
	genZipCount    int
	genWireHoles   bool
	genAirHoles    bool
	genOrientation string
	genOutput      string
	genResolution  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an enclosure and write it as binary STL",
	Long: `Generate solves the enclosure geometry for the given rack standard
and switch stack, evaluates it with the sdfx geometry kernel, and
writes a binary STL.

Examples:
  # Two stacked 8-port switches in a 10-inch rack
  rackmount generate --switch-count 2 --rack-height 2 --half-height-holes

  # A single switch in a 6-inch rack, no ventilation
  rackmount generate --rack-width 152.4 --air-holes=false -o mini.stl`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	def := enclosure.DefaultParams()

	generateCmd.Flags().Float64Var(&genRackWidth, "rack-width", def.Rack.Width(), "rack standard width in mm (152.4 or 254.0)")
	generateCmd.Flags().Float64Var(&genRackHeight, "rack-height", def.RackUnits, "requested height in rack units; grown if the stack needs more")
	generateCmd.Flags().BoolVar(&genHalfHoles, "half-height-holes", def.HalfHeightHoles, "render mounting holes that only partially fit the panel")

	generateCmd.Flags().Float64Var(&genSwitchW, "switch-width", def.SwitchWidth, "switch width in mm")
	generateCmd.Flags().Float64Var(&genSwitchD, "switch-depth", def.SwitchDepth, "switch depth in mm")
	generateCmd.Flags().Float64Var(&genSwitchH, "switch-height", def.SwitchHeight, "switch height in mm")
	generateCmd.Flags().IntVar(&genSwitchCount, "switch-count", def.SwitchCount, "number of stacked switch bays")
	generateCmd.Flags().Float64Var(&genCaseThick, "case-thickness", def.CaseThickness, "wall and divider thickness in mm")
	generateCmd.Flags().Float64Var(&genTolerance, "tolerance", def.Tolerance, "clearance added around each switch in mm")

	generateCmd.Flags().Float64Var(&genWireDia, "wire-diameter", def.WireDiameter, "wire pass-through hole diameter in mm")
	generateCmd.Flags().Float64Var(&genZipWidth, "zip-tie-width", def.ZipTieWidth, "zip-tie slot width in mm")
	generateCmd.Flags().IntVar(&genZipCount, "zip-tie-count", def.ZipTieCount, "number of zip-tie slots per chassis")

	generateCmd.Flags().BoolVar(&genWireHoles, "front-wire-holes", def.FrontWireHoles, "cut wire pass-throughs into each bay lip")
	generateCmd.Flags().BoolVar(&genAirHoles, "air-holes", def.AirHoles, "cut honeycomb ventilation into back and side faces")

	generateCmd.Flags().StringVar(&genOrientation, "orientation", def.Orientation.String(), "output orientation: flat or installed")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "rackmount.stl", "output STL path")
	generateCmd.Flags().IntVar(&genResolution, "resolution", 200, "marching cubes cells along the longest axis")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rack, err := enclosure.RackStandardForWidth(genRackWidth)
	if err != nil {
		return err
	}
	orientation, err := enclosure.ParseOrientation(genOrientation)
	if err != nil {
		return err
	}

	params := enclosure.Params{
		Rack:            rack,
		RackUnits:       genRackHeight,
		HalfHeightHoles: genHalfHoles,
		SwitchWidth:     genSwitchW,
		SwitchDepth:     genSwitchD,
		SwitchHeight:    genSwitchH,
		SwitchCount:     genSwitchCount,
		CaseThickness:   genCaseThick,
		Tolerance:       genTolerance,
		WireDiameter:    genWireDia,
		ZipTieWidth:     genZipWidth,
		ZipTieCount:     genZipCount,
		FrontWireHoles:  genWireHoles,
		AirHoles:        genAirHoles,
		Orientation:     orientation,
	}

	result, err := enclosure.Build(params)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+w.Message))
	}

	printSummary(params, result)

	fmt.Printf("meshing at resolution %d...\n", genResolution)
	k := sdfx.NewWithResolution(genResolution)
	mesh, err := tessellate.Tessellate(result.Solid, k, "rackmount")
	if err != nil {
		return fmt.Errorf("tessellate: %w", err)
	}
	if err := stl.Save(genOutput, mesh); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d triangles)\n", genOutput, mesh.TriangleCount())
	return nil
}

func printSummary(p enclosure.Params, r *enclosure.Result) {
	d := r.Dims

	emitted := 0
	for _, h := range r.Holes {
		if h.Visibility == enclosure.HoleFullyInside ||
			(h.Visibility == enclosure.HolePartiallyInside && p.HalfHeightHoles) {
			emitted++
		}
	}

	fmt.Println(headingStyle.Render("solved dimensions"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  rack standard:\t%s (%.1f mm)\n", p.Rack, p.Rack.Width())
	fmt.Fprintf(w, "  rack height:\t%.3g U (requested %.3g U)\n", d.AdjustedUnits, p.RackUnits)
	fmt.Fprintf(w, "  panel:\t%.1f x %.2f mm\n", p.Rack.Width(), d.TotalHeight)
	fmt.Fprintf(w, "  chassis:\t%.1f x %.1f x %.1f mm\n", d.ChassisWidth, d.ChassisHeight, d.ChassisDepth)
	fmt.Fprintf(w, "  switch bays:\t%d\n", len(d.YCenters))
	fmt.Fprintf(w, "  mounting holes:\t%d emitted of %d candidates\n", emitted, len(r.Holes))
	fmt.Fprintf(w, "  vent cells:\t%d\n", len(r.Vents))
	w.Flush()
}
