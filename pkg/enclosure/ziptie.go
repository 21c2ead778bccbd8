package enclosure

import "github.com/tinfab/rackmount/pkg/csg"

// zipTieCutouts emits the retention-tie features: evenly spaced
// vertical slots through the full chassis height at the switch-depth
// plane, so a tie can wrap the back section of the chassis behind the
// switches, plus one shallow indent across the top and bottom outer
// walls that lets the external run of the tie sit flush.
func zipTieCutouts(p Params, d Dimensions) []csg.Solid {
	if p.ZipTieCount == 0 {
		return nil
	}

	slotPlane := d.FrontThickness + p.SwitchDepth
	yMid := d.TotalHeight / 2

	cuts := make([]csg.Solid, 0, p.ZipTieCount+2)
	slot := csg.Box{
		X: p.ZipTieWidth,
		Y: d.ChassisHeight + 2*punchMargin,
		Z: p.ZipTieWidth,
	}
	left := -p.SwitchWidth / 2
	for i := 0; i < p.ZipTieCount; i++ {
		x := left + p.SwitchWidth/float64(p.ZipTieCount+1)*float64(i+1)
		cuts = append(cuts, csg.Translated(slot, x, yMid, slotPlane))
	}

	// Indents run from the slot plane past the back edge. A box twice
	// the indent depth centered on the wall surface cuts exactly one
	// depth into it.
	indentLen := d.ChassisDepth - slotPlane + p.ZipTieWidth/2 + punchMargin
	indentZ := slotPlane - p.ZipTieWidth/2 + indentLen/2
	indent := csg.Box{X: p.SwitchWidth, Y: 2 * indentDepth, Z: indentLen}
	cuts = append(cuts,
		csg.Translated(indent, 0, yMid+d.ChassisHeight/2, indentZ),
		csg.Translated(indent, 0, yMid-d.ChassisHeight/2, indentZ),
	)
	return cuts
}
