package enclosure

import "github.com/tinfab/rackmount/pkg/csg"

// bayCutouts carves one bay per switch. Each bay is two concentric
// cuts forming a retention lip: the opening in the front face is the
// switch cross-section shrunk by the lip on every side, and the full
// cross-section tunnel starts one lip depth behind the face and runs
// out the back. A switch slid in from the rear stops when its face
// flange seats on the ledge between the two.
func bayCutouts(p Params, d Dimensions) []csg.Solid {
	cutW := p.SwitchWidth + 2*p.Tolerance
	cutH := p.SwitchHeight + 2*p.Tolerance

	// Long enough to pierce both faces for any tolerance >= 0.
	punch := d.ChassisDepth + 2*(punchMargin+p.Tolerance)

	cuts := make([]csg.Solid, 0, 2*len(d.YCenters))
	for _, y := range d.YCenters {
		inner := csg.Translated(
			csg.Box{X: cutW - 2*bayLipThickness, Y: cutH - 2*bayLipThickness, Z: punch},
			0, y, d.ChassisDepth/2-p.Tolerance,
		)
		outer := csg.Translated(
			csg.Box{X: cutW, Y: cutH, Z: d.ChassisDepth},
			0, y, d.ChassisDepth/2+bayLipDepth,
		)
		cuts = append(cuts, inner, outer)
	}
	return cuts
}
