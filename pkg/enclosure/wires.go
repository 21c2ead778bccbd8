package enclosure

import "github.com/tinfab/rackmount/pkg/csg"

// wireCutouts emits two wire pass-through holes per bay at the bay's
// vertical center, mirrored just inside the bay edges so they notch
// the retention lip. The wireDiameter/5 inset is inherited from the
// original design; it has no deeper geometric justification.
func wireCutouts(p Params, d Dimensions) []csg.Solid {
	xOffset := p.SwitchWidth/2 - p.WireDiameter/5

	hole := csg.Cylinder{
		Height: d.ChassisDepth + 2*punchMargin,
		Radius: p.WireDiameter / 2,
	}

	cuts := make([]csg.Solid, 0, 2*len(d.YCenters))
	for _, y := range d.YCenters {
		cuts = append(cuts,
			csg.Translated(hole, -xOffset, y, d.ChassisDepth/2),
			csg.Translated(hole, xOffset, y, d.ChassisDepth/2),
		)
	}
	return cuts
}
