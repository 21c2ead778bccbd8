package enclosure

import "github.com/tinfab/rackmount/pkg/csg"

// chassisBody builds the outer solid: a thin rounded front panel
// spanning the full rack width and solved height, unioned with a
// rounded block behind it that houses the switch stack. The panel and
// block keep independent corner radii.
func chassisBody(p Params, d Dimensions) csg.Solid {
	panel := csg.Translated(
		csg.Extrude{
			Profile: csg.RoundedRect{W: p.Rack.Width(), H: d.TotalHeight, Round: panelRound},
			Height:  d.FrontThickness,
		},
		0, d.TotalHeight/2, d.FrontThickness/2,
	)

	blockDepth := d.ChassisDepth - d.FrontThickness
	block := csg.Translated(
		csg.Box{X: d.ChassisWidth, Y: d.ChassisHeight, Z: blockDepth, Round: blockRound},
		0, d.TotalHeight/2, d.FrontThickness+blockDepth/2,
	)

	return csg.UnionOf(panel, block)
}
