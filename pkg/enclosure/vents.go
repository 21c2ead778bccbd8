package enclosure

import (
	"fmt"
	"math"

	"github.com/tinfab/rackmount/pkg/csg"
)

// VentFace identifies which chassis face a vent cell pierces.
type VentFace int

const (
	FaceBack VentFace = iota
	FaceLeft
	FaceRight
)

func (f VentFace) String() string {
	switch f {
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return fmt.Sprintf("VentFace(%d)", int(f))
	}
}

// VentCell is one accepted cell of a honeycomb ventilation grid.
// Cells whose hole would cross the margin-respecting face bounds after
// staggering are discarded and never appear here.
type VentCell struct {
	Face          VentFace
	Bay           int
	Row, Col      int
	StaggerOffset float64 // vertical shift applied to odd columns
	Position      csg.Vec3
}

// ventFace describes the planar area available on one face of one bay,
// in local (u = across, v = up) coordinates centered on the grid.
type ventFace struct {
	face   VentFace
	availU float64
	availV float64
}

// ventGrid lays out one staggered grid on a face. Column and row
// counts are floor-divided from the available area; the grid is
// centered; odd columns shift up by half the row pitch. Because the
// stagger is applied after uniform placement, every cell is re-checked
// against the bounds and overflowing cells are dropped, which keeps
// the pattern symmetric without a second grid computation.
func ventGrid(f ventFace, bay int) []VentCell {
	cols := int(math.Floor(f.availU / ventSpacing))
	rows := int(math.Floor(f.availV / ventSpacing))
	if cols <= 0 || rows <= 0 {
		return nil
	}

	u0 := -float64(cols-1) * ventSpacing / 2
	v0 := -float64(rows-1) * ventSpacing / 2
	holeR := ventHoleSize / 2

	var cells []VentCell
	for c := 0; c < cols; c++ {
		stagger := 0.0
		if c%2 == 1 {
			stagger = ventSpacing / 2
		}
		for r := 0; r < rows; r++ {
			u := u0 + float64(c)*ventSpacing
			v := v0 + float64(r)*ventSpacing + stagger
			if math.Abs(u)+holeR > f.availU/2 || math.Abs(v)+holeR > f.availV/2 {
				continue
			}
			cells = append(cells, VentCell{
				Face:          f.face,
				Bay:           bay,
				Row:           r,
				Col:           c,
				StaggerOffset: stagger,
				Position:      csg.Vec3{X: u, Y: v},
			})
		}
	}
	return cells
}

// ventCutouts generates the honeycomb grids for every bay on the back
// and both side faces. Faces too small for even a single cell are
// skipped with a warning; missing ventilation is a valid outcome.
func ventCutouts(p Params, d Dimensions) ([]VentCell, []csg.Solid, []Warning) {
	faces := []ventFace{
		{face: FaceBack, availU: d.ChassisWidth - 2*ventMargin, availV: p.SwitchHeight - 2*ventMargin},
		{face: FaceLeft, availU: p.SwitchDepth - 2*ventMargin, availV: p.SwitchHeight - 2*ventMargin},
		{face: FaceRight, availU: p.SwitchDepth - 2*ventMargin, availV: p.SwitchHeight - 2*ventMargin},
	}

	hex := csg.Extrude{
		Profile: csg.Hexagon{Radius: ventHoleSize / 2},
		Height:  p.CaseThickness + 2*punchMargin,
	}
	sideX := (d.ChassisWidth - p.CaseThickness) / 2
	sideZMid := d.FrontThickness + p.SwitchDepth/2
	backZ := d.ChassisDepth - p.CaseThickness/2

	var (
		cells    []VentCell
		cuts     []csg.Solid
		warnings []Warning
	)
	for bay, yCenter := range d.YCenters {
		for _, f := range faces {
			grid := ventGrid(f, bay)
			if len(grid) == 0 {
				warnings = append(warnings, Warning{
					Feature: "air_holes",
					Message: fmt.Sprintf("ventilation grid does not fit on the %s face of bay %d; face skipped", f.face, bay),
				})
				continue
			}
			for i := range grid {
				cell := &grid[i]
				u, v := cell.Position.X, cell.Position.Y
				var solid csg.Solid
				switch f.face {
				case FaceBack:
					cell.Position = csg.Vec3{X: u, Y: yCenter + v, Z: backZ}
					solid = csg.Translated(hex, u, yCenter+v, backZ)
				case FaceLeft:
					cell.Position = csg.Vec3{X: -sideX, Y: yCenter + v, Z: sideZMid + u}
					solid = csg.Translated(csg.Rotated(hex, 0, 90, 0), -sideX, yCenter+v, sideZMid+u)
				case FaceRight:
					cell.Position = csg.Vec3{X: sideX, Y: yCenter + v, Z: sideZMid + u}
					solid = csg.Translated(csg.Rotated(hex, 0, 90, 0), sideX, yCenter+v, sideZMid+u)
				}
				cells = append(cells, *cell)
				cuts = append(cuts, solid)
			}
		}
	}
	return cells, cuts, warnings
}
