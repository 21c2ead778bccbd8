package enclosure

import (
	"math"

	"github.com/tinfab/rackmount/pkg/csg"
)

// HoleSide distinguishes the left and right mounting rails.
type HoleSide int

const (
	SideLeft HoleSide = iota
	SideRight
)

func (s HoleSide) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// HoleVisibility classifies a mounting-hole candidate against the
// panel extent. The panel height is rarely an exact number of units,
// so the top or bottom unit is frequently truncated.
type HoleVisibility int

const (
	// HoleHidden lies entirely outside the panel.
	HoleHidden HoleVisibility = iota
	// HoleFullyInside fits completely within the panel.
	HoleFullyInside
	// HolePartiallyInside overlaps a panel edge; rendered only when
	// half-height holes are allowed.
	HolePartiallyInside
)

// MountingHole is one classified hole candidate. Computed per run,
// never persisted.
type MountingHole struct {
	Side       HoleSide
	Unit       int     // rack unit index, counting down from the panel top
	Offset     float64 // slot offset within the unit, mm from the unit top
	Y          float64 // slot center height on the panel
	Visibility HoleVisibility
}

// classifyHole is a pure classification of one candidate position.
func classifyHole(y, slotHeight, totalHeight float64) HoleVisibility {
	half := slotHeight / 2
	if y >= half && y <= totalHeight-half {
		return HoleFullyInside
	}
	if y+half > 0 && y-half < totalHeight {
		return HolePartiallyInside
	}
	return HoleHidden
}

// MountingHoles enumerates every hole candidate for the solved panel:
// three standard offsets per unit, mirrored on both rails. Candidates
// outside the panel are included with HoleHidden so callers can audit
// the classification.
func MountingHoles(p Params, d Dimensions) []MountingHole {
	slotH := p.Rack.SlotHeight()
	units := int(math.Ceil(d.AdjustedUnits))

	holes := make([]MountingHole, 0, units*len(slotOffsets)*2)
	for u := 0; u < units; u++ {
		for _, off := range slotOffsets {
			y := d.TotalHeight - (float64(u)*RackUnitMm + off)
			vis := classifyHole(y, slotH, d.TotalHeight)
			for _, side := range []HoleSide{SideLeft, SideRight} {
				holes = append(holes, MountingHole{
					Side:       side,
					Unit:       u,
					Offset:     off,
					Y:          y,
					Visibility: vis,
				})
			}
		}
	}
	return holes
}

// emit reports whether a hole of this visibility is rendered under the
// given half-height policy.
func (h MountingHole) emit(halfHeightAllowed bool) bool {
	switch h.Visibility {
	case HoleFullyInside:
		return true
	case HolePartiallyInside:
		return halfHeightAllowed
	default:
		return false
	}
}

// mountingHoleCutouts returns the classified candidates plus a stadium
// slot solid through the front panel for each emitted hole.
func mountingHoleCutouts(p Params, d Dimensions) ([]MountingHole, []csg.Solid) {
	holes := MountingHoles(p, d)

	slot := csg.Extrude{
		Profile: csg.Stadium{Length: p.Rack.SlotLength(), Width: p.Rack.SlotHeight()},
		Height:  d.FrontThickness + 2*punchMargin,
	}
	halfSpacing := p.Rack.HoleSpacing() / 2

	var cuts []csg.Solid
	for _, h := range holes {
		if !h.emit(p.HalfHeightHoles) {
			continue
		}
		x := halfSpacing
		if h.Side == SideLeft {
			x = -halfSpacing
		}
		cuts = append(cuts, csg.Translated(slot, x, h.Y, d.FrontThickness/2))
	}
	return holes, cuts
}
