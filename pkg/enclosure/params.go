package enclosure

import "fmt"

// RackUnitMm is the standard vertical rack pitch (1U) in millimetres.
const RackUnitMm = 44.45

// slotOffsets are the three standard mounting-hole offsets within one
// rack unit, measured down from the top of the unit.
var slotOffsets = [3]float64{6.35, 22.225, 38.1}

// Feature constants. These are properties of the printed part, not of
// the rack standard, so they are fixed rather than configurable.
const (
	bayLipThickness = 2.0  // retention lip width around the bay opening
	bayLipDepth     = 2.0  // how far the switch face recesses into the panel
	ventMargin      = 5.0  // margin between a vent grid and its face edges
	ventSpacing     = 7.0  // vent grid pitch, both axes
	ventHoleSize    = 4.6  // vent hexagon circumdiameter
	indentDepth     = 1.2  // zip-tie indent depth on the outer walls
	punchMargin     = 1.0  // overshoot so through-cuts clear both surfaces
	panelRound      = 3.0  // front panel corner radius
	blockRound      = 2.0  // chassis block corner radius
)

// RackStandard selects one of the two supported rack families. All
// hole-spacing constants derive from this enum, never from arithmetic
// on the width.
type RackStandard int

const (
	Rack6in  RackStandard = iota // 152.4 mm "six inch" mini rack
	Rack10in                     // 254.0 mm "ten inch" half rack
)

// RackStandardForWidth maps a panel width in millimetres to its
// standard. Only the two exact standard widths are recognized.
func RackStandardForWidth(width float64) (RackStandard, error) {
	switch width {
	case 152.4:
		return Rack6in, nil
	case 254.0:
		return Rack10in, nil
	default:
		return 0, fmt.Errorf("unsupported rack width %g (want 152.4 or 254.0)", width)
	}
}

func (r RackStandard) String() string {
	switch r {
	case Rack6in:
		return "6in"
	case Rack10in:
		return "10in"
	default:
		return fmt.Sprintf("RackStandard(%d)", int(r))
	}
}

// valid reports whether r is one of the supported standards.
func (r RackStandard) valid() bool {
	return r == Rack6in || r == Rack10in
}

// Width returns the full panel width in mm.
func (r RackStandard) Width() float64 {
	if r == Rack6in {
		return 152.4
	}
	return 254.0
}

// HoleSpacing returns the horizontal center distance between the left
// and right mounting slots.
func (r RackStandard) HoleSpacing() float64 {
	if r == Rack6in {
		return 136.526
	}
	return 236.525
}

// SlotLength returns the mounting slot length along X.
func (r RackStandard) SlotLength() float64 {
	if r == Rack6in {
		return 6.5
	}
	return 10.0
}

// SlotHeight returns the mounting slot height.
func (r RackStandard) SlotHeight() float64 {
	if r == Rack6in {
		return 3.25
	}
	return 7.0
}

// UsableWidth returns the widest chassis that stays clear of the
// mounting slots on both sides.
func (r RackStandard) UsableWidth() float64 {
	return r.HoleSpacing() - 2*r.SlotLength()
}

// Orientation selects the final rigid transform of the assembled part.
type Orientation int

const (
	// OrientationFlat leaves the enclosure front-face down on the
	// print bed. This is how the part is printed.
	OrientationFlat Orientation = iota
	// OrientationInstalled stands the enclosure up face-forward, as
	// mounted in the rack.
	OrientationInstalled
)

func (o Orientation) String() string {
	switch o {
	case OrientationFlat:
		return "flat"
	case OrientationInstalled:
		return "installed"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "flat" or "installed".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "flat":
		return OrientationFlat, nil
	case "installed":
		return OrientationInstalled, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q (want flat or installed)", s)
	}
}

// Params is the complete parameter set for one generation run. All
// lengths are millimetres.
type Params struct {
	Rack            RackStandard `json:"rack_width"`
	RackUnits       float64      `json:"rack_height"`       // requested height in U; the solver may grow it
	HalfHeightHoles bool         `json:"half_height_holes"` // render partial holes at truncated units

	SwitchWidth   float64 `json:"switch_width"`
	SwitchDepth   float64 `json:"switch_depth"`
	SwitchHeight  float64 `json:"switch_height"`
	SwitchCount   int     `json:"switch_count"`
	CaseThickness float64 `json:"case_thickness"` // wall and divider thickness
	Tolerance     float64 `json:"tolerance"`      // uniform clearance around each switch

	WireDiameter float64 `json:"wire_diameter"`
	ZipTieWidth  float64 `json:"zip_tie_hole_width"`
	ZipTieCount  int     `json:"zip_tie_hole_count"`

	FrontWireHoles bool `json:"front_wire_holes"`
	AirHoles       bool `json:"air_holes"`

	Orientation Orientation `json:"print_orientation"`
}

// DefaultParams returns a single-switch 10-inch enclosure sized for a
// common 8-port desktop switch.
func DefaultParams() Params {
	return Params{
		Rack:          Rack10in,
		RackUnits:     2,
		SwitchWidth:   158,
		SwitchDepth:   101,
		SwitchHeight:  28.3,
		SwitchCount:   1,
		CaseThickness: 6,
		Tolerance:     0.6,
		WireDiameter:  6,
		ZipTieWidth:   4,
		ZipTieCount:   2,
		AirHoles:      true,
		Orientation:   OrientationFlat,
	}
}
