package enclosure

import "math"

// Dimensions is the solved geometry record every generator reads. It
// is computed once per run and never mutated afterwards.
type Dimensions struct {
	ChassisWidth    float64   // block width, clamped to the rack's usable width
	AdjustedUnits   float64   // rack height after solver adjustment, in U
	TotalHeight     float64   // panel height, AdjustedUnits * 44.45
	TotalSwitchArea float64   // stack extent: switches plus dividers
	ChassisHeight   float64   // block height: stack plus two walls
	ChassisDepth    float64   // front face to back face
	FrontThickness  float64   // front panel thickness
	YCenters        []float64 // vertical center of each switch bay
}

// requiredHeight returns the vertical space the switch stack needs:
// top and bottom walls plus the switches and the dividers between
// them. Walls and dividers are both one case thickness.
func requiredHeight(p Params) float64 {
	n := float64(p.SwitchCount)
	return 2*p.CaseThickness + n*p.SwitchHeight + (n-1)*p.CaseThickness
}

// chassisWidth returns the block width: wide enough for the switch and
// its walls, but never into the mounting slots.
func chassisWidth(p Params) float64 {
	return math.Min(p.SwitchWidth+2*p.CaseThickness, p.Rack.UsableWidth())
}

// adjustUnits reconciles the requested rack height with what the stack
// needs. A request is never shrunk. It grows only for multi-switch
// stacks that do not fit: to the exact fractional height when
// half-height holes may be rendered, otherwise to the next full unit.
// A single switch never triggers growth.
func adjustUnits(switchCount int, requiredUnits, requestedUnits float64, halfHeightAllowed bool) float64 {
	if switchCount <= 1 || requiredUnits <= requestedUnits {
		return requestedUnits
	}
	if halfHeightAllowed {
		return requiredUnits
	}
	return math.Ceil(requiredUnits)
}

// Solve derives every secondary dimension from the parameter set.
// Params must have passed Validate.
func Solve(p Params) Dimensions {
	units := adjustUnits(p.SwitchCount, requiredHeight(p)/RackUnitMm, p.RackUnits, p.HalfHeightHoles)
	total := units * RackUnitMm

	n := float64(p.SwitchCount)
	area := n*p.SwitchHeight + (n-1)*p.CaseThickness

	d := Dimensions{
		ChassisWidth:    chassisWidth(p),
		AdjustedUnits:   units,
		TotalHeight:     total,
		TotalSwitchArea: area,
		ChassisHeight:   area + 2*p.CaseThickness,
		ChassisDepth:    p.CaseThickness + p.SwitchDepth + p.CaseThickness,
		FrontThickness:  p.CaseThickness,
		YCenters:        make([]float64, p.SwitchCount),
	}

	// The stack is centered vertically; bays count from the bottom.
	yStart := (total - area) / 2
	for i := range d.YCenters {
		d.YCenters[i] = yStart + float64(i)*(p.SwitchHeight+p.CaseThickness) + p.SwitchHeight/2
	}
	return d
}
