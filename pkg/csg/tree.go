package csg

// Profile is a closed 2D cross-section that can be extruded into a
// solid. Implementations are restricted to this package by the marker
// method.
type Profile interface {
	profile()
}

// Circle is a circular profile centered at the origin.
type Circle struct {
	Radius float64 `json:"radius"`
}

func (Circle) profile() {}

// RoundedRect is a rectangle with rounded corners, centered at the
// origin. Round must not exceed half the smaller dimension.
type RoundedRect struct {
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Round float64 `json:"round"`
}

func (RoundedRect) profile() {}

// Stadium is a capsule: two semicircles of diameter Width joined by
// straight sides, Length measured end to end along X. This is the
// standard rack mounting-slot shape.
type Stadium struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

func (Stadium) profile() {}

// Hexagon is a regular hexagon with the given circumradius, one vertex
// on the +X axis.
type Hexagon struct {
	Radius float64 `json:"radius"`
}

func (Hexagon) profile() {}

// Solid is a node of the CSG operation tree. Implementations are
// restricted to this package by the marker method.
type Solid interface {
	solid()
}

// Box is an axis-aligned box centered at the origin. Round > 0 rounds
// all edges with the given radius.
type Box struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Round float64 `json:"round"`
}

func (Box) solid() {}

// Cylinder is a circular cylinder along Z, centered at the origin.
type Cylinder struct {
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

func (Cylinder) solid() {}

// Extrude sweeps a profile along Z, centered at the origin (the solid
// spans -Height/2 to +Height/2).
type Extrude struct {
	Profile Profile `json:"profile"`
	Height  float64 `json:"height"`
}

func (Extrude) solid() {}

// Union is the boolean union of its operands.
type Union struct {
	Solids []Solid `json:"solids"`
}

func (Union) solid() {}

// Difference subtracts every tool solid from the base solid.
type Difference struct {
	Base  Solid   `json:"base"`
	Tools []Solid `json:"tools"`
}

func (Difference) solid() {}

// Translate moves its child solid by Offset.
type Translate struct {
	Solid  Solid `json:"solid"`
	Offset Vec3  `json:"offset"`
}

func (Translate) solid() {}

// Rotate rotates its child solid by Euler angles in degrees, applied
// X then Y then Z about the origin.
type Rotate struct {
	Solid  Solid `json:"solid"`
	Angles Vec3  `json:"angles"`
}

func (Rotate) solid() {}
