// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) provide solid modeling and boolean operations
// behind this interface. The kernel abstraction keeps the enclosure
// generators independent of any particular CSG backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. All primitives are
// centered at the origin; extruded profiles span -height/2..+height/2
// along Z. Angles are Euler degrees applied X then Y then Z.
type Kernel interface {
	// Primitives
	Box(x, y, z, round float64) Solid
	Cylinder(height, radius float64) Solid

	// Extruded 2D profiles
	Circle(radius, height float64) Solid
	RoundedRect(w, h, round, height float64) Solid
	Stadium(length, width, height float64) Solid
	Hexagon(radius, height float64) Solid

	// Boolean operations
	Union(s ...Solid) Solid
	Difference(base Solid, tools ...Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
