package csg

// Constructors for common tree shapes. These keep generator code close
// to the geometric intent instead of nesting struct literals.

// Translated wraps s in a Translate node. A zero offset is returned
// unwrapped so identical geometry produces an identical tree.
func Translated(s Solid, x, y, z float64) Solid {
	off := Vec3{X: x, Y: y, Z: z}
	if off.IsZero() {
		return s
	}
	return Translate{Solid: s, Offset: off}
}

// Rotated wraps s in a Rotate node (Euler degrees, X then Y then Z).
func Rotated(s Solid, x, y, z float64) Solid {
	ang := Vec3{X: x, Y: y, Z: z}
	if ang.IsZero() {
		return s
	}
	return Rotate{Solid: s, Angles: ang}
}

// UnionOf unions the given solids. A single operand is returned as-is.
func UnionOf(solids ...Solid) Solid {
	if len(solids) == 1 {
		return solids[0]
	}
	return Union{Solids: solids}
}

// Subtract removes every tool from base. With no tools the base is
// returned unchanged.
func Subtract(base Solid, tools ...Solid) Solid {
	if len(tools) == 0 {
		return base
	}
	return Difference{Base: base, Tools: tools}
}
