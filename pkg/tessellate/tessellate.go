// Package tessellate evaluates a CSG operation tree against a geometry
// kernel and produces triangle meshes. The walker is read-only and
// never mutates the tree.
package tessellate

import (
	"fmt"

	"github.com/tinfab/rackmount/pkg/csg"
	"github.com/tinfab/rackmount/pkg/kernel"
)

// Evaluate walks the operation tree and returns the kernel solid it
// denotes.
func Evaluate(s csg.Solid, k kernel.Kernel) (kernel.Solid, error) {
	return walk(s, k)
}

// Tessellate evaluates the tree and meshes the result. The mesh is
// tagged with the given name.
func Tessellate(s csg.Solid, k kernel.Kernel, name string) (*kernel.Mesh, error) {
	solid, err := walk(s, k)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed: %w", err)
	}
	mesh.Name = name
	return mesh, nil
}

// walk recursively evaluates a tree node.
func walk(s csg.Solid, k kernel.Kernel) (kernel.Solid, error) {
	switch n := s.(type) {
	case csg.Box:
		return k.Box(n.X, n.Y, n.Z, n.Round), nil

	case csg.Cylinder:
		return k.Cylinder(n.Height, n.Radius), nil

	case csg.Extrude:
		return extrude(n, k)

	case csg.Union:
		if len(n.Solids) == 0 {
			return nil, fmt.Errorf("tessellate: union with no operands")
		}
		operands := make([]kernel.Solid, len(n.Solids))
		for i, child := range n.Solids {
			solid, err := walk(child, k)
			if err != nil {
				return nil, err
			}
			operands[i] = solid
		}
		return k.Union(operands...), nil

	case csg.Difference:
		base, err := walk(n.Base, k)
		if err != nil {
			return nil, err
		}
		tools := make([]kernel.Solid, len(n.Tools))
		for i, child := range n.Tools {
			solid, err := walk(child, k)
			if err != nil {
				return nil, err
			}
			tools[i] = solid
		}
		return k.Difference(base, tools...), nil

	case csg.Translate:
		child, err := walk(n.Solid, k)
		if err != nil {
			return nil, err
		}
		return k.Translate(child, n.Offset.X, n.Offset.Y, n.Offset.Z), nil

	case csg.Rotate:
		child, err := walk(n.Solid, k)
		if err != nil {
			return nil, err
		}
		return k.Rotate(child, n.Angles.X, n.Angles.Y, n.Angles.Z), nil

	case nil:
		return nil, fmt.Errorf("tessellate: nil solid in tree")

	default:
		return nil, fmt.Errorf("tessellate: unknown solid type %T", s)
	}
}

// extrude maps an extruded profile onto the kernel's profile methods.
func extrude(n csg.Extrude, k kernel.Kernel) (kernel.Solid, error) {
	switch p := n.Profile.(type) {
	case csg.Circle:
		return k.Circle(p.Radius, n.Height), nil
	case csg.RoundedRect:
		return k.RoundedRect(p.W, p.H, p.Round, n.Height), nil
	case csg.Stadium:
		return k.Stadium(p.Length, p.Width, n.Height), nil
	case csg.Hexagon:
		return k.Hexagon(p.Radius, n.Height), nil
	case nil:
		return nil, fmt.Errorf("tessellate: extrude with nil profile")
	default:
		return nil, fmt.Errorf("tessellate: unknown profile type %T", n.Profile)
	}
}
