package tessellate_test

import (
	"testing"

	"github.com/tinfab/rackmount/pkg/csg"
	"github.com/tinfab/rackmount/pkg/kernel"
	"github.com/tinfab/rackmount/pkg/tessellate"
)

// traceSolid records which kernel operation produced it, so tests can
// assert on the shape of the evaluation without real geometry.
type traceSolid struct {
	op       string
	children []kernel.Solid
}

func (s *traceSolid) BoundingBox() (min, max [3]float64) { return }

// traceKernel implements kernel.Kernel by recording operations.
type traceKernel struct {
	ops []string
}

func (k *traceKernel) record(op string, children ...kernel.Solid) kernel.Solid {
	k.ops = append(k.ops, op)
	return &traceSolid{op: op, children: children}
}

func (k *traceKernel) Box(x, y, z, round float64) kernel.Solid  { return k.record("box") }
func (k *traceKernel) Cylinder(h, r float64) kernel.Solid       { return k.record("cylinder") }
func (k *traceKernel) Circle(r, h float64) kernel.Solid         { return k.record("circle") }
func (k *traceKernel) RoundedRect(w, hh, round, h float64) kernel.Solid {
	return k.record("rounded-rect")
}
func (k *traceKernel) Stadium(l, w, h float64) kernel.Solid { return k.record("stadium") }
func (k *traceKernel) Hexagon(r, h float64) kernel.Solid    { return k.record("hexagon") }

func (k *traceKernel) Union(s ...kernel.Solid) kernel.Solid { return k.record("union", s...) }
func (k *traceKernel) Difference(base kernel.Solid, tools ...kernel.Solid) kernel.Solid {
	return k.record("difference", append([]kernel.Solid{base}, tools...)...)
}
func (k *traceKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return k.record("translate", s)
}
func (k *traceKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return k.record("rotate", s)
}
func (k *traceKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.ops = append(k.ops, "mesh")
	return &kernel.Mesh{Vertices: []float32{0, 0, 0}}, nil
}

var _ kernel.Kernel = (*traceKernel)(nil)

func TestEvaluatePrimitives(t *testing.T) {
	tests := []struct {
		name string
		tree csg.Solid
		want string
	}{
		{"box", csg.Box{X: 1, Y: 2, Z: 3}, "box"},
		{"cylinder", csg.Cylinder{Height: 5, Radius: 1}, "cylinder"},
		{"circle", csg.Extrude{Profile: csg.Circle{Radius: 2}, Height: 1}, "circle"},
		{"rounded rect", csg.Extrude{Profile: csg.RoundedRect{W: 4, H: 2, Round: 0.5}, Height: 1}, "rounded-rect"},
		{"stadium", csg.Extrude{Profile: csg.Stadium{Length: 10, Width: 7}, Height: 4}, "stadium"},
		{"hexagon", csg.Extrude{Profile: csg.Hexagon{Radius: 3}, Height: 2}, "hexagon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &traceKernel{}
			got, err := tessellate.Evaluate(tt.tree, k)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got.(*traceSolid).op != tt.want {
				t.Errorf("op = %q, want %q", got.(*traceSolid).op, tt.want)
			}
		})
	}
}

func TestEvaluateComposite(t *testing.T) {
	tree := csg.Subtract(
		csg.Box{X: 100, Y: 50, Z: 20},
		csg.Translated(csg.Cylinder{Height: 30, Radius: 4}, 10, 0, 0),
		csg.Rotated(csg.Extrude{Profile: csg.Hexagon{Radius: 2}, Height: 10}, 0, 90, 0),
	)

	k := &traceKernel{}
	got, err := tessellate.Evaluate(tree, k)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	top, ok := got.(*traceSolid)
	if !ok || top.op != "difference" {
		t.Fatalf("root op = %v, want difference", got)
	}
	if len(top.children) != 3 {
		t.Fatalf("difference arity = %d, want base + 2 tools", len(top.children))
	}
	if top.children[1].(*traceSolid).op != "translate" {
		t.Errorf("first tool op = %q, want translate", top.children[1].(*traceSolid).op)
	}
	if top.children[2].(*traceSolid).op != "rotate" {
		t.Errorf("second tool op = %q, want rotate", top.children[2].(*traceSolid).op)
	}
}

func TestTessellateTagsName(t *testing.T) {
	k := &traceKernel{}
	m, err := tessellate.Tessellate(csg.Box{X: 1, Y: 1, Z: 1}, k, "chassis")
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if m.Name != "chassis" {
		t.Errorf("mesh name = %q, want %q", m.Name, "chassis")
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		tree csg.Solid
	}{
		{"nil tree", nil},
		{"empty union", csg.Union{}},
		{"nil profile", csg.Extrude{Height: 1}},
		{"nil child", csg.Translate{Offset: csg.Vec3{X: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tessellate.Evaluate(tt.tree, &traceKernel{}); err == nil {
				t.Error("Evaluate succeeded, want error")
			}
		})
	}
}
