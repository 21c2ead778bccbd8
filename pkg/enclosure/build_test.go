package enclosure

import (
	"reflect"
	"testing"

	"github.com/tinfab/rackmount/pkg/csg"
)

func TestBuildDefaults(t *testing.T) {
	r, err := Build(DefaultParams())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if r.Solid == nil {
		t.Fatal("Build() returned a nil solid")
	}
	if len(r.Holes) == 0 {
		t.Error("Build() classified no mounting holes")
	}
	if len(r.Vents) == 0 {
		t.Error("Build() with air holes enabled produced no vent cells")
	}

	// Flat orientation: the root is the difference itself, untransformed.
	if _, ok := r.Solid.(csg.Difference); !ok {
		t.Errorf("root node is %T, want csg.Difference", r.Solid)
	}
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.SwitchCount = 0
	p.CaseThickness = -1

	if _, err := Build(p); err == nil {
		t.Fatal("Build() accepted invalid parameters")
	}
}

func TestBuildDeterministic(t *testing.T) {
	p := DefaultParams()
	p.SwitchCount = 2
	p.FrontWireHoles = true
	p.HalfHeightHoles = true

	a, err := Build(p)
	if err != nil {
		t.Fatalf("first Build() error: %v", err)
	}
	b, err := Build(p)
	if err != nil {
		t.Fatalf("second Build() error: %v", err)
	}

	// The generators run concurrently but write fixed slots, so the
	// assembled tree must not depend on scheduling.
	if !reflect.DeepEqual(a.Solid, b.Solid) {
		t.Error("two builds of identical parameters produced different trees")
	}
	if !reflect.DeepEqual(a.Holes, b.Holes) {
		t.Error("two builds produced different hole classifications")
	}
	if !reflect.DeepEqual(a.Vents, b.Vents) {
		t.Error("two builds produced different vent cells")
	}
}

// cutCount returns the number of tool solids under the root difference,
// unwrapping the orientation transform if present.
func cutCount(t *testing.T, s csg.Solid) int {
	t.Helper()
	for {
		switch n := s.(type) {
		case csg.Translate:
			s = n.Solid
		case csg.Rotate:
			s = n.Solid
		case csg.Difference:
			if len(n.Tools) != 1 {
				t.Fatalf("root difference has %d tools, want 1 union", len(n.Tools))
			}
			if u, ok := n.Tools[0].(csg.Union); ok {
				return len(u.Solids)
			}
			return 1
		default:
			t.Fatalf("unexpected node %T while unwrapping the root", s)
		}
	}
}

func TestBuildFeatureToggles(t *testing.T) {
	base := DefaultParams()
	base.AirHoles = false
	base.FrontWireHoles = false

	r, err := Build(base)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	baseCuts := cutCount(t, r.Solid)

	withWires := base
	withWires.FrontWireHoles = true
	rw, err := Build(withWires)
	if err != nil {
		t.Fatalf("Build(wires) error: %v", err)
	}
	// Two holes per bay.
	if got := cutCount(t, rw.Solid); got != baseCuts+2 {
		t.Errorf("wire holes added %d cuts, want 2", got-baseCuts)
	}

	withVents := base
	withVents.AirHoles = true
	rv, err := Build(withVents)
	if err != nil {
		t.Fatalf("Build(vents) error: %v", err)
	}
	if got := cutCount(t, rv.Solid); got <= baseCuts {
		t.Errorf("air holes added no cuts: %d before, %d after", baseCuts, got)
	}
	if len(r.Vents) != 0 {
		t.Errorf("air holes disabled but %d vent cells recorded", len(r.Vents))
	}
	if len(rv.Vents) == 0 {
		t.Error("air holes enabled but no vent cells recorded")
	}
}

func TestBuildInstalledOrientation(t *testing.T) {
	p := DefaultParams()
	p.Orientation = OrientationInstalled

	r, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tr, ok := r.Solid.(csg.Translate)
	if !ok {
		t.Fatalf("root node is %T, want csg.Translate", r.Solid)
	}
	if want := (csg.Vec3{Z: r.Dims.TotalHeight}); tr.Offset != want {
		t.Errorf("orientation offset = %+v, want %+v", tr.Offset, want)
	}
	rot, ok := tr.Solid.(csg.Rotate)
	if !ok {
		t.Fatalf("child of translate is %T, want csg.Rotate", tr.Solid)
	}
	if want := (csg.Vec3{X: -90}); rot.Angles != want {
		t.Errorf("orientation angles = %+v, want %+v", rot.Angles, want)
	}
	if _, ok := rot.Solid.(csg.Difference); !ok {
		t.Errorf("oriented child is %T, want csg.Difference", rot.Solid)
	}
}

func TestOrientFlatIsIdentity(t *testing.T) {
	s := csg.Box{X: 1, Y: 1, Z: 1}
	if got := orient(s, OrientationFlat, Dimensions{TotalHeight: 88.9}); got != csg.Solid(s) {
		t.Errorf("orient(flat) = %#v, want the solid unchanged", got)
	}
}
