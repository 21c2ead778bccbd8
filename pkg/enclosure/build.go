package enclosure

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/tinfab/rackmount/pkg/csg"
)

// Result is the output of one generation run.
type Result struct {
	Solid    csg.Solid      // the assembled operation tree
	Dims     Dimensions     // solved dimensions the tree was built from
	Holes    []MountingHole // classified mounting-hole candidates
	Vents    []VentCell     // accepted ventilation cells
	Warnings []Warning      // degenerate-geometry advisories
}

// Build runs the full generation pass: validate, solve, generate all
// cutouts, subtract them from the chassis body, and orient the result.
// It is a pure function of its parameters; identical parameters yield
// an identical tree.
func Build(p Params) (*Result, error) {
	if errs := p.Validate(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, errors.Join(joined...)
	}

	d := Solve(p)

	// The generators share only the immutable Dimensions record, so
	// they run concurrently. Each writes a fixed slot, keeping the
	// assembled tree identical to serial evaluation.
	var (
		bays     []csg.Solid
		holes    []MountingHole
		holeCuts []csg.Solid
		ties     []csg.Solid
		wires    []csg.Solid
		vents    []VentCell
		ventCuts []csg.Solid
		warnings []Warning
	)

	var g errgroup.Group
	g.Go(func() error {
		bays = bayCutouts(p, d)
		return nil
	})
	g.Go(func() error {
		holes, holeCuts = mountingHoleCutouts(p, d)
		return nil
	})
	g.Go(func() error {
		ties = zipTieCutouts(p, d)
		return nil
	})
	g.Go(func() error {
		if p.FrontWireHoles {
			wires = wireCutouts(p, d)
		}
		return nil
	})
	g.Go(func() error {
		if p.AirHoles {
			vents, ventCuts, warnings = ventCutouts(p, d)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var cuts []csg.Solid
	cuts = append(cuts, bays...)
	cuts = append(cuts, holeCuts...)
	cuts = append(cuts, ties...)
	cuts = append(cuts, wires...)
	cuts = append(cuts, ventCuts...)

	solid := csg.Subtract(chassisBody(p, d), csg.UnionOf(cuts...))
	solid = orient(solid, p.Orientation, d)

	return &Result{
		Solid:    solid,
		Dims:     d,
		Holes:    holes,
		Vents:    vents,
		Warnings: warnings,
	}, nil
}

// orient applies the final rigid transform. Flat leaves the part as
// built, front face on the bed plane. Installed stands it upright so
// depth runs backwards and the panel faces the viewer.
func orient(s csg.Solid, o Orientation, d Dimensions) csg.Solid {
	if o != OrientationInstalled {
		return s
	}
	return csg.Translated(csg.Rotated(s, -90, 0, 0), 0, 0, d.TotalHeight)
}
