package enclosure

import (
	"math"
	"testing"
)

func TestClassifyHole(t *testing.T) {
	const slotH, total = 7.0, 88.9

	tests := []struct {
		name string
		y    float64
		want HoleVisibility
	}{
		{"well inside", 44.0, HoleFullyInside},
		{"exactly at the bottom limit", slotH / 2, HoleFullyInside},
		{"exactly at the top limit", total - slotH/2, HoleFullyInside},
		{"overlapping the bottom edge", 1.0, HolePartiallyInside},
		{"overlapping the top edge", total - 1.0, HolePartiallyInside},
		{"below the panel", -10.0, HoleHidden},
		{"above the panel", total + 10.0, HoleHidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyHole(tt.y, slotH, total); got != tt.want {
				t.Errorf("classifyHole(%g, %g, %g) = %v, want %v", tt.y, slotH, total, got, tt.want)
			}
		})
	}
}

func TestMountingHolesSymmetry(t *testing.T) {
	p := DefaultParams()
	d := Solve(p)

	holes := MountingHoles(p, d)
	if len(holes)%2 != 0 {
		t.Fatalf("len(holes) = %d, want an even count (mirrored rails)", len(holes))
	}

	// Every candidate appears once per side at the same height.
	left := make(map[float64]int)
	right := make(map[float64]int)
	for _, h := range holes {
		if h.Side == SideLeft {
			left[h.Y]++
		} else {
			right[h.Y]++
		}
	}
	for y, n := range left {
		if right[y] != n {
			t.Errorf("height %g: %d left holes but %d right holes", y, n, right[y])
		}
	}
}

func TestMountingHolesFullUnits(t *testing.T) {
	p := DefaultParams()
	p.RackUnits = 2
	d := Solve(p)

	holes := MountingHoles(p, d)
	if want := 2 * 3 * 2; len(holes) != want {
		t.Fatalf("len(holes) = %d, want %d (2 units, 3 offsets, 2 sides)", len(holes), want)
	}

	// A whole number of units leaves no candidate outside the panel.
	for _, h := range holes {
		if h.Visibility != HoleFullyInside {
			t.Errorf("hole at unit %d offset %g: visibility %v, want HoleFullyInside",
				h.Unit, h.Offset, h.Visibility)
		}
	}
}

func TestMountingHolesFractionalPanel(t *testing.T) {
	// A 2.45 U panel truncates the third unit; its lower offsets fall
	// off the panel.
	p := DefaultParams()
	p.SwitchCount = 3
	p.SwitchHeight = 28.30
	p.RackUnits = 2
	p.HalfHeightHoles = true
	d := Solve(p)

	holes := MountingHoles(p, d)

	var full, partial, hidden int
	for _, h := range holes {
		switch h.Visibility {
		case HoleFullyInside:
			full++
		case HolePartiallyInside:
			partial++
		case HoleHidden:
			hidden++
		}
		if h.Visibility == HoleFullyInside {
			half := p.Rack.SlotHeight() / 2
			if h.Y < half || h.Y > d.TotalHeight-half {
				t.Errorf("hole at y=%g classified fully inside but extends past the panel", h.Y)
			}
		}
	}
	if full == 0 {
		t.Error("no fully visible holes on a 2.45 U panel")
	}
	if partial+hidden == 0 {
		t.Error("a truncated unit should leave some candidates partial or hidden")
	}
}

func TestMountingHoleEmit(t *testing.T) {
	tests := []struct {
		vis         HoleVisibility
		halfAllowed bool
		want        bool
	}{
		{HoleFullyInside, false, true},
		{HoleFullyInside, true, true},
		{HolePartiallyInside, false, false},
		{HolePartiallyInside, true, true},
		{HoleHidden, false, false},
		{HoleHidden, true, false},
	}
	for _, tt := range tests {
		h := MountingHole{Visibility: tt.vis}
		if got := h.emit(tt.halfAllowed); got != tt.want {
			t.Errorf("emit(%v) with visibility %v = %v, want %v", tt.halfAllowed, tt.vis, got, tt.want)
		}
	}
}

func TestMountingHoleCutoutsRespectPolicy(t *testing.T) {
	p := DefaultParams()
	p.SwitchCount = 3
	p.SwitchHeight = 28.30
	p.RackUnits = 2
	p.HalfHeightHoles = true
	d := Solve(p)

	_, withPartial := mountingHoleCutouts(p, d)

	p.HalfHeightHoles = false
	// Without half-height holes the panel grows to 3 U instead, so
	// re-solve on the same fractional panel by keeping the solved dims.
	_, withoutPartial := mountingHoleCutouts(p, d)

	if len(withoutPartial) >= len(withPartial) {
		t.Errorf("strict policy emitted %d cuts, permissive emitted %d; want strictly fewer",
			len(withoutPartial), len(withPartial))
	}
}

func TestMountingHoleOffsetsWithinUnit(t *testing.T) {
	// The three offsets are fixed by the rack standard.
	want := [3]float64{6.35, 22.225, 38.1}
	if slotOffsets != want {
		t.Errorf("slotOffsets = %v, want %v", slotOffsets, want)
	}
	for _, off := range slotOffsets {
		if off <= 0 || off >= RackUnitMm {
			t.Errorf("offset %g outside a single rack unit", off)
		}
	}
	// Offsets are symmetric about the unit center.
	if got := slotOffsets[0] + slotOffsets[2]; math.Abs(got-RackUnitMm) > 1e-9 {
		t.Errorf("outer offsets sum to %g, want %g", got, RackUnitMm)
	}
}
