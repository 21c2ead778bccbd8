package enclosure

import "fmt"

// Validate runs all structural precondition checks and returns every
// violation found. An empty slice means the parameters can be built.
// Validation is read-only and builds no geometry.
func (p Params) Validate() []ConfigError {
	var errs []ConfigError

	if !p.Rack.valid() {
		errs = append(errs, ConfigError{
			Param:   "rack_width",
			Message: fmt.Sprintf("unsupported rack standard %d (want 152.4 or 254.0 mm)", int(p.Rack)),
		})
	}
	if p.RackUnits <= 0 {
		errs = append(errs, ConfigError{
			Param:   "rack_height",
			Message: fmt.Sprintf("requested height is %g U, must be positive", p.RackUnits),
		})
	}
	if p.SwitchCount < 1 {
		errs = append(errs, ConfigError{
			Param:   "switch_count",
			Message: fmt.Sprintf("switch count is %d, must be at least 1", p.SwitchCount),
		})
	}
	for _, dim := range []struct {
		param string
		value float64
	}{
		{"switch_width", p.SwitchWidth},
		{"switch_depth", p.SwitchDepth},
		{"switch_height", p.SwitchHeight},
		{"case_thickness", p.CaseThickness},
	} {
		if dim.value <= 0 {
			errs = append(errs, ConfigError{
				Param:   dim.param,
				Message: fmt.Sprintf("%g mm, must be positive", dim.value),
			})
		}
	}
	if p.Tolerance < 0 {
		errs = append(errs, ConfigError{
			Param:   "tolerance",
			Message: fmt.Sprintf("%g mm, must not be negative", p.Tolerance),
		})
	}

	// The bay opening shrinks by the retention lip on every side; a
	// switch smaller than the lip would produce an inverted cutout.
	if p.SwitchWidth > 0 && p.SwitchWidth+2*p.Tolerance <= 2*bayLipThickness {
		errs = append(errs, ConfigError{
			Param:   "switch_width",
			Message: fmt.Sprintf("%g mm is too narrow for a %g mm retention lip", p.SwitchWidth, bayLipThickness),
		})
	}
	if p.SwitchHeight > 0 && p.SwitchHeight+2*p.Tolerance <= 2*bayLipThickness {
		errs = append(errs, ConfigError{
			Param:   "switch_height",
			Message: fmt.Sprintf("%g mm is too low for a %g mm retention lip", p.SwitchHeight, bayLipThickness),
		})
	}

	if p.FrontWireHoles && p.WireDiameter <= 0 {
		errs = append(errs, ConfigError{
			Param:   "wire_diameter",
			Message: fmt.Sprintf("%g mm, must be positive when front_wire_holes is enabled", p.WireDiameter),
		})
	}
	if p.ZipTieCount < 0 {
		errs = append(errs, ConfigError{
			Param:   "zip_tie_hole_count",
			Message: fmt.Sprintf("%d, must not be negative", p.ZipTieCount),
		})
	}
	if p.ZipTieCount > 0 && p.ZipTieWidth <= 0 {
		errs = append(errs, ConfigError{
			Param:   "zip_tie_hole_width",
			Message: fmt.Sprintf("%g mm, must be positive when zip-tie slots are requested", p.ZipTieWidth),
		})
	}

	// Derived-dimension checks only make sense once the inputs are sane.
	if len(errs) > 0 {
		return errs
	}

	if w := chassisWidth(p); w <= 0 {
		errs = append(errs, ConfigError{
			Param:   "switch_width",
			Message: fmt.Sprintf("solved chassis width is %g mm, must be positive", w),
		})
	}
	if h := requiredHeight(p); h <= 0 {
		errs = append(errs, ConfigError{
			Param:   "switch_height",
			Message: fmt.Sprintf("solved interior height is %g mm, must be positive", h),
		})
	}

	return errs
}
