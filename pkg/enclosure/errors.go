package enclosure

import "fmt"

// ConfigError reports a parameter that violates a structural
// precondition. Configuration errors are detected before any geometry
// is built and abort the run.
type ConfigError struct {
	Param   string // the offending parameter, in its config spelling
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Param, e.Message)
}

// Warning is an advisory finding from a generator. Degenerate geometry
// (a vent grid that does not fit) produces warnings, never errors: the
// affected feature is omitted and the build continues.
type Warning struct {
	Feature string `json:"feature"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Feature, w.Message)
}
