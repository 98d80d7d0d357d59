package layout

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
)

// checksEnabled gates DebugCheck. Release binaries leave it off, making
// DebugCheck a no-op; tests and debug builds turn it on.
var checksEnabled = false

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "layout",
})

// EnableChecks turns constraint validation on or off and returns the previous
// setting. Validation failures are developer errors, reported and then
// escalated to a panic; they are not runtime conditions to recover from.
func EnableChecks(enabled bool) bool {
	prev := checksEnabled
	checksEnabled = enabled
	return prev
}

// DebugCheck validates the constraint invariants: both components non-NaN,
// finite, non-negative, and already expanded. name labels the call site in
// the diagnostic. A no-op unless checks are enabled.
func (c Constraints) DebugCheck(name string) {
	if !checksEnabled {
		return
	}
	switch {
	case math.IsNaN(c.exact.Width):
		c.invalid(name, "width constraint is NaN")
	case math.IsNaN(c.exact.Height):
		c.invalid(name, "height constraint is NaN")
	case math.IsInf(c.exact.Width, 0):
		c.invalid(name, "infinite width constraint")
	case math.IsInf(c.exact.Height, 0):
		c.invalid(name, "infinite height constraint")
	case c.exact.Width < 0:
		c.invalid(name, "negative width constraint")
	case c.exact.Height < 0:
		c.invalid(name, "negative height constraint")
	case c.exact.Expand() != c.exact:
		c.invalid(name, "unexpanded constraints")
	}
}

func (c Constraints) invalid(name, problem string) {
	logger.Error("invalid constraints", "widget", name, "problem", problem, "size", c.exact)
	panic(fmt.Sprintf("layout: %s passed to %s: %v", problem, name, c.exact))
}
