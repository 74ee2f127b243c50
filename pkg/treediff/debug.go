package treediff

import (
	"os"
)

// DebugEnabled controls whether or not debug logging is forced on. It is set
// automatically based on the TREEDIFF_DEBUG environment variable.
var DebugEnabled bool

func init() {
	DebugEnabled = os.Getenv("TREEDIFF_DEBUG") == "1"
}
