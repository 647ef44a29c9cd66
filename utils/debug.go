package utils

import (
	"fmt"
	"io"
	"os"
)

// DebugEnabled is set from the DEBUG_UOV environment variable at startup.
var DebugEnabled = os.Getenv("DEBUG_UOV") != ""

// DebugWriter receives debug lines.
var DebugWriter io.Writer = os.Stderr

// Debugf writes a "[UOV-Go] <scope>: ..." line when DebugEnabled is set.
func Debugf(scope, format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Fprintf(DebugWriter, "[UOV-Go] "+scope+": "+format+"\n", args...)
	}
}
