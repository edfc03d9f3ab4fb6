package dbg

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
)

// Debug output is off unless POLYMESH_DEBUG is set to a non-empty value.
const EnvVar = "POLYMESH_DEBUG"

var Output io.Writer = os.Stderr

func Enabled() bool {
	return os.Getenv(EnvVar) != ""
}

// Print a debug line tagged with the pipeline stage that produced it.
func Printf(stage string, format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(Output, "%s %s\n", aurora.Cyan("["+stage+"]"), fmt.Sprintf(format, args...))
}

// Dump values in full, for inspecting buffers.
func Dump(values ...interface{}) {
	if !Enabled() {
		return
	}
	spew.Fdump(Output, values...)
}
