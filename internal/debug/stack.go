package debug

import (
	"fmt"
	"runtime"
	"strings"
)

// CallerStack renders the calling goroutine's stack in the same two-lines-per-frame layout as
// [runtime/debug.Stack], minus the "goroutine N" header and the trailing newline.
//
// skip counts frames above the caller of CallerStack, so CallerStack(0) starts at the function that called it.
// Skipping past the end of the stack yields an empty string.
func CallerStack(skip int) string {
	pcs := make([]uintptr, 64)

	// Skip runtime.Callers and CallerStack itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()

		// Stop at the runtime's own entry points; they're noise in an error report.
		if strings.HasPrefix(frame.Function, "runtime.") {
			break
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%v(...)\n\t%v:%v", frame.Function, frame.File, frame.Line)

		if !more {
			break
		}
	}

	return sb.String()
}
