package wordscan

import (
	"fmt"
	"runtime"
)

// PanicError is returned by a query when a file task panics. It carries
// the file being scanned and the goroutine stack at the point of the panic.
type PanicError struct {
	Path  string
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic scanning %s: %v\n\n%s", e.Path, e.Value, e.Stack)
}

func newPanicError(path string, v any) *PanicError {
	// runtime.Stack truncates when 8 KiB is not enough.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Path:  path,
		Value: v,
		Stack: string(buf[:n]),
	}
}
