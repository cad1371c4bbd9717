package wordscan

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a query is called with an argument
// outside its domain, such as a negative limit.
var ErrInvalidArgument = errors.New("wordscan: invalid argument")

// errHalted is the cancellation cause of a scope that stopped because its
// answer is known. It never reaches callers.
var errHalted = errors.New("wordscan: search halted")

// Op names the collaborator step that failed.
type Op string

const (
	OpList Op = "list"
	OpRead Op = "read"
)

// FileError wraps a collaborator failure together with the file or
// directory it concerns. Every I/O failure a query returns is a FileError.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// PathOf returns the path of the first [*FileError] in err's chain.
func PathOf(err error) (string, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Path, true
	}
	return "", false
}

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
