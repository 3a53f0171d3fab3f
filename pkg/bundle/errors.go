package bundle

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnsupportedLanguage is returned when the language token is not in the table.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var errNotDirectory = errors.New("not a directory")

// ErrorKind classifies a failed run for reporting.
type ErrorKind int

const (
	// KindUnclassified covers any failure without a more specific kind.
	KindUnclassified ErrorKind = iota
	// KindConfiguration is a bad option, detected before any I/O.
	KindConfiguration
	// KindAccessDenied is a permission failure on the output or source tree.
	KindAccessDenied
	// KindDirectoryNotFound is a missing source or output directory.
	KindDirectoryNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAccessDenied:
		return "access-denied"
	case KindDirectoryNotFound:
		return "directory-not-found"
	default:
		return "unclassified"
	}
}

// Error is a classified pipeline failure.
type Error struct {
	Kind ErrorKind
	Op   string // Pipeline step that failed, e.g. "discover" or "create output".
	Arg  string // Offending value, such as the language token or a path.
	Err  error
}

func (e *Error) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnclassified.
func KindOf(err error) ErrorKind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnclassified
}

// Describe renders err as the single line shown to the operator.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var be *Error
	if !errors.As(err, &be) {
		return fmt.Sprintf("Error: %v", err)
	}
	switch be.Kind {
	case KindConfiguration:
		if errors.Is(be.Err, ErrUnsupportedLanguage) {
			return fmt.Sprintf("Unsupported language: %s", be.Arg)
		}
		return fmt.Sprintf("Error: %v", be.Err)
	case KindAccessDenied:
		return "Error: Access denied to the specified output path."
	case KindDirectoryNotFound:
		return "Error: The specified directory does not exist."
	default:
		return fmt.Sprintf("Error: %v", be.Err)
	}
}

// classifyIO wraps an I/O failure, choosing the kind from the fs sentinel it
// carries. notExistKind is used for fs.ErrNotExist so that a missing source
// file can stay unclassified while a missing directory does not.
func classifyIO(op, path string, err error, notExistKind ErrorKind) *Error {
	kind := KindUnclassified
	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = KindAccessDenied
	case errors.Is(err, fs.ErrNotExist):
		kind = notExistKind
	}
	return &Error{Kind: kind, Op: op, Arg: path, Err: err}
}
