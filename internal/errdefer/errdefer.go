// Package errdefer helps run cleanup operations in a defer
// without losing the errors they report.
package errdefer

import (
	"errors"
	"io"
)

// Close closes the given Closer,
// joining its error, if any, into the given error.
//
// Use it inside a defer statement with a named return:
//
//	defer errdefer.Close(&err, f)
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
