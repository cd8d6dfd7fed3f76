// Package flagvalue provides flag.Value implementations
// for the command line flags of typeref.
package flagvalue

import "flag"

// Getter constrains a type parameter to types
// whose pointers implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}
