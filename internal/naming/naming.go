// Package naming classifies property-family member names.
//
// Whether a method is a property getter or setter, and what property
// name an accessor refers to, is a convention of the modeled source
// language. The convention is pluggable so the classification is not
// baked into the summary build.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convention classifies member names into property roles.
type Convention interface {
	// IsGetter reports whether the name follows the getter convention.
	IsGetter(name string) bool

	// IsSetter reports whether the name follows the setter convention.
	IsSetter(name string) bool

	// PropertyName derives the base property name from an accessor
	// or property-method name. Names that follow no convention are
	// returned unchanged.
	PropertyName(name string) string
}

// Bean is the default convention:
// getX/isX getters, setX setters, xProperty property methods.
var Bean Convention = beanConvention{}

type beanConvention struct{}

func (beanConvention) IsGetter(name string) bool {
	return strings.HasPrefix(name, "get") || strings.HasPrefix(name, "is")
}

func (beanConvention) IsSetter(name string) bool {
	return strings.HasPrefix(name, "set")
}

func (beanConvention) PropertyName(name string) string {
	switch {
	case strings.HasSuffix(name, "Property") && name != "Property":
		return strings.TrimSuffix(name, "Property")
	case strings.HasPrefix(name, "get"):
		return lowerFirst(strings.TrimPrefix(name, "get"))
	case strings.HasPrefix(name, "set"):
		return lowerFirst(strings.TrimPrefix(name, "set"))
	case strings.HasPrefix(name, "is"):
		return lowerFirst(strings.TrimPrefix(name, "is"))
	default:
		return name
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
