// Package model holds the language-neutral type model that reference
// pages are generated from: types, their members, and the structured
// comments attached to them.
//
// Element and Type values are identified by pointer.
// The model is built once by the loader and not mutated afterwards,
// except for documentation comments, which summary building may
// replace with synthesized ones.
package model

import (
	"strings"

	"github.com/typeref/typeref/internal/comment"
)

// Access is the declared access level of a type or member.
type Access int

const (
	Public Access = iota
	Protected
	PackagePrivate
	Private
)

var _accessNames = [...]string{
	Public:         "public",
	Protected:      "protected",
	PackagePrivate: "package-private",
	Private:        "private",
}

func (a Access) String() string {
	if a < 0 || int(a) >= len(_accessNames) {
		return "unknown"
	}
	return _accessNames[a]
}

// Param is a single parameter of an executable member.
type Param struct {
	Name string
	Type string

	// TypeVariable marks parameters whose type is a free type
	// variable of the enclosing declaration rather than a
	// concrete type.
	TypeVariable bool
}

// Element is one member of a type:
// a field, method, constructor, nested type,
// property method, or annotation element.
type Element struct {
	Name      string
	Enclosing *Type
	Kind      Kind
	Access    Access

	// Params and Return are set only for executable members.
	Params []Param
	Return string

	// Doc is the member's documentation comment, nil if absent.
	// Summary building may replace it with a synthesized comment.
	Doc *comment.Doc
}

// Executable reports whether the element is method-shaped:
// something invoked with a parameter list.
func (e *Element) Executable() bool {
	switch e.Kind {
	case KindMethods, KindConstructors, KindProperties,
		KindAnnotationRequired, KindAnnotationOptional:
		return true
	default:
		return false
	}
}

// Signature is the element's parameter-type list, like "(int,String)".
// It is empty for non-executable elements.
func (e *Element) Signature() string {
	if !e.Executable() {
		return ""
	}
	types := make([]string, len(e.Params))
	for i, p := range e.Params {
		types[i] = p.Type
	}
	return "(" + strings.Join(types, ",") + ")"
}

// Type is a single documented type.
type Type struct {
	Name    string
	Package string
	Access  Access

	// Linkable reports whether a reference page exists (or will
	// exist) for this type, so cross-references may target it.
	Linkable bool

	// Annotation marks annotation-like types, which get the
	// annotation-element summary tables instead of the general ones.
	Annotation bool

	// Members declared directly on this type.
	Members []*Element

	// Supertypes in declared traversal order:
	// superclass first, then implemented interfaces.
	Supertypes []*Type
}

// QualifiedName is the package-qualified name of the type.
func (t *Type) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// AnnotationMembers returns the type's annotation elements and
// annotation fields. Empty for non-annotation types.
func (t *Type) AnnotationMembers() []*Element {
	var members []*Element
	for _, m := range t.Members {
		switch m.Kind {
		case KindAnnotationFields, KindAnnotationRequired, KindAnnotationOptional:
			members = append(members, m)
		}
	}
	return members
}
