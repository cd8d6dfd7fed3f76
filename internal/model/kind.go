package model

// Kind identifies the kind of a member for summary purposes.
// It is a closed enumeration: every member of a type belongs to
// exactly one kind, and each kind gets its own summary table.
type Kind int

const (
	KindNestedTypes Kind = iota
	KindEnumConstants
	KindFields
	KindProperties
	KindConstructors
	KindMethods
	KindAnnotationFields
	KindAnnotationRequired
	KindAnnotationOptional

	numKinds int = iota
)

var _kindNames = [...]string{
	KindNestedTypes:        "nested types",
	KindEnumConstants:      "enum constants",
	KindFields:             "fields",
	KindProperties:         "properties",
	KindConstructors:       "constructors",
	KindMethods:            "methods",
	KindAnnotationFields:   "annotation fields",
	KindAnnotationRequired: "annotation required elements",
	KindAnnotationOptional: "annotation optional elements",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= numKinds {
		return "unknown"
	}
	return _kindNames[k]
}

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < numKinds
}

// Kinds returns all member kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
