package summary

import "github.com/typeref/typeref/internal/model"

// propertyHelper maps property-family members to the element whose
// comment is the authoritative documentation source for them:
// the backing field when it carries its own comment,
// the property method otherwise.
//
// The snapshot is computed once at construction and never mutated.
type propertyHelper struct {
	vmt     VisibleMemberTable
	sources map[*model.Element]*model.Element
}

func newPropertyHelper(vmt VisibleMemberTable) *propertyHelper {
	ph := &propertyHelper{
		vmt:     vmt,
		sources: make(map[*model.Element]*model.Element),
	}
	for _, property := range vmt.VisibleMembers(model.KindProperties) {
		getter := vmt.PropertyGetter(property)
		setter := vmt.PropertySetter(property)
		field := vmt.PropertyField(property)

		source := property
		if field != nil && field.Doc != nil {
			source = field
		}
		ph.put(property, source)
		ph.put(getter, source)
		ph.put(setter, source)
	}
	return ph
}

func (ph *propertyHelper) put(member, source *model.Element) {
	if member == nil || source == nil {
		return
	}
	// A member that already carries a direct comment keeps it.
	// The exception is a member that is its own source: it must
	// still be mapped so the comment-on-method case is retrievable.
	if member.Doc == nil || member == source {
		ph.sources[member] = source
	}
}

// propertySource returns the documentation source for a
// property-family member, or nil if the member is not one.
func (ph *propertyHelper) propertySource(member *model.Element) *model.Element {
	return ph.sources[member]
}

// getterFor and setterFor delegate to the visibility table.
func (ph *propertyHelper) getterFor(property *model.Element) *model.Element {
	return ph.vmt.PropertyGetter(property)
}

func (ph *propertyHelper) setterFor(property *model.Element) *model.Element {
	return ph.vmt.PropertySetter(property)
}
