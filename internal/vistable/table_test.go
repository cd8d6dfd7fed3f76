package vistable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/model"
)

// declare attaches a member to a type and returns it.
func declare(t *model.Type, e *model.Element) *model.Element {
	e.Enclosing = t
	t.Members = append(t.Members, e)
	return e
}

func TestTableOwnMembers(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Node", Package: "scene"}
	width := declare(typ, &model.Element{Name: "width", Kind: model.KindFields})
	resize := declare(typ, &model.Element{Name: "resize", Kind: model.KindMethods})
	declare(typ, &model.Element{Name: "secret", Kind: model.KindFields, Access: model.Private})

	vt := New(typ, nil)

	assert.Equal(t, []*model.Element{width}, vt.VisibleMembers(model.KindFields))
	assert.Equal(t, []*model.Element{resize}, vt.VisibleMembers(model.KindMethods))
	assert.Empty(t, vt.VisibleMembers(model.KindConstructors))
	assert.True(t, vt.HasVisibleMembers(model.KindFields))
	assert.False(t, vt.HasVisibleMembers(model.KindEnumConstants))
	assert.True(t, vt.HasVisibleMembersAnyKind())
}

func TestTableInheritedMembers(t *testing.T) {
	t.Parallel()

	parent := &model.Type{Name: "Parent", Package: "scene", Linkable: true}
	inherited := declare(parent, &model.Element{Name: "layout", Kind: model.KindMethods})
	overriddenInParent := declare(parent, &model.Element{Name: "resize", Kind: model.KindMethods})
	_ = overriddenInParent

	child := &model.Type{Name: "Child", Package: "scene", Supertypes: []*model.Type{parent}}
	resize := declare(child, &model.Element{Name: "resize", Kind: model.KindMethods})

	vt := New(child, nil)

	assert.Equal(t, []*model.Element{resize}, vt.VisibleMembers(model.KindMethods),
		"own members must not include inherited ones")
	assert.Equal(t, []*model.Element{resize, inherited}, vt.AllVisibleMembers(model.KindMethods),
		"overridden parent method must be suppressed")
	assert.Equal(t, []*model.Type{child, parent}, vt.VisibleAncestors())
}

func TestTableAncestorTraversalOrder(t *testing.T) {
	t.Parallel()

	iface := &model.Type{Name: "Styleable", Package: "scene"}
	grand := &model.Type{Name: "Object", Package: "lang"}
	parent := &model.Type{Name: "Parent", Package: "scene", Supertypes: []*model.Type{grand, iface}}
	child := &model.Type{
		Name:       "Child",
		Package:    "scene",
		Supertypes: []*model.Type{parent, iface},
	}

	vt := New(child, nil)
	assert.Equal(t, []*model.Type{child, parent, grand, iface}, vt.VisibleAncestors(),
		"depth-first, declared order, deduplicated")
}

func TestTablePropertyAccessors(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Node", Package: "scene"}
	field := declare(typ, &model.Element{Name: "width", Kind: model.KindFields})
	prop := declare(typ, &model.Element{Name: "widthProperty", Kind: model.KindProperties})
	getter := declare(typ, &model.Element{Name: "getWidth", Kind: model.KindMethods})
	setter := declare(typ, &model.Element{
		Name:   "setWidth",
		Kind:   model.KindMethods,
		Params: []model.Param{{Name: "value", Type: "double"}},
	})
	// Accessor of an unrelated property.
	declare(typ, &model.Element{Name: "getHeight", Kind: model.KindMethods})

	vt := New(typ, nil)

	assert.Same(t, getter, vt.PropertyGetter(prop))
	assert.Same(t, setter, vt.PropertySetter(prop))
	assert.Same(t, field, vt.PropertyField(prop))
}

func TestTablePropertyAccessors_absent(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Node", Package: "scene"}
	prop := declare(typ, &model.Element{Name: "orphanProperty", Kind: model.KindProperties})

	vt := New(typ, nil)

	assert.Nil(t, vt.PropertyGetter(prop))
	assert.Nil(t, vt.PropertySetter(prop))
	assert.Nil(t, vt.PropertyField(prop))
}

func TestDocFinder(t *testing.T) {
	t.Parallel()

	grand := &model.Type{Name: "Object", Package: "lang"}
	documented := declare(grand, &model.Element{
		Name: "layout",
		Kind: model.KindMethods,
		Doc:  &comment.Doc{Body: "Lays out the children."},
	})

	parent := &model.Type{Name: "Parent", Package: "scene", Supertypes: []*model.Type{grand}}
	declare(parent, &model.Element{Name: "layout", Kind: model.KindMethods}) // no comment

	child := &model.Type{Name: "Child", Package: "scene", Supertypes: []*model.Type{parent}}
	layout := declare(child, &model.Element{Name: "layout", Kind: model.KindMethods})

	donor := DocFinder{}.Search(layout)
	require.NotNil(t, donor)
	assert.Same(t, documented, donor,
		"undocumented intermediate override must be skipped")
}

func TestDocFinder_absent(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Node", Package: "scene"}
	m := declare(typ, &model.Element{Name: "resize", Kind: model.KindMethods})
	field := declare(typ, &model.Element{Name: "width", Kind: model.KindFields})

	assert.Nil(t, DocFinder{}.Search(m), "no supertypes")
	assert.Nil(t, DocFinder{}.Search(field), "fields have no override chain")
}
