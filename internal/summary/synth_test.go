package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/naming"
	"github.com/typeref/typeref/internal/vistable"
)

func newTestSynthesizer(typ *model.Type) *synthesizer {
	vmt := vistable.New(typ, nil)
	return newSynthesizer(
		comment.NewMessages(language.English),
		naming.Bean,
		vistable.DocFinder{},
		newPropertyHelper(vmt),
	)
}

func TestSynthesizer_getterFromCommentedField(t *testing.T) {
	t.Parallel()

	typ, _, getter, _, _ := propertyFamily(&comment.Doc{
		Body: "The width of the node.",
		Tags: []comment.Tag{
			{Name: comment.TagSince, Text: "9"},
			{Name: comment.TagDefaultValue, Text: "0.0"},
		},
	})
	s := newTestSynthesizer(typ)

	first := s.summarize(getter)

	assert.Equal(t, "Gets the value of the property width.", first)
	require.NotNil(t, getter.Doc)
	assert.Equal(t, "Gets the value of the property width.", getter.Doc.Body)
	assert.Equal(t,
		[]comment.Tag{comment.PropertyDescriptionTag("The width of the node.")},
		getter.Doc.TagsNamed(comment.TagPropertyDescription),
		"field body must be copied as the property description")
	assert.Equal(t, []comment.Tag{{Name: comment.TagSince, Text: "9"}},
		getter.Doc.TagsNamed(comment.TagSince))
	assert.Equal(t, []comment.Tag{{Name: comment.TagDefaultValue, Text: "0.0"}},
		getter.Doc.TagsNamed(comment.TagDefaultValue))
	assert.Empty(t, getter.Doc.TagsNamed(comment.TagSee),
		"accessors get no see tags")
}

func TestSynthesizer_setterFromCommentedField(t *testing.T) {
	t.Parallel()

	typ, _, _, setter, _ := propertyFamily(&comment.Doc{Body: "The width of the node."})
	s := newTestSynthesizer(typ)

	assert.Equal(t, "Sets the value of the property width.", s.summarize(setter))
}

func TestSynthesizer_explicitPropertyDescriptionWins(t *testing.T) {
	t.Parallel()

	typ, _, getter, _, _ := propertyFamily(&comment.Doc{
		Body: "The width of the node.",
		Tags: []comment.Tag{{Name: comment.TagPropertyDescription, Text: "Width in pixels."}},
	})
	s := newTestSynthesizer(typ)
	s.summarize(getter)

	assert.Equal(t,
		[]comment.Tag{{Name: comment.TagPropertyDescription, Text: "Width in pixels."}},
		getter.Doc.TagsNamed(comment.TagPropertyDescription),
		"an explicit propertyDescription tag suppresses the body copy")
}

func TestSynthesizer_plainPropertyMethod(t *testing.T) {
	t.Parallel()

	typ, prop, _, _, _ := propertyFamily(&comment.Doc{Body: "The width of the node."})
	s := newTestSynthesizer(typ)

	first := s.summarize(prop)

	assert.Equal(t, "The width of the node.", first)
	assert.Equal(t, "The width of the node.", prop.Doc.Body,
		"the plain property method copies the source body verbatim")
	assert.Equal(t, []comment.Tag{
		comment.SeeTag("#getWidth()"),
		comment.SeeTag("#setWidth(double)"),
	}, prop.Doc.TagsNamed(comment.TagSee))
}

func TestSynthesizer_seeTagTypeVariableSetter(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Cell", Package: "scene"}
	declare(typ, &model.Element{
		Name: "item",
		Kind: model.KindFields,
		Doc:  &comment.Doc{Body: "The item shown by the cell."},
	})
	prop := declare(typ, &model.Element{Name: "itemProperty", Kind: model.KindProperties})
	declare(typ, &model.Element{Name: "getItem", Kind: model.KindMethods})
	declare(typ, &model.Element{
		Name:   "setItem",
		Kind:   model.KindMethods,
		Params: []model.Param{{Name: "value", Type: "T", TypeVariable: true}},
	})

	s := newTestSynthesizer(typ)
	s.summarize(prop)

	assert.Equal(t, []comment.Tag{
		comment.SeeTag("#getItem()"),
		comment.SeeTag("#setItem"),
	}, prop.Doc.TagsNamed(comment.TagSee),
		"type-variable setter references omit the parameter signature")
}

func TestSynthesizer_selfSourceProperty(t *testing.T) {
	t.Parallel()

	typ, prop, getter, setter, _ := propertyFamily(nil)
	prop.Doc = &comment.Doc{Body: "The width of the node."}

	s := newTestSynthesizer(typ)

	assert.Equal(t, "Gets the value of the property width.", s.summarize(getter))
	assert.Equal(t, "Sets the value of the property width.", s.summarize(setter))
	assert.Equal(t, "The width of the node.", s.summarize(prop))
}

func TestSynthesizer_idempotent(t *testing.T) {
	t.Parallel()

	t.Run("getter from field", func(t *testing.T) {
		t.Parallel()

		typ, _, getter, _, _ := propertyFamily(&comment.Doc{
			Body: "The width of the node.",
			Tags: []comment.Tag{{Name: comment.TagSince, Text: "9"}},
		})
		s := newTestSynthesizer(typ)

		first1 := s.summarize(getter)
		doc1 := *getter.Doc
		first2 := s.summarize(getter)

		assert.Equal(t, first1, first2)
		assert.Equal(t, doc1, *getter.Doc, "no tag accumulation across runs")
	})

	t.Run("self-source getter", func(t *testing.T) {
		t.Parallel()

		typ, prop, getter, _, _ := propertyFamily(nil)
		prop.Doc = &comment.Doc{Body: "The width of the node."}
		s := newTestSynthesizer(typ)

		s.summarize(getter)
		doc1 := *getter.Doc
		s.summarize(getter)

		assert.Equal(t, doc1, *getter.Doc)
	})

	t.Run("self-source property method", func(t *testing.T) {
		t.Parallel()

		typ, prop, _, _, _ := propertyFamily(nil)
		prop.Doc = &comment.Doc{Body: "The width of the node."}
		s := newTestSynthesizer(typ)

		s.summarize(prop)
		doc1 := *prop.Doc
		s.summarize(prop)

		assert.Equal(t, doc1, *prop.Doc, "see tags must not duplicate")
	})
}

func TestSynthesizer_inheritedFirstSentence(t *testing.T) {
	t.Parallel()

	parent := &model.Type{Name: "Parent", Package: "scene", Linkable: true}
	donor := declare(parent, &model.Element{
		Name: "layout",
		Kind: model.KindMethods,
		Doc:  &comment.Doc{Body: "Lays out the children. Expensive."},
	})

	child := &model.Type{Name: "Child", Package: "scene", Supertypes: []*model.Type{parent}}
	layout := declare(child, &model.Element{Name: "layout", Kind: model.KindMethods})

	s := newTestSynthesizer(child)

	assert.Equal(t, "Lays out the children.", s.summarize(layout))
	assert.Same(t, donor, s.donorFor(layout))
	assert.Nil(t, layout.Doc, "borrowing a sentence must not install a comment")
}

func TestSynthesizer_noDonorStaysEmpty(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "Node", Package: "scene"}
	m := declare(typ, &model.Element{Name: "layout", Kind: model.KindMethods})

	s := newTestSynthesizer(typ)

	assert.Empty(t, s.summarize(m))
	assert.Nil(t, s.donorFor(m))
}

func TestSynthesizer_ownSentenceNotOverridden(t *testing.T) {
	t.Parallel()

	parent := &model.Type{Name: "Parent", Package: "scene", Linkable: true}
	declare(parent, &model.Element{
		Name: "layout",
		Kind: model.KindMethods,
		Doc:  &comment.Doc{Body: "Parent docs."},
	})

	child := &model.Type{Name: "Child", Package: "scene", Supertypes: []*model.Type{parent}}
	layout := declare(child, &model.Element{
		Name: "layout",
		Kind: model.KindMethods,
		Doc:  &comment.Doc{Body: "Child docs."},
	})

	s := newTestSynthesizer(child)

	assert.Equal(t, "Child docs.", s.summarize(layout))
	assert.Nil(t, s.donorFor(layout))
}
