// Package summary builds the member summary section of a type's
// reference page: one table per member kind listing the type's own
// members, followed by one block per ancestor for inherited members.
//
// The package decides which members are shown, in what order, and
// with what summary sentence. Rendering is delegated to a [Writer].
package summary

import (
	"golang.org/x/text/language"

	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/must"
	"github.com/typeref/typeref/internal/naming"
)

// Variant selects which member kinds a page documents, in order,
// and what it means for the type to have members at all.
type Variant struct {
	// Kinds to build, in page order.
	Kinds []model.Kind

	// HasMembers reports whether the type has anything to document.
	HasMembers func(*model.Type, VisibleMemberTable) bool
}

// ClassVariant documents general types.
var ClassVariant = Variant{
	Kinds: []model.Kind{
		model.KindProperties,
		model.KindNestedTypes,
		model.KindEnumConstants,
		model.KindFields,
		model.KindConstructors,
		model.KindMethods,
	},
	HasMembers: func(_ *model.Type, vmt VisibleMemberTable) bool {
		return vmt.HasVisibleMembersAnyKind()
	},
}

// AnnotationVariant documents annotation-like types.
var AnnotationVariant = Variant{
	Kinds: []model.Kind{
		model.KindAnnotationFields,
		model.KindAnnotationRequired,
		model.KindAnnotationOptional,
	},
	HasMembers: func(typ *model.Type, _ VisibleMemberTable) bool {
		return len(typ.AnnotationMembers()) > 0
	},
}

// variantFor picks the stock variant matching the type's shape.
func variantFor(typ *model.Type) Variant {
	if typ.Annotation {
		return AnnotationVariant
	}
	return ClassVariant
}

// includeInherited reports whether members of the kind are inherited
// by the domain's type-hierarchy rules. Enum constants, constructors,
// and annotation elements never are.
func includeInherited(kind model.Kind) bool {
	switch kind {
	case model.KindNestedTypes, model.KindFields, model.KindProperties, model.KindMethods:
		return true
	default:
		return false
	}
}

// Config carries the collaborators a Builder needs.
type Config struct {
	// Type is the documented type.
	Type *model.Type

	// Table resolves member visibility for Type.
	Table VisibleMemberTable

	// Factory supplies one writer per kind with visible members.
	Factory WriterFactory

	// Finder locates override ancestors with usable documentation.
	// Optional; without it no first sentences are borrowed.
	Finder DonorFinder

	// Convention classifies property accessors.
	// Defaults to [naming.Bean].
	Convention naming.Convention

	// Messages renders synthesized summary sentences.
	// Defaults to English.
	Messages *comment.Messages

	// Variant overrides the kind list derived from the type's shape.
	Variant *Variant
}

// Builder builds the member summary for one documented type.
// Builders are single-use: one per type, per generation pass.
type Builder struct {
	typ     *model.Type
	variant Variant
	vmt     VisibleMemberTable
	writers map[model.Kind]Writer
	synth   *synthesizer
}

// NewBuilder constructs a Builder for cfg.Type.
// Writers are requested from the factory once, here, and only for
// kinds the visibility table reports members for.
func NewBuilder(cfg Config) *Builder {
	variant := variantFor(cfg.Type)
	if cfg.Variant != nil {
		variant = *cfg.Variant
	}
	conv := cfg.Convention
	if conv == nil {
		conv = naming.Bean
	}
	msgs := cfg.Messages
	if msgs == nil {
		msgs = comment.NewMessages(language.English)
	}

	writers := make(map[model.Kind]Writer)
	for _, kind := range model.Kinds() {
		if cfg.Table.HasVisibleMembers(kind) {
			writers[kind] = cfg.Factory.SummaryWriter(cfg.Type, kind)
		}
	}

	props := newPropertyHelper(cfg.Table)
	return &Builder{
		typ:     cfg.Type,
		variant: variant,
		vmt:     cfg.Table,
		writers: writers,
		synth:   newSynthesizer(msgs, conv, cfg.Finder, props),
	}
}

// HasMembersToDocument reports whether the page needs a member
// summary section at all.
func (b *Builder) HasMembersToDocument() bool {
	return b.variant.HasMembers(b.typ, b.vmt)
}

// Members returns the visible own members of a kind in summary order.
// It panics if kind is not a member of the enumeration.
func (b *Builder) Members(kind model.Kind) []*model.Element {
	must.Truef(kind.Valid(), "invalid member kind %d", int(kind))
	return sortMembers(b.vmt.VisibleMembers(kind))
}

// HasMembers reports whether the type has visible own members of the
// kind. It panics if kind is not a member of the enumeration.
func (b *Builder) HasMembers(kind model.Kind) bool {
	must.Truef(kind.Valid(), "invalid member kind %d", int(kind))
	return len(b.vmt.VisibleMembers(kind)) > 0
}

// CommentDonor returns the ancestor whose first sentence was adopted
// for member during this build, or nil. Writers use it to target
// cross-references at the comment's real origin.
func (b *Builder) CommentDonor(member *model.Element) *model.Element {
	return b.synth.donorFor(member)
}

// Build assembles the member summary into page, one kind at a time
// in the variant's order. Kinds with no registered writer or no
// members contribute nothing.
func (b *Builder) Build(page Block) {
	for _, kind := range b.variant.Kinds {
		writer := b.writers[kind]
		if writer == nil {
			continue
		}
		b.addSummary(writer, kind, includeInherited(kind), page)
	}
}

func (b *Builder) addSummary(w Writer, kind model.Kind, inherited bool, page Block) {
	var blocks []Block
	b.buildSummary(w, kind, &blocks)
	if inherited {
		b.buildInheritedSummary(w, kind, &blocks)
	}
	if len(blocks) == 0 {
		return
	}
	section := w.SummaryHeader(b.typ)
	for _, blk := range blocks {
		section.Add(blk)
	}
	page.Add(section)
}

// buildSummary emits the own-member table for a kind, if non-empty.
func (b *Builder) buildSummary(w Writer, kind model.Kind, blocks *[]Block) {
	members := sortMembers(b.vmt.VisibleMembers(kind))
	if len(members) == 0 {
		return
	}
	for _, member := range members {
		w.AddMemberSummary(b.typ, member, b.synth.summarize(member))
	}
	*blocks = append(*blocks, w.SummaryTable(b.typ))
}

// inheritedAncestorVisible reports whether an ancestor may
// contribute an inherited block to typ's page. Public and linkable
// ancestors always may; a package-private ancestor may only when it
// shares typ's package, in which case its members are attributed to
// typ because the ancestor has no page of its own.
func inheritedAncestorVisible(typ, ancestor *model.Type) bool {
	if ancestor.Access == model.Public || ancestor.Linkable {
		return true
	}
	return ancestor.Access == model.PackagePrivate && ancestor.Package == typ.Package
}

// buildInheritedSummary emits one block per ancestor that
// contributes visible inherited members of the kind.
func (b *Builder) buildInheritedSummary(w Writer, kind model.Kind, blocks *[]Block) {
	all := sortMembers(b.vmt.AllVisibleMembers(kind))

	for _, ancestor := range b.vmt.VisibleAncestors() {
		if ancestor == b.typ {
			continue
		}
		if !inheritedAncestorVisible(b.typ, ancestor) {
			continue
		}

		var members []*model.Element
		for _, m := range all {
			if m.Enclosing == ancestor {
				members = append(members, m)
			}
		}
		if len(members) == 0 {
			continue
		}

		// An ancestor without a page of its own cannot be linked to;
		// attribute its members to the documented type instead.
		attributed := ancestor
		if ancestor.Access == model.PackagePrivate && !ancestor.Linkable {
			attributed = b.typ
		}

		header := w.InheritedSummaryHeader(ancestor)
		links := w.InheritedSummaryLinks()
		for i, m := range members {
			w.AddInheritedMemberSummary(attributed, m, i == 0, i == len(members)-1, links)
		}
		header.Add(links)
		*blocks = append(*blocks, header)
	}
}
