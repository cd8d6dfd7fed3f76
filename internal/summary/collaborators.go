package summary

import (
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/vistable"
)

// VisibleMemberTable resolves which members of the documented type
// are visible, across its whole supertype chain.
type VisibleMemberTable interface {
	// VisibleMembers returns the type's own visible members of a kind.
	VisibleMembers(model.Kind) []*model.Element

	// AllVisibleMembers returns the visible members of a kind
	// including inherited ones, overridden slots excluded.
	AllVisibleMembers(model.Kind) []*model.Element

	// VisibleAncestors returns the documented type followed by its
	// supertypes in traversal order.
	VisibleAncestors() []*model.Type

	// PropertyGetter, PropertySetter, and PropertyField return the
	// accessors and backing field of a property method, nil when absent.
	PropertyGetter(*model.Element) *model.Element
	PropertySetter(*model.Element) *model.Element
	PropertyField(*model.Element) *model.Element

	// HasVisibleMembers reports whether any member of the kind is
	// visible, own or inherited.
	HasVisibleMembers(model.Kind) bool

	// HasVisibleMembersAnyKind reports whether the type has any
	// visible member at all.
	HasVisibleMembersAnyKind() bool
}

var _ VisibleMemberTable = (*vistable.Table)(nil)

// DonorFinder locates the nearest override ancestor of an executable
// member that carries usable documentation, or nil if none exists.
type DonorFinder interface {
	Search(*model.Element) *model.Element
}

var _ DonorFinder = vistable.DocFinder{}
