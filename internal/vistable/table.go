// Package vistable resolves which members of a type are visible for
// documentation purposes, across its whole supertype chain.
package vistable

import (
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/naming"
)

// Table answers visibility questions for one documented type.
// It is built once per type and read-only afterwards.
type Table struct {
	typ       *model.Type
	conv      naming.Convention
	ancestors []*model.Type
	members   map[model.Kind][]*model.Element // own plus inherited, closest first
}

// New builds the visibility table for typ.
// A nil convention defaults to [naming.Bean].
func New(typ *model.Type, conv naming.Convention) *Table {
	if conv == nil {
		conv = naming.Bean
	}
	t := &Table{
		typ:     typ,
		conv:    conv,
		members: make(map[model.Kind][]*model.Element),
	}
	t.ancestors = ancestorChain(typ)
	t.computeMembers()
	return t
}

// ancestorChain returns typ followed by its supertypes,
// depth-first in declared order, each type listed once.
func ancestorChain(typ *model.Type) []*model.Type {
	var chain []*model.Type
	seen := make(map[*model.Type]struct{})
	var walk func(*model.Type)
	walk = func(t *model.Type) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		chain = append(chain, t)
		for _, sup := range t.Supertypes {
			walk(sup)
		}
	}
	walk(typ)
	return chain
}

func (t *Table) computeMembers() {
	// overridden tracks member slots already claimed by a closer
	// type: name for fields and nested types, name plus parameter
	// signature for executables.
	overridden := make(map[string]struct{})

	for _, anc := range t.ancestors {
		for _, m := range anc.Members {
			if m.Access == model.Private {
				continue
			}
			key := m.Kind.String() + ":" + m.Name + m.Signature()
			if _, ok := overridden[key]; ok {
				continue
			}
			overridden[key] = struct{}{}
			t.members[m.Kind] = append(t.members[m.Kind], m)
		}
	}
}

// VisibleMembers returns the type's own visible members of a kind.
func (t *Table) VisibleMembers(kind model.Kind) []*model.Element {
	var own []*model.Element
	for _, m := range t.members[kind] {
		if m.Enclosing == t.typ {
			own = append(own, m)
		}
	}
	return own
}

// AllVisibleMembers returns the visible members of a kind across the
// whole supertype chain, own members first, overridden slots excluded.
func (t *Table) AllVisibleMembers(kind model.Kind) []*model.Element {
	return t.members[kind]
}

// VisibleAncestors returns the documented type followed by its
// supertypes in traversal order.
func (t *Table) VisibleAncestors() []*model.Type {
	return t.ancestors
}

// HasVisibleMembers reports whether any member of the kind is
// visible, on the type or inherited.
func (t *Table) HasVisibleMembers(kind model.Kind) bool {
	return len(t.members[kind]) > 0
}

// HasVisibleMembersAnyKind reports whether the type has any visible
// member of any kind.
func (t *Table) HasVisibleMembersAnyKind() bool {
	for _, ms := range t.members {
		if len(ms) > 0 {
			return true
		}
	}
	return false
}

// PropertyGetter returns the getter accessor for a property method,
// or nil if the enclosing type declares none.
func (t *Table) PropertyGetter(property *model.Element) *model.Element {
	base := t.conv.PropertyName(property.Name)
	for _, m := range t.methodsOf(property.Enclosing) {
		if len(m.Params) == 0 && t.conv.IsGetter(m.Name) && t.conv.PropertyName(m.Name) == base {
			return m
		}
	}
	return nil
}

// PropertySetter returns the setter accessor for a property method,
// or nil if the enclosing type declares none.
func (t *Table) PropertySetter(property *model.Element) *model.Element {
	base := t.conv.PropertyName(property.Name)
	for _, m := range t.methodsOf(property.Enclosing) {
		if len(m.Params) == 1 && t.conv.IsSetter(m.Name) && t.conv.PropertyName(m.Name) == base {
			return m
		}
	}
	return nil
}

// PropertyField returns the backing field for a property method,
// or nil if the enclosing type declares none.
func (t *Table) PropertyField(property *model.Element) *model.Element {
	base := t.conv.PropertyName(property.Name)
	for _, m := range property.Enclosing.Members {
		if m.Kind == model.KindFields && m.Name == base {
			return m
		}
	}
	return nil
}

func (t *Table) methodsOf(typ *model.Type) []*model.Element {
	var methods []*model.Element
	for _, m := range typ.Members {
		if m.Kind == model.KindMethods {
			methods = append(methods, m)
		}
	}
	return methods
}
