package summary

import (
	"cmp"
	"slices"
	"strings"

	"github.com/typeref/typeref/internal/model"
)

// Compare orders elements the way the index and summary tables
// present them: alphabetically ignoring case, so overloads group
// together, with the parameter signature and kind as tiebreaks.
// It is a total order: distinct elements never compare equal
// unless they are indistinguishable on every key.
func Compare(a, b *model.Element) int {
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Signature(), b.Signature()); c != 0 {
		return c
	}
	return cmp.Compare(int(a.Kind), int(b.Kind))
}

// sortMembers returns the members in summary order
// without mutating the input.
func sortMembers(members []*model.Element) []*model.Element {
	out := slices.Clone(members)
	slices.SortStableFunc(out, Compare)
	return out
}
