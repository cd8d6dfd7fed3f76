package vistable

import "github.com/typeref/typeref/internal/model"

// DocFinder locates the nearest override ancestor of a method that
// carries usable documentation.
type DocFinder struct{}

// Search walks the supertypes of the member's enclosing type,
// depth-first in declared order, and returns the first
// same-signature method whose comment has a non-empty first
// sentence. It returns nil if the member is not executable or no
// such ancestor method exists.
func (DocFinder) Search(member *model.Element) *model.Element {
	if !member.Executable() {
		return nil
	}
	sig := member.Signature()
	for _, anc := range ancestorChain(member.Enclosing)[1:] {
		for _, m := range anc.Members {
			if m.Kind != member.Kind || m.Name != member.Name || m.Signature() != sig {
				continue
			}
			if m.Doc.FirstSentence() != "" {
				return m
			}
		}
	}
	return nil
}
