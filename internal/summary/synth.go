package summary

import (
	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/naming"
)

// synthesizer derives the documentation shown in summary rows.
// For property-family members it synthesizes a comment from the
// resolved documentation source and installs it on the member so
// the rest of the page stays consistent; for executable members
// without a first sentence it borrows one from the nearest
// documented override ancestor.
type synthesizer struct {
	msgs   *comment.Messages
	conv   naming.Convention
	finder DonorFinder
	props  *propertyHelper

	// donors records which ancestor supplied a borrowed first
	// sentence, keyed by the borrowing member.
	donors map[*model.Element]*model.Element
}

func newSynthesizer(msgs *comment.Messages, conv naming.Convention, finder DonorFinder, props *propertyHelper) *synthesizer {
	return &synthesizer{
		msgs:   msgs,
		conv:   conv,
		finder: finder,
		props:  props,
		donors: make(map[*model.Element]*model.Element),
	}
}

// summarize returns the first sentence to show for member,
// synthesizing and installing the member's comment first if the
// member belongs to a property family.
func (s *synthesizer) summarize(member *model.Element) string {
	if source := s.props.propertySource(member); source != nil {
		s.processProperty(member, source)
	}

	first := member.Doc.FirstSentence()
	if member.Executable() && first == "" {
		if s.finder != nil {
			if donor := s.finder.Search(member); donor != nil {
				s.donors[member] = donor
				first = donor.Doc.FirstSentence()
			}
		}
	}
	return first
}

// donorFor returns the ancestor whose first sentence was borrowed
// for member, or nil.
func (s *synthesizer) donorFor(member *model.Element) *model.Element {
	return s.donors[member]
}

// processProperty rebuilds member's comment from its documentation
// source. Accessors get a canned lead sentence plus the source's
// description; the plain property method gets the source's body and
// see tags pointing at its accessors. The result replaces the
// member's comment.
//
// The record is recomputed from scratch on every call, so repeated
// synthesis of the same pair yields the same comment.
func (s *synthesizer) processProperty(member, source *model.Element) {
	isGetter := s.conv.IsGetter(member.Name)
	isSetter := s.conv.IsSetter(member.Name)

	var body string
	var tags []comment.Tag
	if isGetter || isSetter {
		name := s.conv.PropertyName(member.Name)
		if isSetter {
			body = s.msgs.PropertySetter(name)
		}
		if isGetter {
			body = s.msgs.PropertyGetter(name)
		}
		if desc := source.Doc.TagsNamed(comment.TagPropertyDescription); len(desc) > 0 {
			tags = append(tags, desc...)
		} else if sourceBody := docBody(source); sourceBody != "" {
			tags = append(tags, comment.PropertyDescriptionTag(sourceBody))
		}
	} else {
		body = docBody(source)
	}

	tags = append(tags, source.Doc.TagsNamed(comment.TagSince)...)
	tags = append(tags, source.Doc.TagsNamed(comment.TagDefaultValue)...)

	if !isGetter && !isSetter {
		if getter := s.props.getterFor(member); getter != nil {
			tags = append(tags, comment.SeeTag("#"+getter.Name+"()"))
		}
		if setter := s.props.setterFor(member); setter != nil {
			ref := "#" + setter.Name
			if param := setter.Params[0]; !param.TypeVariable {
				ref += "(" + param.Type + ")"
			}
			tags = append(tags, comment.SeeTag(ref))
		}
	}

	member.Doc = &comment.Doc{Body: body, Tags: tags}
}

func docBody(e *model.Element) string {
	if e.Doc == nil {
		return ""
	}
	return e.Doc.Body
}
