// Package comment models structured documentation comments
// attached to elements of a type model,
// and provides the helpers needed to synthesize new ones.
package comment

import "strings"

// Well-known block tag names.
const (
	TagSince               = "since"
	TagSee                 = "see"
	TagDefaultValue        = "defaultValue"
	TagPropertyDescription = "propertyDescription"
)

// Doc is one structured documentation comment:
// a body of prose followed by block tags.
type Doc struct {
	// Body is the full body text of the comment,
	// excluding block tags.
	Body string

	// Tags are the block tags of the comment in source order.
	Tags []Tag
}

// Tag is a single block tag of a comment, like "@since 9"
// or "@see #setValue(int)".
type Tag struct {
	Name string
	Text string
}

// FirstSentence returns the first sentence of the comment body,
// or an empty string if the doc is nil or has an empty body.
func (d *Doc) FirstSentence() string {
	if d == nil {
		return ""
	}
	return firstSentence(d.Body)
}

// TagsNamed returns the block tags with the given name, in order.
func (d *Doc) TagsNamed(name string) []Tag {
	if d == nil {
		return nil
	}
	var tags []Tag
	for _, tag := range d.Tags {
		if tag.Name == name {
			tags = append(tags, tag)
		}
	}
	return tags
}

// firstSentence cuts text at the first period
// that is followed by whitespace or ends the text.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		if i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\n' || text[i+1] == '\t' {
			return text[:i+1]
		}
	}
	return text
}

// SeeTag builds a "see" block tag from a member reference
// in "#name" or "#name(sig)" form.
func SeeTag(ref string) Tag {
	return Tag{Name: TagSee, Text: ref}
}

// PropertyDescriptionTag wraps a comment body copied from a
// property source into a propertyDescription block tag.
func PropertyDescriptionTag(body string) Tag {
	return Tag{Name: TagPropertyDescription, Text: body}
}
