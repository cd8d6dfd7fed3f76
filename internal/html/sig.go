package html

import (
	"html/template"
	"strings"

	"github.com/typeref/typeref/internal/highlight"
	"github.com/typeref/typeref/internal/model"
)

// sigRenderer builds the highlighted signature cell for one member.
type sigRenderer struct {
	hl    *highlight.Highlighter
	lexer highlight.Lexer
}

// anchor is the fragment identifier of a member on its type's page:
// the name for simple members, name plus parameter types for
// executables so overloads stay distinct.
func anchor(member *model.Element) string {
	if member.Executable() {
		return member.Name + member.Signature()
	}
	return member.Name
}

// signature renders a member's signature with the member name
// linking to dest.
func (sr *sigRenderer) signature(member *model.Element, dest string) template.HTML {
	var spans []highlight.Span
	if prefix := sigPrefix(member); prefix != "" {
		spans = append(spans, sr.code(prefix))
	}
	spans = append(spans, &highlight.LinkSpan{
		Dest:  dest,
		Spans: []highlight.Span{&highlight.TextSpan{Text: member.Name}},
	})
	if member.Executable() {
		spans = append(spans, sr.code(paramList(member)))
	}
	return template.HTML(sr.hl.Highlight(&highlight.Sig{Spans: spans}))
}

// code lexes src into a token span, falling back to plain text if
// the lexer rejects it.
func (sr *sigRenderer) code(src string) highlight.Span {
	tokens, err := sr.lexer.Lex(src)
	if err != nil {
		return &highlight.TextSpan{Text: src}
	}
	return &highlight.TokenSpan{Tokens: tokens}
}

func sigPrefix(member *model.Element) string {
	var parts []string
	switch member.Access {
	case model.Public:
		parts = append(parts, "public")
	case model.Protected:
		parts = append(parts, "protected")
	}
	if member.Return != "" {
		parts = append(parts, member.Return)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

func paramList(member *model.Element) string {
	params := make([]string, len(member.Params))
	for i, p := range member.Params {
		if p.Name == "" {
			params[i] = p.Type
		} else {
			params[i] = p.Type + " " + p.Name
		}
	}
	return "(" + strings.Join(params, ", ") + ")"
}
