// Package highlight renders member signatures as highlighted HTML.
// It uses the Chroma library to do this work.
//
// Signatures are represented as [Sig] values made of [Span]s, so a
// signature can mix highlighted code with links to other members.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Highlighter turns [Sig] values into HTML.
type Highlighter struct {
	// Style used for syntax highlighting.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter uses inline
	// 'style' attributes for highlighting, or classes, assuming use
	// of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Highlight renders the given signature into HTML.
// The result is an inline <code> element.
func (h *Highlighter) Highlight(sig *Sig) string {
	h.init()

	if sig == nil {
		return ""
	}

	r := sigRenderer{fmt: h.formatter, sty: h.Style}
	r.WriteString("<code>")
	r.RenderSpans(sig.Spans)
	r.WriteString("</code>")
	return r.String()
}

type sigRenderer struct {
	bytes.Buffer

	fmt chroma.Formatter
	sty *chroma.Style
}

func (r *sigRenderer) RenderSpans(spans []Span) {
	for _, span := range spans {
		r.RenderSpan(span)
	}
}

func (r *sigRenderer) RenderSpan(span Span) {
	switch b := span.(type) {
	case *TokenSpan:
		r.fmt.Format(r, r.sty, chroma.Literator(b.Tokens...))
	case *TextSpan:
		template.HTMLEscape(r, []byte(b.Text))
	case *LinkSpan:
		fmt.Fprintf(r, "<a href=%q>", b.Dest)
		r.RenderSpans(b.Spans)
		r.WriteString("</a>")
	default:
		panic(fmt.Sprintf("unrecognized span type %T", b))
	}
}
