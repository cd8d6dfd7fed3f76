package highlight

import chroma "github.com/alecthomas/chroma/v2"

// Sig is a member signature comprised of multiple spans.
type Sig struct {
	Spans []Span
}

type (
	// Span is a part of a signature.
	Span interface{ span() }

	// TextSpan is a span rendered as-is.
	TextSpan struct {
		Text string
	}

	// TokenSpan is a span of signature text
	// that is highlighted with chroma.
	TokenSpan struct {
		Tokens []chroma.Token
	}

	// LinkSpan renders as a link with a specific destination.
	LinkSpan struct {
		Spans []Span
		Dest  string
	}
)

var (
	_ Span = (*TextSpan)(nil)
	_ Span = (*TokenSpan)(nil)
	_ Span = (*LinkSpan)(nil)
)

func (*TextSpan) span()  {}
func (*TokenSpan) span() {}
func (*LinkSpan) span()  {}
