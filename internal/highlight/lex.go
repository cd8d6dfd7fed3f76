package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer analyzes signature text and generates a stream of tokens.
type Lexer interface {
	Lex(src string) ([]chroma.Token, error)
}

// LexerFor builds a [Lexer] for the named source language of the
// documented model, falling back to a plain-text lexer when Chroma
// does not recognize the name.
func LexerFor(language string) Lexer {
	l := lexers.Get(language)
	if l == nil {
		l = lexers.Fallback
	}
	return &chromaLexer{l: chroma.Coalesce(l)}
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given signature text using Chroma.
func (cl *chromaLexer) Lex(src string) ([]chroma.Token, error) {
	return chroma.Tokenise(cl.l, nil, src)
}
