package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/errdefer"
	"github.com/typeref/typeref/internal/html"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/naming"
	"github.com/typeref/typeref/internal/summary"
	"github.com/typeref/typeref/internal/vistable"
)

// Renderer renders reference pages and their static assets to disk.
type Renderer interface {
	WriteStatic(dir string) error
	RenderType(w io.Writer, info *html.TypeInfo) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator generates reference pages for a loaded type model.
type Generator struct {
	Log *log.Logger

	// Renderer renders individual pages.
	Renderer Renderer

	// Factory supplies member summary writers for the pages.
	Factory summary.WriterFactory

	// Finder locates ancestors to borrow member documentation from.
	Finder summary.DonorFinder

	// Convention classifies property accessor methods.
	Convention naming.Convention

	// Messages renders synthesized summary sentences.
	Messages *comment.Messages

	// OutDir is the directory to write the generated pages to.
	OutDir string
}

// Generate writes one reference page per linkable type,
// plus the shared static assets.
func (g *Generator) Generate(types []*model.Type) error {
	if err := g.Renderer.WriteStatic(g.OutDir); err != nil {
		return errtrace.Wrap(err)
	}

	for _, typ := range types {
		if !typ.Linkable {
			continue
		}
		if err := g.renderType(typ); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (g *Generator) renderType(typ *model.Type) (err error) {
	g.Log.Printf("%v", typ.QualifiedName())

	builder := summary.NewBuilder(summary.Config{
		Type:       typ,
		Table:      vistable.New(typ, g.Convention),
		Factory:    g.Factory,
		Finder:     g.Finder,
		Convention: g.Convention,
		Messages:   g.Messages,
	})

	page := html.NewPage()
	if builder.HasMembersToDocument() {
		builder.Build(page)
	}

	outPath := filepath.Join(g.OutDir, filepath.FromSlash(html.PagePath(typ)))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(g.Renderer.RenderType(f, &html.TypeInfo{
		Type:          typ,
		MemberSummary: page.HTML(),
	}))
}
