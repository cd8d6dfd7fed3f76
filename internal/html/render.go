package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/typeref/typeref/internal/highlight"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/relative"
)

const _staticDir = "_"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/**
	_staticFS embed.FS

	// Unusable function references at parse time,
	// and then Clone and replace at render time.
	// This way, template validity is still verified at init.
	_typeTmpl = template.Must(
		template.New("type.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/type.html"),
	)
)

// Renderer renders reference pages into HTML.
type Renderer struct {
	// Embedded specifies whether output should contain only the
	// documentation body, without a complete HTML page around it.
	Embedded bool

	// Highlighter provides the stylesheet for signature markup.
	Highlighter *highlight.Highlighter
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

// WriteStatic dumps the contents of static/ into the given directory.
//
// This is a no-op if the renderer is running in embedded mode.
func (r *Renderer) WriteStatic(dir string) error {
	if r.Embedded {
		return nil
	}

	dir = filepath.Join(dir, _staticDir)
	static, err := fs.Sub(_staticFS, "static")
	if err != nil {
		return err
	}
	return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || p == "." {
			return err
		}

		outPath := filepath.Join(dir, p)
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		bs, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}

		if p == "css/main.css" && r.Highlighter != nil {
			buff := bytes.NewBuffer(bs)
			buff.WriteString("\n")
			if err := r.Highlighter.WriteCSS(buff); err != nil {
				return err
			}
			bs = buff.Bytes()
		}

		return os.WriteFile(outPath, bs, 0o644)
	})
}

// TypeInfo specifies the type page that should be rendered.
type TypeInfo struct {
	// Type whose page is being rendered.
	Type *model.Type

	// MemberSummary is the rendered member summary section,
	// produced by the summary builder through a [WriterFactory].
	MemberSummary template.HTML
}

// PageKind is the heading label for the type's shape.
func (info *TypeInfo) PageKind() string {
	if info.Type.Annotation {
		return "Annotation Type"
	}
	return "Class"
}

// RenderType renders the reference page for a single type.
func (r *Renderer) RenderType(w io.Writer, info *TypeInfo) error {
	render := render{Path: PagePath(info.Type)}
	return template.Must(_typeTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), info)
}

type render struct {
	// Path of the page being rendered, relative to the site root.
	Path string
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"static":   r.static,
		"typeLink": r.typeLink,
	}
}

func (r *render) static(p string) string {
	return relative.Path(dirOf(r.Path), path.Join(_staticDir, p))
}

func (r *render) typeLink(t *model.Type) string {
	return relative.Path(dirOf(r.Path), PagePath(t))
}
