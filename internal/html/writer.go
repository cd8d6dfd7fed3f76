// Package html renders reference pages for model types,
// including the member summary tables decided by the summary builder.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/typeref/typeref/internal/highlight"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/must"
	"github.com/typeref/typeref/internal/relative"
	"github.com/typeref/typeref/internal/summary"
)

// captions and row headers per member kind.
var _kindLabels = map[model.Kind]struct {
	Caption string
	Column  string
}{
	model.KindNestedTypes:        {"Nested Type Summary", "Type"},
	model.KindEnumConstants:      {"Enum Constant Summary", "Enum Constant"},
	model.KindFields:             {"Field Summary", "Field"},
	model.KindProperties:         {"Property Summary", "Property"},
	model.KindConstructors:       {"Constructor Summary", "Constructor"},
	model.KindMethods:            {"Method Summary", "Method"},
	model.KindAnnotationFields:   {"Field Summary", "Field"},
	model.KindAnnotationRequired: {"Required Element Summary", "Element"},
	model.KindAnnotationOptional: {"Optional Element Summary", "Element"},
}

// WriterFactory builds one summary writer per member kind of a page.
type WriterFactory struct {
	// Highlighter renders signature markup.
	Highlighter *highlight.Highlighter

	// Lexer tokenizes signature text for highlighting.
	Lexer highlight.Lexer
}

var _ summary.WriterFactory = (*WriterFactory)(nil)

// SummaryWriter returns the writer for one kind of typ's page.
func (f *WriterFactory) SummaryWriter(typ *model.Type, kind model.Kind) summary.Writer {
	must.Truef(kind.Valid(), "invalid member kind %d", int(kind))
	return &SummaryWriter{
		page: typ,
		kind: kind,
		sig:  &sigRenderer{hl: f.Highlighter, lexer: f.Lexer},
	}
}

// SummaryWriter renders the summary rows of one member kind into
// HTML [Node] blocks.
type SummaryWriter struct {
	page *model.Type
	kind model.Kind
	sig  *sigRenderer

	rows []summaryRow // pending own-member rows
}

var _ summary.Writer = (*SummaryWriter)(nil)

type summaryRow struct {
	Signature template.HTML
	Summary   string
}

// SummaryHeader returns the section container for the kind.
func (w *SummaryWriter) SummaryHeader(typ *model.Type) summary.Block {
	return &Node{
		open: template.HTML(fmt.Sprintf(
			`<section class="member-summary" id=%q><h2>%s</h2>`,
			sectionID(w.kind), template.HTMLEscapeString(_kindLabels[w.kind].Caption))),
		closing: "</section>",
	}
}

// AddMemberSummary adds one own-member row to the pending table.
func (w *SummaryWriter) AddMemberSummary(typ *model.Type, member *model.Element, firstSentence string) {
	w.rows = append(w.rows, summaryRow{
		Signature: w.sig.signature(member, "#"+anchor(member)),
		Summary:   firstSentence,
	})
}

// SummaryTable renders the rows added so far and resets them.
func (w *SummaryWriter) SummaryTable(typ *model.Type) summary.Block {
	rows := w.rows
	w.rows = nil

	var buff bytes.Buffer
	err := _summaryTmpl.Execute(&buff, struct {
		Column string
		Rows   []summaryRow
	}{
		Column: _kindLabels[w.kind].Column,
		Rows:   rows,
	})
	must.NotErrorf(err, "render summary table for %v", w.kind)
	return &Node{content: template.HTML(buff.String())}
}

// InheritedSummaryHeader returns the container for members inherited
// from ancestor.
func (w *SummaryWriter) InheritedSummaryHeader(ancestor *model.Type) summary.Block {
	return &Node{
		open: template.HTML(fmt.Sprintf(
			`<div class="inherited-summary"><h3>%s inherited from %s</h3>`,
			template.HTMLEscapeString(pluralLabel(w.kind)),
			template.HTMLEscapeString(ancestor.QualifiedName()))),
		closing: "</div>",
	}
}

// InheritedSummaryLinks returns the container inherited member links
// are added to.
func (w *SummaryWriter) InheritedSummaryLinks() summary.Block {
	return &Node{open: "<code>", closing: "</code>"}
}

// AddInheritedMemberSummary adds one inherited member link to links.
// Links are comma separated; the last marker suppresses the
// trailing separator.
func (w *SummaryWriter) AddInheritedMemberSummary(attributed *model.Type, member *model.Element, isFirst, isLast bool, links summary.Block) {
	href := w.memberHref(attributed, member)
	var sb strings.Builder
	fmt.Fprintf(&sb, "<a href=%q>%s</a>", href, template.HTMLEscapeString(member.Name))
	if !isLast {
		sb.WriteString(", ")
	}
	links.Add(&Node{content: template.HTML(sb.String())})
}

// memberHref builds the link target for an inherited member:
// a bare fragment when the member is attributed to the current page,
// a relative page path otherwise.
func (w *SummaryWriter) memberHref(attributed *model.Type, member *model.Element) string {
	frag := "#" + anchor(member)
	if attributed == w.page {
		return frag
	}
	return relative.Path(pageDir(w.page), PagePath(attributed)) + frag
}

// PagePath is the output path of a type's reference page,
// relative to the site root.
func PagePath(typ *model.Type) string {
	dir := strings.ReplaceAll(typ.Package, ".", "/")
	return path.Join(dir, typ.Name+".html")
}

func pageDir(typ *model.Type) string {
	return dirOf(PagePath(typ))
}

// dirOf is path.Dir, with "" for paths at the site root so that
// [relative.Path] does not ascend out of it.
func dirOf(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

func sectionID(kind model.Kind) string {
	return strings.ReplaceAll(kind.String(), " ", "-") + "-summary"
}

var _titleCase = cases.Title(language.English)

func pluralLabel(kind model.Kind) string {
	switch kind {
	case model.KindNestedTypes:
		return "Nested types"
	case model.KindFields:
		return "Fields"
	case model.KindProperties:
		return "Properties"
	case model.KindMethods:
		return "Methods"
	default:
		return _titleCase.String(kind.String())
	}
}

var _summaryTmpl = template.Must(template.New("summary").Parse(`<table class="summary-table">
<thead><tr><th>{{.Column}}</th><th>Description</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td class="col-signature">{{.Signature}}</td><td class="col-description">{{.Summary}}</td></tr>
{{- end}}
</tbody>
</table>
`))
