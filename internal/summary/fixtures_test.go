package summary

import (
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/vistable"
)

// declare attaches a member to a type and returns it.
func declare(t *model.Type, e *model.Element) *model.Element {
	e.Enclosing = t
	t.Members = append(t.Members, e)
	return e
}

// testBlock is a Block that records its children.
type testBlock struct {
	label    string
	children []Block
}

func (b *testBlock) Add(c Block) { b.children = append(b.children, c) }

type ownRow struct {
	member        *model.Element
	firstSentence string
}

type inheritedRow struct {
	attributed *model.Type
	member     *model.Element
	first      bool
	last       bool
}

// recordingWriter captures every row the builder decides on.
type recordingWriter struct {
	kind model.Kind

	rows          []ownRow
	inheritedRows []inheritedRow
	headers       []*model.Type // ancestors passed to InheritedSummaryHeader
}

var _ Writer = (*recordingWriter)(nil)

func (w *recordingWriter) SummaryHeader(*model.Type) Block {
	return &testBlock{label: "section"}
}

func (w *recordingWriter) AddMemberSummary(_ *model.Type, member *model.Element, firstSentence string) {
	w.rows = append(w.rows, ownRow{member: member, firstSentence: firstSentence})
}

func (w *recordingWriter) SummaryTable(*model.Type) Block {
	return &testBlock{label: "table"}
}

func (w *recordingWriter) InheritedSummaryHeader(ancestor *model.Type) Block {
	w.headers = append(w.headers, ancestor)
	return &testBlock{label: "inherited"}
}

func (w *recordingWriter) InheritedSummaryLinks() Block {
	return &testBlock{label: "links"}
}

func (w *recordingWriter) AddInheritedMemberSummary(attributed *model.Type, member *model.Element, isFirst, isLast bool, _ Block) {
	w.inheritedRows = append(w.inheritedRows, inheritedRow{
		attributed: attributed,
		member:     member,
		first:      isFirst,
		last:       isLast,
	})
}

// recordingFactory hands out recordingWriters and remembers them.
type recordingFactory struct {
	writers map[model.Kind]*recordingWriter
}

func newRecordingFactory() *recordingFactory {
	return &recordingFactory{writers: make(map[model.Kind]*recordingWriter)}
}

func (f *recordingFactory) SummaryWriter(_ *model.Type, kind model.Kind) Writer {
	w := &recordingWriter{kind: kind}
	f.writers[kind] = w
	return w
}

// newTestBuilder wires a builder for typ with real collaborators
// and a recording factory.
func newTestBuilder(typ *model.Type) (*Builder, *recordingFactory) {
	factory := newRecordingFactory()
	b := NewBuilder(Config{
		Type:    typ,
		Table:   vistable.New(typ, nil),
		Factory: factory,
		Finder:  vistable.DocFinder{},
	})
	return b, factory
}
