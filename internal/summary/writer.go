package summary

import "github.com/typeref/typeref/internal/model"

// Block is a renderer-owned chunk of summary output.
// The builder only composes blocks; it never inspects them.
type Block interface {
	// Add appends a child block.
	Add(Block)
}

// Writer renders the summary rows decided by the builder.
// One writer handles one member kind of one documented type.
type Writer interface {
	// SummaryHeader returns the container for the kind's whole
	// summary section.
	SummaryHeader(typ *model.Type) Block

	// AddMemberSummary adds one own-member row with its summary
	// sentence to the writer's pending table.
	AddMemberSummary(typ *model.Type, member *model.Element, firstSentence string)

	// SummaryTable returns the table holding the rows added so far.
	SummaryTable(typ *model.Type) Block

	// InheritedSummaryHeader returns the container for members
	// inherited from one ancestor.
	InheritedSummaryHeader(ancestor *model.Type) Block

	// InheritedSummaryLinks returns the container that inherited
	// member links are added to.
	InheritedSummaryLinks() Block

	// AddInheritedMemberSummary adds one inherited member link to
	// links. Cross-references target attributed, which is the
	// ancestor or, when the ancestor has no page of its own, the
	// documented type.
	AddInheritedMemberSummary(attributed *model.Type, member *model.Element, isFirst, isLast bool, links Block)
}

// WriterFactory hands out one summary writer per member kind of a
// documented type.
type WriterFactory interface {
	SummaryWriter(typ *model.Type, kind model.Kind) Writer
}
