package syntax

// eventShape distinguishes the four event shapes the parser can emit. It is
// separate from Kind, which labels what a Start or Token event produces —
// an event's shape says "what kind of log entry is this," while its kind
// field (where applicable) says "what tree node/token does it describe."
type eventShape uint8

const (
	shapeStart eventShape = iota
	shapeFinish
	shapeToken
	shapeError
	shapeTombstone // a Start event abandoned before completion
)

// event is one entry of the append-only log the parser writes while
// walking the grammar. The log is replayed once, at the end of parsing, by
// Builder to construct the actual tree (spec §3/§4.2). Nothing here ever
// mutates a tree node directly: retroactive reparenting is expressed by
// rewriting an already-appended Start event's forwardParent field, which is
// how, for example, a binary expression's left operand ends up inside the
// BinExpr node that was started after the operand was completed.
type event struct {
	shape eventShape
	kind  Kind // meaningful for shapeStart/shapeToken

	// forwardParent, when non-zero, redirects this Start event's parent to
	// be the Start event at that relative offset instead of the lexically
	// enclosing one.
	forwardParent int

	// leafCount is, for shapeToken events, how many consecutive entries of
	// the token source's accumulated leaf list (leading trivia, then the
	// token itself) this event consumes.
	leafCount int
	diag      *Diagnostic // shapeError only
}

// EventBuffer accumulates the parser's event log. It knows nothing about
// grammar; it only records Start/Finish/Token/Error in the order the
// parser calls them. Forward-parent links are resolved later, by Builder.
type EventBuffer struct {
	events []event
}

// NewEventBuffer returns an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Marker is a handle to a not-yet-completed Start event, returned by
// Parser.start. Calling complete or abandon consumes it.
type Marker struct {
	pos int // index into EventBuffer.events
}

// CompletedMarker is a handle to a Start event that has been given its
// final kind via Marker.complete. It supports precede, which inserts a new
// enclosing Start event and rewires this one's forward-parent link — the
// mechanism that lets the parser promote an already-completed node into
// being a child of a node it hasn't started yet (spec's retroactive
// reparenting design note).
type CompletedMarker struct {
	pos  int
	kind Kind
}

// Kind returns the kind this marker was completed with.
func (m CompletedMarker) Kind() Kind { return m.kind }

// start reserves a tombstone Start event and returns a Marker for it. The
// caller must eventually call complete or abandon on the returned Marker.
func (b *EventBuffer) start() Marker {
	pos := len(b.events)
	b.events = append(b.events, event{shape: shapeStart, kind: Tombstone})
	return Marker{pos: pos}
}

// complete assigns kind to m's Start event, appends a matching Finish
// event, and returns a CompletedMarker so the caller can precede it later.
func (b *EventBuffer) complete(m Marker, kind Kind) CompletedMarker {
	b.events[m.pos].kind = kind
	b.events = append(b.events, event{shape: shapeFinish})
	return CompletedMarker{pos: m.pos, kind: kind}
}

// abandon discards m: its Start event becomes a tombstone and contributes
// no node to the tree. Used when a speculative parse turns out not to
// match (checkpoint/rewind undoes any tokens already bumped; abandon only
// cleans up the marker itself).
func (b *EventBuffer) abandon(m Marker) {
	if m.pos == len(b.events)-1 {
		// Nothing was appended since m.start(): drop the reservation
		// entirely so it doesn't leave a gap in the log.
		b.events = b.events[:m.pos]
		return
	}
	b.events[m.pos].shape = shapeTombstone
}

// precede inserts a new tombstone Start event immediately before m's
// original Start event and rewires m to forward-parent into it. The
// returned Marker is completed normally by the caller; once it is, the new
// node becomes m's parent in the tree even though it was started after m.
//
// This is the event-log generalization of a direct-mutation Parser.wrap:
// physically re-slicing the node array in place only works if the grammar
// never needs more than one level of retroactive reparenting at a time. An
// append-only log with forward-parent links handles arbitrary reordering
// without touching anything already written.
func (b *EventBuffer) precede(m CompletedMarker) Marker {
	newPos := len(b.events)
	b.events = append(b.events, event{shape: shapeStart, kind: Tombstone})
	b.events[m.pos].forwardParent = newPos - m.pos
	return Marker{pos: newPos}
}

// token appends a Token event recording that the parser consumed one token
// of kind, along with leafCount leading-trivia-plus-token leaves from the
// token source's accumulated leaf list.
func (b *EventBuffer) token(kind Kind, leafCount int) {
	b.events = append(b.events, event{shape: shapeToken, kind: kind, leafCount: leafCount})
}

// errorEvent appends a diagnostic to the log at the current position,
// attached to whichever node eventually encloses it once the tree is built.
func (b *EventBuffer) errorEvent(diag *Diagnostic) {
	b.events = append(b.events, event{shape: shapeError, diag: diag})
}

// len reports how many events have been recorded, used by Parser to
// compute relative checkpoint offsets.
func (b *EventBuffer) len() int {
	return len(b.events)
}

// truncate discards every event from index pos onward, used by Parser's
// checkpoint/rewind to undo a speculative parse that didn't pan out.
func (b *EventBuffer) truncate(pos int) {
	b.events = b.events[:pos]
}
