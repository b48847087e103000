package syntax

// MaxDepth bounds recursive-descent nesting so a pathologically deep input
// (e.g. `((((((...` thousands deep) fails with a diagnostic instead of
// overflowing the Go stack.
const MaxDepth = 256

// Checkpoint captures enough of the parser's state to fully rewind a
// speculative parse: the event log length and the token source's lexing
// position (spec §4.3, "Bounded backtracking" — used by the arrow-
// function-vs-parenthesized-expression disambiguation in grammar_expr.go).
type Checkpoint struct {
	eventsLen int
	tsMark    TokenSourceMark
	state     state
}

// Parser is the event-based recursive-descent driver: it never builds
// tree nodes directly (EventBuffer/Builder do that in a later pass) and it
// never panics on malformed input — every production either completes a
// marker or advances the cursor, so the entry points in entry.go are total.
type Parser struct {
	ts     *TokenSource
	events *EventBuffer
	state  state
	depth  int
}

// NewParser builds a parser over text starting from the default state.
func NewParser(text string) *Parser {
	return &Parser{
		ts:     NewTokenSource(text),
		events: NewEventBuffer(),
		state:  defaultState(),
	}
}

// Start opens a new marker at the cursor. The caller must eventually call
// Complete or Abandon on it.
func (p *Parser) Start() Marker {
	return p.events.start()
}

// Complete assigns kind to m and closes it.
func (m Marker) Complete(p *Parser, kind Kind) CompletedMarker {
	return p.events.complete(m, kind)
}

// Abandon discards m without producing a node.
func (m Marker) Abandon(p *Parser) {
	p.events.abandon(m)
}

// Precede opens a new marker that will become m's parent once completed,
// without disturbing anything already parsed under m (spec's retroactive
// reparenting design note; see event.go's EventBuffer.precede doc).
func (m CompletedMarker) Precede(p *Parser) Marker {
	return p.events.precede(m)
}

// Current returns the kind of the token at the cursor.
func (p *Parser) Current() Kind {
	return p.ts.Current()
}

// Nth returns the kind of the token n positions ahead (Nth(0) == Current).
func (p *Parser) Nth(n int) Kind {
	return p.ts.Nth(n)
}

// At reports whether the token at the cursor has the given kind.
func (p *Parser) At(kind Kind) bool {
	return p.Current() == kind
}

// AtSet reports whether the token at the cursor belongs to set.
func (p *Parser) AtSet(set KindSet) bool {
	return set.Contains(p.Current())
}

// AtEnd reports whether the cursor has reached end of input.
func (p *Parser) AtEnd() bool {
	return p.At(EOF)
}

// CurrentText returns the exact source text of the token at the cursor.
func (p *Parser) CurrentText() string {
	return p.ts.CurrentText()
}

// CurrentSpan returns the byte span of the token at the cursor.
func (p *Parser) CurrentSpan() Span {
	return p.ts.CurrentSpan()
}

// HadNewlineBefore reports whether a line terminator appeared in the
// cursor token's leading trivia (spec §4.4, ASI).
func (p *Parser) HadNewlineBefore() bool {
	return p.ts.HadNewlineBefore()
}

// BumpAny consumes the token at the cursor regardless of its kind and
// records a Token event for it. Used once a production already knows, by
// construction, what the current token must be (e.g. after At/AtSet
// succeeded) or during error recovery.
func (p *Parser) BumpAny() {
	kind := p.Current()
	leafCount := p.ts.Bump(kind)
	p.events.token(kind, leafCount)
}

// Eat consumes the token at the cursor if it has the given kind and
// reports whether it did.
func (p *Parser) Eat(kind Kind) bool {
	if !p.At(kind) {
		return false
	}
	p.BumpAny()
	return true
}

// Expect consumes the token at the cursor if it matches kind; otherwise it
// records a diagnostic and leaves the cursor in place (the caller's own
// production still completes its marker, preserving forward progress).
func (p *Parser) Expect(kind Kind) bool {
	if p.Eat(kind) {
		return true
	}
	p.Error(Expected(p.CurrentSpan(), kind.Name(), p.Current()))
	return false
}

// Error records diag at the current position without consuming a token.
func (p *Parser) Error(diag *Diagnostic) {
	p.events.errorEvent(diag)
}

// ErrRecover reports diag, then skips tokens into an Error node until the
// cursor reaches a token in recoverySet or end of input — guaranteeing
// every call either advances the cursor or leaves the tree unchanged, per
// the forward-progress discipline every recovering production must honor
// (spec §4.3). If the cursor already sits on a recovery token (or EOF), no
// Error node is produced: the diagnostic alone is enough.
func (p *Parser) ErrRecover(diag *Diagnostic, recoverySet KindSet) {
	if p.AtEnd() || p.AtSet(recoverySet) {
		p.Error(diag)
		return
	}
	p.Error(diag)
	m := p.Start()
	for !p.AtEnd() && !p.AtSet(recoverySet) {
		p.BumpAny()
	}
	m.Complete(p, Error)
}

// Unexpected reports an "unexpected token" diagnostic at the cursor
// without consuming anything, for productions that hit a token no
// alternative can start.
func (p *Parser) Unexpected() {
	p.Error(Unexpected(p.CurrentSpan(), p.Current()))
}

// Checkpoint captures the parser's full state for a later Rewind, used by
// bounded speculative parses (arrow-function vs. grouped expression,
// `async` as a contextual keyword vs. the start of an async function).
func (p *Parser) Mark() Checkpoint {
	return Checkpoint{eventsLen: p.events.len(), tsMark: p.ts.Mark(), state: p.state}
}

// Rewind discards every event and every token lexed since cp was taken,
// restoring the parser to exactly that point.
func (p *Parser) Rewind(cp Checkpoint) {
	p.events.truncate(cp.eventsLen)
	p.ts.Restore(cp.tsMark)
	p.state = cp.state
}

// WithState runs f with a temporarily modified state, restoring the prior
// state afterward regardless of how f parses (spec §4.3, "scoped save/
// restore around speculative parses").
func (p *Parser) WithState(mutate func(*state), f func()) {
	saved := p.state
	p.state = saved.with(mutate)
	f()
	p.state = saved
}

// IncreaseDepth bumps the recursion counter and returns a cleanup closure
// the caller must defer. Once MaxDepth is exceeded it reports a diagnostic,
// skips the rest of the pathological nesting in a single Error node (eating
// tokens until enclosing brackets/parens/braces rebalance to zero or input
// ends), and returns nil. A nil cleanup is a signal, not just an omission:
// the caller must stop recursing immediately and hand back an empty marker
// rather than calling back into the grammar, which is the only way to
// actually cut the recursion off before it overflows the stack.
func (p *Parser) IncreaseDepth() func() {
	if p.depth < MaxDepth {
		p.depth++
		return func() { p.depth-- }
	}
	p.depthLimitError()
	return nil
}

// depthLimitError reports "nested too deeply" at the cursor and consumes
// the remaining unbalanced nesting into one Error node, tracking bracket
// balance so the skip swallows the whole pathological tail rather than
// stopping one token in.
func (p *Parser) depthLimitError() {
	p.Error(NewDiagnostic(p.CurrentSpan(), "expression nested too deeply"))
	m := p.Start()
	balance := 0
	for !p.AtEnd() {
		switch p.Current() {
		case LParen, LBrack, LBrace:
			balance++
		case RParen, RBrack, RBrace:
			balance--
			if balance < 0 {
				balance = 0
			}
		}
		p.BumpAny()
		if balance == 0 {
			break
		}
	}
	m.Complete(p, Error)
}

// Finish flushes any trailing trivia (attached to the synthetic EOF token)
// and replays the event log into the final tree.
func (p *Parser) Finish() (*Node, []*Diagnostic) {
	p.Eat(EOF)
	b := NewBuilder(p.eventsSnapshot(), p.ts.Leaves())
	return b.Build()
}

func (p *Parser) eventsSnapshot() []event {
	return p.events.events
}
