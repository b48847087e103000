package syntax

// Builder replays an EventBuffer once, after parsing finishes, to produce
// the final Node tree (spec §4.5, "Tree builder"). It is a separate pass
// from the parser so that the parser itself never touches tree shape
// directly — every structural decision, including retroactive reparenting
// via forward-parent links, was already recorded in the log.
type Builder struct {
	events []event
	tokens []*Node // the raw token/error leaves produced by the lexer, in order
}

// NewBuilder pairs an event log with the flat sequence of token leaves the
// token source produced while the parser consumed it.
func NewBuilder(events []event, tokens []*Node) *Builder {
	return &Builder{events: events, tokens: tokens}
}

// Build replays the log and returns the root node plus every diagnostic
// collected along the way, in source order.
//
// Forward-parent links are resolved here, not by the parser: when a Start
// event at i carries a forward-parent offset, its real ancestor is the
// Start event the chain of offsets leads to, not whatever was lexically
// open on the stack when i was recorded. Each Start event in the chain is
// consumed (and its frame pushed) the first time the chain is walked, so
// the main loop skips it on arrival at its own physical position in the
// log — it has already contributed its node.
func (b *Builder) Build() (*Node, []*Diagnostic) {
	n := len(b.events)
	consumed := make([]bool, n)

	var (
		stack  []*innerNode
		diags  []*Diagnostic
		tokIdx int
		root   *Node
	)

	pushFrame := func(kind Kind) {
		stack = append(stack, &innerNode{k: kind})
	}
	popFrame := func() *Node {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := top.wrap()
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.kids = append(parent.kids, node)
			parent.byteLen += node.Len()
			if node.Erroneous() {
				parent.erroneous_ = true
			}
		}
		return node
	}
	appendLeaf := func(leaf *Node) {
		if len(stack) == 0 {
			return
		}
		parent := stack[len(stack)-1]
		parent.kids = append(parent.kids, leaf)
		parent.byteLen += leaf.Len()
		if leaf.Erroneous() {
			parent.erroneous_ = true
		}
	}

	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}
		e := b.events[i]
		switch e.shape {
		case shapeTombstone:
			consumed[i] = true

		case shapeStart:
			var chain []Kind
			idx := i
			for {
				consumed[idx] = true
				chain = append(chain, b.events[idx].kind)
				fp := b.events[idx].forwardParent
				if fp == 0 {
					break
				}
				idx += fp
			}
			for j := len(chain) - 1; j >= 0; j-- {
				pushFrame(chain[j])
			}

		case shapeFinish:
			consumed[i] = true
			node := popFrame()
			if len(stack) == 0 {
				root = node
			}

		case shapeToken:
			consumed[i] = true
			for k := 0; k < e.leafCount; k++ {
				appendLeaf(b.tokens[tokIdx])
				tokIdx++
			}

		case shapeError:
			consumed[i] = true
			diags = append(diags, e.diag)
		}
	}

	if root == nil {
		root = Inner(Error, nil)
	}
	return root, diags
}
