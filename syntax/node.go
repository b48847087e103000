package syntax

// Node is a single element of the concrete syntax tree: either a leaf
// (a token with its exact source text) or an inner node (a grammar
// production with ordered children). A three-flavor SyntaxNode design,
// with the incremental-reparse span-numbering machinery
// (Numberize/ReplaceChildren/Upper) left out — this parser never reparses
// incrementally.
//
// A Node built by Builder.Build is immutable and round-trips losslessly:
// concatenating the text of every leaf in document order reproduces the
// original source exactly, including trivia and error spans.
type Node struct {
	data nodeData
}

// nodeData is implemented by leafNode, innerNode, and errorNode. It is
// unexported: callers only ever see the uniform *Node handle, a single
// exported type over closed variants instead of an exported interface.
type nodeData interface {
	kind() Kind
	len() int
	text() string
	children() []*Node
	erroneous() bool
}

type leafNode struct {
	k     Kind
	text_ string
}

func (n *leafNode) kind() Kind        { return n.k }
func (n *leafNode) len() int          { return len(n.text_) }
func (n *leafNode) text() string      { return n.text_ }
func (n *leafNode) children() []*Node { return nil }
func (n *leafNode) erroneous() bool   { return n.k == ErrorToken }

type innerNode struct {
	k          Kind
	byteLen    int
	kids       []*Node
	erroneous_ bool
}

func (n *innerNode) kind() Kind        { return n.k }
func (n *innerNode) len() int          { return n.byteLen }
func (n *innerNode) children() []*Node { return n.kids }
func (n *innerNode) erroneous() bool   { return n.erroneous_ }
func (n *innerNode) text() string {
	var total int
	for _, c := range n.kids {
		total += c.Len()
	}
	b := make([]byte, 0, total)
	for _, c := range n.kids {
		b = append(b, c.Text()...)
	}
	return string(b)
}

type errorNode struct {
	diag *Diagnostic
	text_ string
}

func (n *errorNode) kind() Kind        { return Error }
func (n *errorNode) len() int          { return len(n.text_) }
func (n *errorNode) text() string      { return n.text_ }
func (n *errorNode) children() []*Node { return nil }
func (n *errorNode) erroneous() bool   { return true }

// Leaf builds a token leaf node of the given kind, spanning exactly text.
func Leaf(kind Kind, text string) *Node {
	return &Node{data: &leafNode{k: kind, text_: text}}
}

// Inner builds a production node of the given kind from an ordered list of
// children. Its width and erroneous flag are derived from its children.
func Inner(kind Kind, children []*Node) *Node {
	n := &innerNode{k: kind, kids: children}
	for _, c := range children {
		n.byteLen += c.Len()
		if c.Erroneous() {
			n.erroneous_ = true
		}
	}
	return n.wrap()
}

func (n *innerNode) wrap() *Node { return &Node{data: n} }

// ErrorNode builds a leaf-shaped node carrying a diagnostic instead of a
// well-formed token, used by the lexer for malformed input and by the
// builder for tokens skipped during error recovery.
func ErrorNode(diag *Diagnostic, text string) *Node {
	return &Node{data: &errorNode{diag: diag, text_: text}}
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.data.kind() }

// Len returns the node's width in bytes.
func (n *Node) Len() int { return n.data.len() }

// IsEmpty reports whether the node spans zero bytes.
func (n *Node) IsEmpty() bool { return n.Len() == 0 }

// Text returns the node's exact source text, reconstructed from its
// children if it is an inner node.
func (n *Node) Text() string { return n.data.text() }

// Children returns the node's direct children in source order, or nil for
// a leaf.
func (n *Node) Children() []*Node { return n.data.children() }

// IsLeaf reports whether the node is a token (no children).
func (n *Node) IsLeaf() bool { return n.data.children() == nil }

// Erroneous reports whether this node or any descendant is an error node.
func (n *Node) Erroneous() bool { return n.data.erroneous() }

// Errors returns every Diagnostic attached to this node or a descendant,
// in source order.
func (n *Node) Errors() []*Diagnostic {
	if e, ok := n.data.(*errorNode); ok {
		return []*Diagnostic{e.diag}
	}
	var out []*Diagnostic
	for _, c := range n.Children() {
		out = append(out, c.Errors()...)
	}
	return out
}

// Descendants performs a pre-order walk of n and its descendants, calling
// visit for each node including n itself.
func (n *Node) Descendants(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children() {
		c.Descendants(visit)
	}
}

// FindFirst returns the first descendant (pre-order, including n) with the
// given kind, or nil if none matches. Used by typed-AST field accessors.
func (n *Node) FindFirst(kind Kind) *Node {
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.Children() {
		if found := c.FindFirst(kind); found != nil {
			return found
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child with the given kind, in order.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child with the given kind, or
// nil if there is none.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// String renders a debug s-expression form of the tree, used by tests that
// assert on tree shape.
func (n *Node) String() string {
	var b []byte
	b = n.appendString(b)
	return string(b)
}

func (n *Node) appendString(b []byte) []byte {
	if n.IsLeaf() {
		b = append(b, n.Kind().Name()...)
		b = append(b, '(')
		b = append(b, n.Text()...)
		b = append(b, ')')
		return b
	}
	b = append(b, n.Kind().Name()...)
	b = append(b, '[')
	for i, c := range n.Children() {
		if i > 0 {
			b = append(b, ' ')
		}
		b = c.appendString(b)
	}
	b = append(b, ']')
	return b
}
