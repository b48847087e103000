package syntax

import "testing"

func TestBuilderBuildsFlatTree(t *testing.T) {
	b := NewEventBuffer()
	m := b.start()
	b.token(Ident, 1)
	b.token(Plus, 1)
	b.token(Ident, 1)
	b.complete(m, BinExpr)

	tokens := []*Node{Leaf(Ident, "a"), Leaf(Plus, "+"), Leaf(Ident, "b")}
	root, diags := NewBuilder(b.events, tokens).Build()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if root.Kind() != BinExpr {
		t.Errorf("Kind() = %v, want BinExpr", root.Kind())
	}
	if root.Text() != "a+b" {
		t.Errorf("Text() = %q, want %q", root.Text(), "a+b")
	}
	if len(root.Children()) != 3 {
		t.Errorf("Children() has %d entries, want 3", len(root.Children()))
	}
}

func TestBuilderResolvesForwardParent(t *testing.T) {
	b := NewEventBuffer()
	m := b.start()
	b.token(Ident, 1)
	nameRef := b.complete(m, NameRef)

	outer := b.precede(nameRef)
	b.token(RParen, 1)
	b.complete(outer, GroupingExpr)

	tokens := []*Node{Leaf(Ident, "x"), Leaf(RParen, ")")}
	root, diags := NewBuilder(b.events, tokens).Build()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if root.Kind() != GroupingExpr {
		t.Fatalf("Kind() = %v, want GroupingExpr", root.Kind())
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("Children() has %d entries, want 2", len(children))
	}
	if children[0].Kind() != NameRef {
		t.Errorf("first child kind = %v, want NameRef (the reparented node)", children[0].Kind())
	}
	if children[1].Kind() != RParen {
		t.Errorf("second child kind = %v, want RParen", children[1].Kind())
	}
	if root.Text() != "x)" {
		t.Errorf("Text() = %q, want %q", root.Text(), "x)")
	}
}

func TestBuilderCollectsDiagnosticsInOrder(t *testing.T) {
	b := NewEventBuffer()
	m := b.start()
	d1 := NewDiagnostic(Span{0, 1}, "first")
	d2 := NewDiagnostic(Span{1, 2}, "second")
	b.errorEvent(d1)
	b.token(Ident, 1)
	b.errorEvent(d2)
	b.complete(m, Script)

	root, diags := NewBuilder(b.events, []*Node{Leaf(Ident, "x")}).Build()
	if len(diags) != 2 || diags[0] != d1 || diags[1] != d2 {
		t.Errorf("diags = %v, want [%v %v] in order", diags, d1, d2)
	}
	// Erroneous-ness propagates from erroneous *nodes*, not bare diagnostics
	// recorded alongside an otherwise well-formed token.
	if root.Erroneous() {
		t.Error("root should not be erroneous: no child is an error node")
	}
}

func TestBuilderAbandonedMarkerContributesNoNode(t *testing.T) {
	b := NewEventBuffer()
	m := b.start()
	speculative := b.start()
	b.token(Ident, 1)
	b.abandon(speculative)
	b.token(Ident, 1)
	b.complete(m, Script)

	root, _ := NewBuilder(b.events, []*Node{Leaf(Ident, "a"), Leaf(Ident, "b")}).Build()
	if len(root.Children()) != 2 {
		t.Errorf("Children() has %d entries, want 2 (abandoned marker should not wrap anything)", len(root.Children()))
	}
	for _, c := range root.Children() {
		if c.Kind() != Ident {
			t.Errorf("child kind = %v, want Ident (no leftover wrapper node)", c.Kind())
		}
	}
}

func TestBuilderEmptyLogFallsBackToErrorNode(t *testing.T) {
	root, diags := NewBuilder(nil, nil).Build()
	if root.Kind() != Error {
		t.Errorf("Kind() = %v, want Error for an empty event log", root.Kind())
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
}
