package syntax

import "testing"

func TestLeafNode(t *testing.T) {
	n := Leaf(Ident, "foo")
	if n.Kind() != Ident {
		t.Errorf("Kind() = %v, want Ident", n.Kind())
	}
	if n.Text() != "foo" {
		t.Errorf("Text() = %q, want %q", n.Text(), "foo")
	}
	if n.Len() != 3 {
		t.Errorf("Len() = %d, want 3", n.Len())
	}
	if !n.IsLeaf() {
		t.Error("IsLeaf() should be true")
	}
	if n.Children() != nil {
		t.Error("Children() should be nil for a leaf")
	}
	if n.Erroneous() {
		t.Error("a plain Ident leaf should not be erroneous")
	}
}

func TestInnerNodeAggregatesLenAndText(t *testing.T) {
	a := Leaf(Ident, "foo")
	b := Leaf(Plus, "+")
	c := Leaf(Ident, "bar")
	n := Inner(BinExpr, []*Node{a, b, c})

	if n.IsLeaf() {
		t.Error("IsLeaf() should be false for an inner node")
	}
	if n.Len() != 7 {
		t.Errorf("Len() = %d, want 7", n.Len())
	}
	if n.Text() != "foo+bar" {
		t.Errorf("Text() = %q, want %q", n.Text(), "foo+bar")
	}
	if got := n.Children(); len(got) != 3 {
		t.Errorf("Children() has %d entries, want 3", len(got))
	}
}

func TestInnerNodeErroneousPropagatesFromChildren(t *testing.T) {
	clean := Inner(BinExpr, []*Node{Leaf(Ident, "a")})
	if clean.Erroneous() {
		t.Error("a node with no error descendants should not be erroneous")
	}

	withErr := Inner(BinExpr, []*Node{
		Leaf(Ident, "a"),
		ErrorNode(NewDiagnostic(Span{0, 1}, "bad"), "?"),
	})
	if !withErr.Erroneous() {
		t.Error("a node containing an error child should be erroneous")
	}
}

func TestErrorNode(t *testing.T) {
	diag := NewDiagnostic(Span{2, 3}, "oops")
	n := ErrorNode(diag, "?")
	if n.Kind() != Error {
		t.Errorf("Kind() = %v, want Error", n.Kind())
	}
	if !n.Erroneous() {
		t.Error("ErrorNode should always be erroneous")
	}
	if n.Text() != "?" {
		t.Errorf("Text() = %q, want %q", n.Text(), "?")
	}
}

func TestErrorsCollectsDiagnosticsInOrder(t *testing.T) {
	d1 := NewDiagnostic(Span{0, 1}, "first")
	d2 := NewDiagnostic(Span{2, 3}, "second")
	root := Inner(Script, []*Node{
		ErrorNode(d1, "a"),
		Leaf(Ident, "ok"),
		Inner(BlockStmt, []*Node{ErrorNode(d2, "b")}),
	})
	errs := root.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() returned %d diagnostics, want 2", len(errs))
	}
	if errs[0] != d1 || errs[1] != d2 {
		t.Error("Errors() should preserve source order")
	}
}

func TestDescendantsVisitsPreOrderIncludingSelf(t *testing.T) {
	leaf1 := Leaf(Ident, "a")
	leaf2 := Leaf(Ident, "b")
	root := Inner(Script, []*Node{leaf1, leaf2})

	var visited []*Node
	root.Descendants(func(n *Node) { visited = append(visited, n) })

	if len(visited) != 3 {
		t.Fatalf("visited %d nodes, want 3 (root + 2 leaves)", len(visited))
	}
	if visited[0] != root || visited[1] != leaf1 || visited[2] != leaf2 {
		t.Error("Descendants should visit root first, then children in order")
	}
}

func TestFindFirst(t *testing.T) {
	target := Leaf(NameRef, "x")
	root := Inner(Script, []*Node{
		Leaf(Semicolon, ";"),
		Inner(ExprStmt, []*Node{target}),
	})
	if got := root.FindFirst(NameRef); got != target {
		t.Error("FindFirst should locate the nested NameRef")
	}
	if got := root.FindFirst(Regex); got != nil {
		t.Error("FindFirst should return nil for an absent kind")
	}
	if got := root.FindFirst(Script); got != root {
		t.Error("FindFirst should match the root itself")
	}
}

func TestChildrenOfKindAndFirstChildOfKind(t *testing.T) {
	a := Leaf(Comma, ",")
	b := Leaf(Comma, ",")
	c := Leaf(Ident, "x")
	root := Inner(ArgList, []*Node{a, c, b})

	if got := root.ChildrenOfKind(Comma); len(got) != 2 {
		t.Errorf("ChildrenOfKind(Comma) returned %d nodes, want 2", len(got))
	}
	if got := root.FirstChildOfKind(Comma); got != a {
		t.Error("FirstChildOfKind should return the first direct match in order")
	}
	if got := root.FirstChildOfKind(Regex); got != nil {
		t.Error("FirstChildOfKind should return nil for an absent kind")
	}
}

func TestStringRendersSExpression(t *testing.T) {
	root := Inner(BinExpr, []*Node{Leaf(Ident, "a"), Leaf(Plus, "+"), Leaf(Ident, "b")})
	got := root.String()
	if got == "" {
		t.Fatal("String() should not be empty")
	}
	// Every leaf's text should be recoverable from the rendered form.
	for _, want := range []string{"a", "+", "b"} {
		if !containsSubstring(got, want) {
			t.Errorf("String() = %q, should contain %q", got, want)
		}
	}
}

func containsSubstring(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
