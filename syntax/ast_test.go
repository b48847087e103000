package syntax

import "testing"

func firstStmt(t *testing.T, source string) Stmt {
	t.Helper()
	root, diags := ParseScript(source)
	if len(diags) != 0 {
		t.Fatalf("ParseScript(%q) produced diagnostics: %v", source, diags)
	}
	script := ScriptFromNode(root)
	if script == nil {
		t.Fatalf("ScriptFromNode returned nil for %q", source)
	}
	stmts := script.Statements()
	if len(stmts) == 0 {
		t.Fatalf("no statements parsed from %q", source)
	}
	return stmts[0]
}

func TestScriptFromNodeRejectsWrongKind(t *testing.T) {
	root, _ := ParseModule("")
	if ScriptFromNode(root) != nil {
		t.Error("ScriptFromNode should return nil for a Module root")
	}
	if ModuleFromNode(root) == nil {
		t.Error("ModuleFromNode should accept a Module root")
	}
}

func TestVarDeclProjection(t *testing.T) {
	stmt := firstStmt(t, "let x = 1, y = 2;")
	decl, ok := stmt.(*VarDeclNode)
	if !ok {
		t.Fatalf("expected *VarDeclNode, got %T", stmt)
	}
	decls := decl.Declarators()
	if len(decls) != 2 {
		t.Fatalf("Declarators() = %d, want 2", len(decls))
	}
	for i, want := range []string{"x", "y"} {
		pat := decls[i].Pattern()
		single, ok := pat.(*SinglePatternNode)
		if !ok {
			t.Fatalf("declarator %d pattern is %T, want *SinglePatternNode", i, pat)
		}
		if got := single.Bindings(); len(got) != 1 || got[0].Name() != want {
			t.Errorf("declarator %d binds %v, want [%s]", i, got, want)
		}
	}
}

func TestBinExprProjection(t *testing.T) {
	stmt := firstStmt(t, "x = 1 + 2;")
	exprStmt := stmt.ToUntyped()
	bin := exprStmt.FindFirst(BinExpr)
	if bin == nil {
		t.Fatal("expected a BinExpr in the tree")
	}
	node, ok := ExprFromNode(bin).(*BinExprNode)
	if !ok {
		t.Fatalf("ExprFromNode(BinExpr) = %T, want *BinExprNode", ExprFromNode(bin))
	}
	op, ok := node.Operator()
	if !ok || op != Plus {
		t.Errorf("Operator() = (%v, %v), want (Plus, true)", op, ok)
	}
	if node.Left() == nil || node.Right() == nil {
		t.Error("Left()/Right() should not be nil")
	}
}

func TestCallExprProjection(t *testing.T) {
	stmt := firstStmt(t, "f(1, 2, 3);")
	call := stmt.ToUntyped().FindFirst(CallExpr)
	if call == nil {
		t.Fatal("expected a CallExpr in the tree")
	}
	node := ExprFromNode(call).(*CallExprNode)
	if node.Callee() == nil {
		t.Error("Callee() should not be nil")
	}
	if got := len(node.Arguments()); got != 3 {
		t.Errorf("Arguments() = %d, want 3", got)
	}
}

func TestArrowExprProjection(t *testing.T) {
	stmt := firstStmt(t, "let f = (a, b) => a + b;")
	decl := stmt.(*VarDeclNode)
	init := decl.Declarators()[0].Init()
	arrow, ok := init.(*ArrowExprNode)
	if !ok {
		t.Fatalf("Init() = %T, want *ArrowExprNode", init)
	}
	if params := arrow.Params(); params == nil || len(params.Params()) != 2 {
		t.Errorf("arrow should have 2 params, got %v", arrow.Params())
	}
	if arrow.Body() == nil {
		t.Error("Body() should not be nil")
	}
}

func TestArrayAndObjectPatternBindings(t *testing.T) {
	stmt := firstStmt(t, "let { a, b: [c, d] } = obj;")
	decl := stmt.(*VarDeclNode)
	pat := decl.Declarators()[0].Pattern()
	if pat == nil {
		t.Fatal("Pattern() should not be nil")
	}
	names := pat.Bindings()
	if len(names) != 3 {
		t.Fatalf("Bindings() = %d, want 3 (a, c, d)", len(names))
	}
	got := map[string]bool{}
	for _, n := range names {
		got[n.Name()] = true
	}
	for _, want := range []string{"a", "c", "d"} {
		if !got[want] {
			t.Errorf("Bindings() missing %q, got %v", want, names)
		}
	}
}

func TestIfStmtProjection(t *testing.T) {
	stmt := firstStmt(t, "if (x) { y(); } else { z(); }")
	ifStmt, ok := stmt.(*IfStmtNode)
	if !ok {
		t.Fatalf("expected *IfStmtNode, got %T", stmt)
	}
	if ifStmt.Test() == nil {
		t.Error("Test() should not be nil")
	}
	if ifStmt.Consequent() == nil {
		t.Error("Consequent() should not be nil")
	}
	if ifStmt.Alternate() == nil {
		t.Error("Alternate() should not be nil for an if/else")
	}
}

func TestIfStmtWithoutElseHasNilAlternate(t *testing.T) {
	stmt := firstStmt(t, "if (x) { y(); }")
	ifStmt := stmt.(*IfStmtNode)
	if ifStmt.Alternate() != nil {
		t.Error("Alternate() should be nil when there is no else clause")
	}
}

func TestFnDeclProjection(t *testing.T) {
	stmt := firstStmt(t, "function add(a, b) { return a + b; }")
	fn, ok := stmt.(*FnDeclNode)
	if !ok {
		t.Fatalf("expected *FnDeclNode, got %T", stmt)
	}
	if fn.Name() == nil {
		t.Error("Name() should not be nil")
	}
	if fn.Params() == nil || len(fn.Params().Params()) != 2 {
		t.Error("Params() should report 2 parameters")
	}
	if fn.Body() == nil {
		t.Error("Body() should not be nil")
	}
}

func TestForStmtProjectionWithVarDeclInit(t *testing.T) {
	stmt := firstStmt(t, "for (let i = 0; i < 10; i++) { sum += i; }")
	forStmt, ok := stmt.(*ForStmtNode)
	if !ok {
		t.Fatalf("expected *ForStmtNode, got %T", stmt)
	}
	init := forStmt.Init()
	if init == nil || init.Kind() != VarDecl {
		t.Errorf("Init() = %v, want a VarDecl node", init)
	}
	if forStmt.TestClause() == nil {
		t.Error("TestClause() should not be nil")
	}
	if forStmt.UpdateClause() == nil {
		t.Error("UpdateClause() should not be nil")
	}
	if forStmt.Body() == nil {
		t.Error("Body() should not be nil")
	}
}

func TestForStmtProjectionWithEmptyClauses(t *testing.T) {
	stmt := firstStmt(t, "for (;;) { break; }")
	forStmt := stmt.(*ForStmtNode)
	if forStmt.Init() != nil {
		t.Error("Init() should be nil for an empty init clause")
	}
	if forStmt.TestClause() != nil {
		t.Error("TestClause() should be nil for an empty test clause")
	}
	if forStmt.UpdateClause() != nil {
		t.Error("UpdateClause() should be nil for an empty update clause")
	}
}

func TestArrayExprElements(t *testing.T) {
	stmt := firstStmt(t, "let a = [1, x, 3];")
	decl := stmt.(*VarDeclNode)
	init := decl.Declarators()[0].Init()
	arr, ok := init.(*ArrayExprNode)
	if !ok {
		t.Fatalf("Init() = %T, want *ArrayExprNode", init)
	}
	elems := arr.Elements()
	if len(elems) != 3 {
		t.Fatalf("Elements() = %d, want 3", len(elems))
	}
	if _, ok := elems[1].(*NameRefNode); !ok {
		t.Errorf("element 1 = %T, want *NameRefNode", elems[1])
	}
}

func TestObjectExprMembers(t *testing.T) {
	stmt := firstStmt(t, "let o = { a: 1, b, ...rest };")
	decl := stmt.(*VarDeclNode)
	init := decl.Declarators()[0].Init()
	obj, ok := init.(*ObjectExprNode)
	if !ok {
		t.Fatalf("Init() = %T, want *ObjectExprNode", init)
	}
	members := obj.Members()
	if len(members) != 3 {
		t.Fatalf("Members() = %d, want 3", len(members))
	}
	wantKinds := []Kind{InitializedProp, LiteralProp, SpreadProp}
	for i, want := range wantKinds {
		if members[i].Kind() != want {
			t.Errorf("member %d kind = %v, want %v", i, members[i].Kind(), want)
		}
	}
}

func TestDotExprProjection(t *testing.T) {
	stmt := firstStmt(t, "x = a.b;")
	dot := stmt.ToUntyped().FindFirst(DotExpr)
	if dot == nil {
		t.Fatal("expected a DotExpr in the tree")
	}
	node, ok := ExprFromNode(dot).(*DotExprNode)
	if !ok {
		t.Fatalf("ExprFromNode(DotExpr) = %T, want *DotExprNode", ExprFromNode(dot))
	}
	if node.Object() == nil {
		t.Error("Object() should not be nil")
	}
	if prop := node.Property(); prop == nil || prop.Text() != "b" {
		t.Errorf("Property() = %v, want a Name node with text %q", prop, "b")
	}
}

func TestUnaryExprPrefixForm(t *testing.T) {
	stmt := firstStmt(t, "x = !y;")
	un := stmt.ToUntyped().FindFirst(UnaryExpr)
	if un == nil {
		t.Fatal("expected a UnaryExpr in the tree")
	}
	node := ExprFromNode(un).(*UnaryExprNode)
	if !node.Prefix() {
		t.Error("Prefix() should be true for `!y`")
	}
	op, ok := node.Operator()
	if !ok || op != Bang {
		t.Errorf("Operator() = (%v, %v), want (Bang, true)", op, ok)
	}
	if node.Operand() == nil {
		t.Error("Operand() should not be nil")
	}
}

func TestUnaryExprPostfixForm(t *testing.T) {
	stmt := firstStmt(t, "x = y++;")
	un := stmt.ToUntyped().FindFirst(UnaryExpr)
	if un == nil {
		t.Fatal("expected a UnaryExpr in the tree")
	}
	node := ExprFromNode(un).(*UnaryExprNode)
	if node.Prefix() {
		t.Error("Prefix() should be false for postfix `y++`")
	}
	op, ok := node.Operator()
	if !ok || op != Plus2 {
		t.Errorf("Operator() = (%v, %v), want (Plus2, true)", op, ok)
	}
}

func TestLiteralNodeKindAndText(t *testing.T) {
	stmt := firstStmt(t, "x = 42;")
	lit := stmt.ToUntyped().FindFirst(Literal)
	if lit == nil {
		t.Fatal("expected a Literal in the tree")
	}
	node := ExprFromNode(lit).(*LiteralNode)
	if node.LiteralKind() != Number {
		t.Errorf("LiteralKind() = %v, want Number", node.LiteralKind())
	}
	if node.Text() != "42" {
		t.Errorf("Text() = %q, want %q", node.Text(), "42")
	}
}

func TestParameterListNodeParams(t *testing.T) {
	stmt := firstStmt(t, "function f(a, b, c) {}")
	fn := stmt.(*FnDeclNode)
	params := fn.Params()
	if params == nil {
		t.Fatal("Params() should not be nil")
	}
	got := params.Params()
	if len(got) != 3 {
		t.Fatalf("Params() = %d, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		single, ok := got[i].(*SinglePatternNode)
		if !ok {
			t.Fatalf("param %d = %T, want *SinglePatternNode", i, got[i])
		}
		if names := single.Bindings(); len(names) != 1 || names[0].Name() != want {
			t.Errorf("param %d binds %v, want [%s]", i, names, want)
		}
	}
}

func TestArrowBodyIsExpressionWhenNotBlock(t *testing.T) {
	stmt := firstStmt(t, "let f = x => x + 1;")
	decl := stmt.(*VarDeclNode)
	arrow := decl.Declarators()[0].Init().(*ArrowExprNode)
	body := arrow.Body()
	if body == nil {
		t.Fatal("Body() should not be nil")
	}
	if body.Kind() == BlockStmt {
		t.Error("Body() should be the bare expression, not a BlockStmt, for a concise arrow body")
	}
	if ExprFromNode(body) == nil {
		t.Error("expression-bodied arrow's Body() should project as an Expr")
	}
}

func TestArrowBodyIsBlockStmt(t *testing.T) {
	stmt := firstStmt(t, "let f = x => { return x; };")
	decl := stmt.(*VarDeclNode)
	arrow := decl.Declarators()[0].Init().(*ArrowExprNode)
	body := arrow.Body()
	if body == nil || body.Kind() != BlockStmt {
		t.Fatalf("Body() kind = %v, want BlockStmt", body)
	}
}

func TestExprFromNodeAndStmtFromNodeNil(t *testing.T) {
	if ExprFromNode(nil) != nil {
		t.Error("ExprFromNode(nil) should return nil")
	}
	if StmtFromNode(nil) != nil {
		t.Error("StmtFromNode(nil) should return nil")
	}
	if PatternFromNode(nil) != nil {
		t.Error("PatternFromNode(nil) should return nil")
	}
}
