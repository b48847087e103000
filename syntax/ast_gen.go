// Typed accessors for the node kinds listed in schema.yaml. The layout
// follows what internal/astgen renders from the schema, but this file is
// maintained by hand: its Expr/Stmt/Pattern-typed accessors and type names
// differ from the renderer's output.

package syntax

// isSignificantLeaf reports whether n is a token leaf that isn't trivia —
// the kind of child a field accessor looks for when it wants "the
// operator" or "the identifier token" rather than a sub-node.
func isSignificantLeaf(n *Node) bool {
	return n.IsLeaf() && !n.Kind().IsTrivia()
}

// firstSignificantLeaf returns the first non-trivia leaf child of n, or
// nil if it has none.
func firstSignificantLeaf(n *Node) *Node {
	for _, c := range n.Children() {
		if isSignificantLeaf(c) {
			return c
		}
	}
	return nil
}

// nonLeafChildren returns n's children that are themselves nodes (as
// opposed to token leaves), in source order — the set a "childKind: null"
// schema field draws from.
func nonLeafChildren(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if !c.IsLeaf() {
			out = append(out, c)
		}
	}
	return out
}

// ScriptNode is the typed projection of a Script root node.
type ScriptNode struct{ node *Node }

func (n *ScriptNode) ToUntyped() *Node { return n.node }

// Statements returns every top-level statement.
func (n *ScriptNode) Statements() []Stmt {
	var out []Stmt
	for _, c := range nonLeafChildren(n.node) {
		if s := StmtFromNode(c); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// ModuleNode is the typed projection of a Module root node.
type ModuleNode struct{ node *Node }

func (n *ModuleNode) ToUntyped() *Node { return n.node }

// Items returns every top-level statement or module item.
func (n *ModuleNode) Items() []Stmt {
	var out []Stmt
	for _, c := range nonLeafChildren(n.node) {
		if s := StmtFromNode(c); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// BlockStmtNode is the typed projection of a BlockStmt node.
type BlockStmtNode struct{ node *Node }

func (n *BlockStmtNode) ToUntyped() *Node { return n.node }
func (n *BlockStmtNode) isStmt()          {}

// Statements returns every statement in the block.
func (n *BlockStmtNode) Statements() []Stmt {
	var out []Stmt
	for _, c := range nonLeafChildren(n.node) {
		if s := StmtFromNode(c); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// IfStmtNode is the typed projection of an IfStmt node.
type IfStmtNode struct{ node *Node }

func (n *IfStmtNode) ToUntyped() *Node { return n.node }
func (n *IfStmtNode) isStmt()          {}

func (n *IfStmtNode) Test() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *IfStmtNode) Consequent() Stmt {
	kids := nonLeafChildren(n.node)
	if len(kids) < 2 {
		return nil
	}
	return StmtFromNode(kids[1])
}

func (n *IfStmtNode) Alternate() Stmt {
	kids := nonLeafChildren(n.node)
	if len(kids) < 3 {
		return nil
	}
	return StmtFromNode(kids[2])
}

// WhileStmtNode is the typed projection of a WhileStmt node.
type WhileStmtNode struct{ node *Node }

func (n *WhileStmtNode) ToUntyped() *Node { return n.node }
func (n *WhileStmtNode) isStmt()          {}

func (n *WhileStmtNode) Test() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *WhileStmtNode) Body() Stmt {
	kids := nonLeafChildren(n.node)
	if len(kids) < 2 {
		return nil
	}
	return StmtFromNode(kids[1])
}

// ForStmtNode is the typed projection of a ForStmt node.
type ForStmtNode struct{ node *Node }

func (n *ForStmtNode) ToUntyped() *Node { return n.node }
func (n *ForStmtNode) isStmt()          {}

// Init returns the loop's init clause: a ForStmtInit-wrapped expression,
// or — when the init clause is a declaration, e.g. `for (let i = 0; ...)`
// — the VarDecl node directly (parseForStmt skips the ForStmtInit wrapper
// in that case since VarDecl's own kind is already unambiguous). nil if
// the init clause is empty, as in `for (;;)`.
func (n *ForStmtNode) Init() *Node {
	if init := n.node.FirstChildOfKind(ForStmtInit); init != nil {
		return init
	}
	return n.node.FirstChildOfKind(VarDecl)
}
func (n *ForStmtNode) TestClause() *Node { return n.node.FirstChildOfKind(ForStmtTest) }
func (n *ForStmtNode) UpdateClause() *Node { return n.node.FirstChildOfKind(ForStmtUpdate) }

func (n *ForStmtNode) Body() Stmt {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return StmtFromNode(kids[len(kids)-1])
}

// ReturnStmtNode is the typed projection of a ReturnStmt node.
type ReturnStmtNode struct{ node *Node }

func (n *ReturnStmtNode) ToUntyped() *Node { return n.node }
func (n *ReturnStmtNode) isStmt()          {}

func (n *ReturnStmtNode) Argument() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

// VarDeclNode is the typed projection of a VarDecl node.
type VarDeclNode struct{ node *Node }

func (n *VarDeclNode) ToUntyped() *Node { return n.node }
func (n *VarDeclNode) isStmt()          {}

func (n *VarDeclNode) Declarators() []*DeclaratorNode {
	var out []*DeclaratorNode
	for _, c := range n.node.ChildrenOfKind(Declarator) {
		out = append(out, &DeclaratorNode{node: c})
	}
	return out
}

// DeclaratorNode is the typed projection of a Declarator node.
type DeclaratorNode struct{ node *Node }

func (n *DeclaratorNode) ToUntyped() *Node { return n.node }

func (n *DeclaratorNode) Pattern() Pattern {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return PatternFromNode(kids[0])
}

func (n *DeclaratorNode) Init() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) < 2 {
		return nil
	}
	return ExprFromNode(kids[len(kids)-1])
}

// FnDeclNode is the typed projection of an FnDecl node.
type FnDeclNode struct{ node *Node }

func (n *FnDeclNode) ToUntyped() *Node { return n.node }
func (n *FnDeclNode) isStmt()          {}

func (n *FnDeclNode) Name() *Node   { return n.node.FirstChildOfKind(Name) }
func (n *FnDeclNode) Params() *ParameterListNode {
	if p := n.node.FirstChildOfKind(ParameterList); p != nil {
		return &ParameterListNode{node: p}
	}
	return nil
}
func (n *FnDeclNode) Body() *BlockStmtNode {
	if b := n.node.FirstChildOfKind(BlockStmt); b != nil {
		return &BlockStmtNode{node: b}
	}
	return nil
}

// ClassDeclNode is the typed projection of a ClassDecl node.
type ClassDeclNode struct{ node *Node }

func (n *ClassDeclNode) ToUntyped() *Node { return n.node }
func (n *ClassDeclNode) isStmt()          {}

func (n *ClassDeclNode) Name() *Node { return n.node.FirstChildOfKind(Name) }
func (n *ClassDeclNode) Body() *Node { return n.node.FirstChildOfKind(ClassBody) }

// BinExprNode is the typed projection of a BinExpr node.
type BinExprNode struct{ node *Node }

func (n *BinExprNode) ToUntyped() *Node { return n.node }
func (n *BinExprNode) isExpr()          {}

func (n *BinExprNode) Left() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *BinExprNode) Right() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) < 2 {
		return nil
	}
	return ExprFromNode(kids[1])
}

// Operator returns the binary operator kind, and ok=false if the operator
// token is missing (a malformed/error-recovered tree).
func (n *BinExprNode) Operator() (Kind, bool) {
	if tok := firstSignificantLeaf(n.node); tok != nil {
		return tok.Kind(), true
	}
	return Tombstone, false
}

// UnaryExprNode is the typed projection of a UnaryExpr node (both prefix
// and postfix forms share this kind; Prefix reports which).
type UnaryExprNode struct{ node *Node }

func (n *UnaryExprNode) ToUntyped() *Node { return n.node }
func (n *UnaryExprNode) isExpr()          {}

func (n *UnaryExprNode) Operand() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *UnaryExprNode) Operator() (Kind, bool) {
	if tok := firstSignificantLeaf(n.node); tok != nil {
		return tok.Kind(), true
	}
	return Tombstone, false
}

// Prefix reports whether the operator token precedes the operand (true
// for every unary operator and prefix `++`/`--`; false for postfix
// `++`/`--`, which always appear after their single child).
func (n *UnaryExprNode) Prefix() bool {
	kids := n.node.Children()
	for _, c := range kids {
		if isSignificantLeaf(c) {
			return true
		}
		if !c.IsLeaf() {
			return false
		}
	}
	return true
}

// CallExprNode is the typed projection of a CallExpr node.
type CallExprNode struct{ node *Node }

func (n *CallExprNode) ToUntyped() *Node { return n.node }
func (n *CallExprNode) isExpr()          {}

func (n *CallExprNode) Callee() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *CallExprNode) Arguments() []Expr {
	args := n.node.FirstChildOfKind(ArgList)
	if args == nil {
		return nil
	}
	var out []Expr
	for _, c := range nonLeafChildren(args) {
		if e := ExprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// DotExprNode is the typed projection of a DotExpr node.
type DotExprNode struct{ node *Node }

func (n *DotExprNode) ToUntyped() *Node { return n.node }
func (n *DotExprNode) isExpr()          {}

func (n *DotExprNode) Object() Expr {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return ExprFromNode(kids[0])
}

func (n *DotExprNode) Property() *Node { return n.node.FirstChildOfKind(Name) }

// NameRefNode is the typed projection of a NameRef node.
type NameRefNode struct{ node *Node }

func (n *NameRefNode) ToUntyped() *Node { return n.node }
func (n *NameRefNode) isExpr()          {}

// Name returns the identifier's normalized text.
func (n *NameRefNode) Name() string {
	if tok := firstSignificantLeaf(n.node); tok != nil {
		return NormalizeIdent(tok.Text())
	}
	return ""
}

// LiteralNode is the typed projection of a Literal node.
type LiteralNode struct{ node *Node }

func (n *LiteralNode) ToUntyped() *Node { return n.node }
func (n *LiteralNode) isExpr()          {}

// LiteralKind returns the underlying token kind (Number, Str, Regex,
// True, False, or Null).
func (n *LiteralNode) LiteralKind() Kind {
	if tok := firstSignificantLeaf(n.node); tok != nil {
		return tok.Kind()
	}
	return Tombstone
}

// Text returns the literal's exact source text.
func (n *LiteralNode) Text() string {
	if tok := firstSignificantLeaf(n.node); tok != nil {
		return tok.Text()
	}
	return ""
}

// ArrowExprNode is the typed projection of an ArrowExpr node.
type ArrowExprNode struct{ node *Node }

func (n *ArrowExprNode) ToUntyped() *Node { return n.node }
func (n *ArrowExprNode) isExpr()          {}

func (n *ArrowExprNode) Params() *ParameterListNode {
	if p := n.node.FirstChildOfKind(ParameterList); p != nil {
		return &ParameterListNode{node: p}
	}
	return nil
}

// Body returns the arrow's body, either a BlockStmt (wrapped as Stmt) or
// an expression (wrapped as Expr) — callers check which with a type
// switch on the result of StmtFromNode/ExprFromNode, or just call both
// and use whichever returns non-nil.
func (n *ArrowExprNode) Body() *Node {
	kids := nonLeafChildren(n.node)
	if len(kids) == 0 {
		return nil
	}
	return kids[len(kids)-1]
}

// ArrayExprNode is the typed projection of an ArrayExpr node.
type ArrayExprNode struct{ node *Node }

func (n *ArrayExprNode) ToUntyped() *Node { return n.node }
func (n *ArrayExprNode) isExpr()          {}

func (n *ArrayExprNode) Elements() []Expr {
	var out []Expr
	for _, c := range nonLeafChildren(n.node) {
		if e := ExprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// ObjectExprNode is the typed projection of an ObjectExpr node.
type ObjectExprNode struct{ node *Node }

func (n *ObjectExprNode) ToUntyped() *Node { return n.node }
func (n *ObjectExprNode) isExpr()          {}

// Members returns the untyped member nodes (LiteralProp, InitializedProp,
// SpreadProp, Method, Getter, Setter); this projection doesn't give each
// its own wrapper since the grammar already discriminates them by Kind.
func (n *ObjectExprNode) Members() []*Node {
	return nonLeafChildren(n.node)
}

// ParameterListNode is the typed projection of a ParameterList node.
type ParameterListNode struct{ node *Node }

func (n *ParameterListNode) ToUntyped() *Node { return n.node }

func (n *ParameterListNode) Params() []Pattern {
	var out []Pattern
	for _, c := range nonLeafChildren(n.node) {
		if pat := PatternFromNode(c); pat != nil {
			out = append(out, pat)
		}
	}
	return out
}

// SinglePatternNode is the typed projection of a SinglePattern node: a
// plain binding identifier.
type SinglePatternNode struct{ node *Node }

func (n *SinglePatternNode) ToUntyped() *Node { return n.node }
func (n *SinglePatternNode) isPattern()       {}

// NameNode returns the underlying Name node.
func (n *SinglePatternNode) NameNode() *Node { return n.node.FirstChildOfKind(Name) }

// Bindings returns the single identifier this pattern binds.
func (n *SinglePatternNode) Bindings() []*NameRefNode {
	if nm := n.NameNode(); nm != nil {
		return []*NameRefNode{{node: nm}}
	}
	return nil
}
