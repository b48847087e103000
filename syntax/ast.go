package syntax

// This file implements the typed-AST projection's hand-written core: the
// AstNode interface every typed wrapper satisfies and the sum-type
// dispatchers (Expr, Stmt, Pattern) that cast an untyped Node to whichever
// concrete wrapper matches its Kind. The per-node field accessors
// themselves (generated from schema.yaml) live in ast_gen.go.
//
// The `isAstNode`/marker-method sum-type pattern, and casting that succeeds
// iff the untyped node's Kind matches, follow the usual rowan/rust-analyzer
// style of layering a typed view over an untyped tree. The schema this
// projects from — node name, field name, field cardinality
// (required/optional/many), token-vs-node fields — lives in schema.yaml
// since this grammar has no macro-generation pipeline to derive it from
// source directly.

// AstNode is implemented by every typed wrapper: it always has an
// underlying untyped Node.
type AstNode interface {
	ToUntyped() *Node
}

// Expr is the sum type of every expression-shaped typed wrapper.
type Expr interface {
	AstNode
	isExpr()
}

// ExprFromNode casts an untyped node to whichever concrete Expr wrapper
// matches its Kind, or nil if node is not an expression node.
func ExprFromNode(node *Node) Expr {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case BinExpr:
		return &BinExprNode{node: node}
	case UnaryExpr:
		return &UnaryExprNode{node: node}
	case CallExpr:
		return &CallExprNode{node: node}
	case DotExpr:
		return &DotExprNode{node: node}
	case NameRef:
		return &NameRefNode{node: node}
	case Literal:
		return &LiteralNode{node: node}
	case ArrowExpr:
		return &ArrowExprNode{node: node}
	case ArrayExpr:
		return &ArrayExprNode{node: node}
	case ObjectExpr:
		return &ObjectExprNode{node: node}
	case GroupingExpr:
		return &genericExpr{node: node}
	case ThisExpr, AssignExpr, CondExpr, SequenceExpr, NewExpr, BracketExpr,
		FnExpr, ClassExpr, Template, YieldExpr, AwaitExpr, SuperCall,
		ImportCall, NewTarget, ImportMeta, TsAsExpression, TsSatisfiesExpression:
		return &genericExpr{node: node}
	}
	return nil
}

// genericExpr covers expression kinds whose shape this projection doesn't
// expose dedicated field accessors for yet; callers that only need Kind
// and the untyped node (e.g. a generic tree walk) still get a typed Expr.
type genericExpr struct{ node *Node }

func (e *genericExpr) ToUntyped() *Node { return e.node }
func (e *genericExpr) isExpr()          {}

// Stmt is the sum type of every statement/declaration-shaped typed
// wrapper.
type Stmt interface {
	AstNode
	isStmt()
}

// StmtFromNode casts an untyped node to whichever concrete Stmt wrapper
// matches its Kind, or nil if node is not a statement node.
func StmtFromNode(node *Node) Stmt {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case BlockStmt:
		return &BlockStmtNode{node: node}
	case IfStmt:
		return &IfStmtNode{node: node}
	case WhileStmt:
		return &WhileStmtNode{node: node}
	case ForStmt:
		return &ForStmtNode{node: node}
	case ReturnStmt:
		return &ReturnStmtNode{node: node}
	case VarDecl:
		return &VarDeclNode{node: node}
	case FnDecl:
		return &FnDeclNode{node: node}
	case ClassDecl:
		return &ClassDeclNode{node: node}
	case DoWhileStmt, ForInStmt, ForOfStmt, BreakStmt, ContinueStmt,
		ThrowStmt, TryStmt, SwitchStmt, WithStmt, LabelledStmt, EmptyStmt,
		DebuggerStmt, ExprStmt, ImportDecl, ExportDecl, ExportDefaultDecl,
		ExportNamed, ExportWildcard, TsInterfaceDecl, TsTypeAliasDecl:
		return &genericStmt{node: node}
	}
	return nil
}

type genericStmt struct{ node *Node }

func (s *genericStmt) ToUntyped() *Node { return s.node }
func (s *genericStmt) isStmt()          {}

// Pattern is the sum type of every destructuring-pattern typed wrapper.
type Pattern interface {
	AstNode
	isPattern()
	// Bindings returns every identifier this pattern binds, in source
	// order.
	Bindings() []*NameRefNode
}

// PatternFromNode casts an untyped node to whichever concrete Pattern
// wrapper matches its Kind, or nil if node is not a pattern node.
func PatternFromNode(node *Node) Pattern {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case SinglePattern:
		return &SinglePatternNode{node: node}
	case ArrayPattern:
		return &arrayPatternNode{node: node}
	case ObjectPattern:
		return &objectPatternNode{node: node}
	case AssignPattern:
		return &assignPatternNode{node: node}
	case RestPattern:
		return &restPatternNode{node: node}
	}
	return nil
}

type arrayPatternNode struct{ node *Node }

func (p *arrayPatternNode) ToUntyped() *Node { return p.node }
func (p *arrayPatternNode) isPattern()       {}
func (p *arrayPatternNode) Bindings() []*NameRefNode {
	var out []*NameRefNode
	for _, child := range p.node.Children() {
		if sub := PatternFromNode(child); sub != nil {
			out = append(out, sub.Bindings()...)
		}
	}
	return out
}

type objectPatternNode struct{ node *Node }

func (p *objectPatternNode) ToUntyped() *Node { return p.node }
func (p *objectPatternNode) isPattern()       {}
func (p *objectPatternNode) Bindings() []*NameRefNode {
	var out []*NameRefNode
	for _, prop := range p.node.Children() {
		if prop.Kind() == RestPattern {
			sub := PatternFromNode(prop)
			// A trailing RestPattern sits directly under ObjectPattern,
			// unlike every other property which is wrapped in
			// KeyValuePattern/AssignPattern by parseObjectPatternProp.
			out = append(out, sub.Bindings()...)
			continue
		}
		out = append(out, objectPropBindings(prop)...)
	}
	return out
}

// objectPropBindings extracts the binding(s) introduced by one object
// pattern property. `key: pattern` binds whatever `pattern` binds, not the
// key; the shorthand forms `{ a }` and `{ a = default }` have no nested
// pattern node at all — the property's own name doubles as the binding —
// so the value pattern is preferred and the name is the fallback.
func objectPropBindings(prop *Node) []*NameRefNode {
	var patternChild, nameChild *Node
	for _, c := range prop.Children() {
		if PatternFromNode(c) != nil {
			patternChild = c
		} else if c.Kind() == Name {
			nameChild = c
		}
	}
	if patternChild != nil {
		return PatternFromNode(patternChild).Bindings()
	}
	if nameChild != nil {
		return []*NameRefNode{{node: nameChild}}
	}
	return nil
}

type assignPatternNode struct{ node *Node }

func (p *assignPatternNode) ToUntyped() *Node { return p.node }
func (p *assignPatternNode) isPattern()       {}
func (p *assignPatternNode) Bindings() []*NameRefNode {
	for _, child := range p.node.Children() {
		if sub := PatternFromNode(child); sub != nil {
			return sub.Bindings()
		}
	}
	return nil
}

type restPatternNode struct{ node *Node }

func (p *restPatternNode) ToUntyped() *Node { return p.node }
func (p *restPatternNode) isPattern()       {}
func (p *restPatternNode) Bindings() []*NameRefNode {
	for _, child := range p.node.Children() {
		if sub := PatternFromNode(child); sub != nil {
			return sub.Bindings()
		}
	}
	return nil
}

// ScriptFromNode casts the root node to a typed ScriptNode, or nil if root
// is not a Script node.
func ScriptFromNode(node *Node) *ScriptNode {
	if node == nil || node.Kind() != Script {
		return nil
	}
	return &ScriptNode{node: node}
}

// ModuleFromNode casts the root node to a typed ModuleNode, or nil if root
// is not a Module node.
func ModuleFromNode(node *Node) *ModuleNode {
	if node == nil || node.Kind() != Module {
		return nil
	}
	return &ModuleNode{node: node}
}
