// Package syntax provides the parser, concrete syntax tree, and typed-AST
// projection for an ECMAScript-family scripting language with an optional
// gradual-type extension.
//
// The parser is an event-based recursive-descent parser with speculative
// parsing and token-set-driven error recovery (see Parser and EventBuffer).
// Tree construction is a separate pass that replays the event log into a
// lossless, homogeneous concrete syntax tree (see Builder and Node).
// A typed-AST layer (see ast_gen.go) projects typed views over that tree.
package syntax

// Kind identifies the type of a token or tree node. It is the single
// closed enumeration shared by the lexer, parser, tree builder, and
// typed-AST layer.
type Kind uint16

const (
	// Tombstone marks a Start event whose final kind has not yet been
	// decided; tree construction skips it. Never appears in a built tree.
	Tombstone Kind = iota
	// EOF is the end-of-token-stream sentinel.
	EOF
	// ErrorToken is the lexer's sentinel for malformed input the lexer
	// could not classify (see spec's "Input boundary").
	ErrorToken
	// Error is the tree-builder's node kind for a skipped/unexpected span.
	Error

	// --- Trivia ---

	Whitespace
	LineComment
	BlockComment
	Shebang

	// --- Literals & identifiers ---

	Ident
	Number
	Str
	Regex
	TemplateChunk  // a literal run of characters inside a template literal
	TemplateDollar // the `${` that opens a template substitution

	// --- Punctuation ---

	Semicolon
	Comma
	LParen
	RParen
	LBrace
	RBrace
	LBrack
	RBrack
	LAngle
	RAngle
	Tilde
	Question
	Question2     // ??
	QuestionDot   // ?.
	Amp           // &
	Pipe          // |
	Plus          // +
	Plus2         // ++
	Star          // *
	Star2         // **
	Slash         // /
	Caret         // ^
	Percent       // %
	Dot           // .
	Dot3          // ...
	Colon         // :
	Eq            // =
	Eq2           // ==
	Eq3           // ===
	FatArrow      // =>
	Bang          // !
	Neq           // !=
	Neq2          // !==
	Minus         // -
	Minus2        // --
	LtEq          // <=
	GtEq          // >=
	PlusEq        // +=
	MinusEq       // -=
	PipeEq        // |=
	AmpEq         // &=
	CaretEq       // ^=
	SlashEq       // /=
	StarEq        // *=
	PercentEq     // %=
	Amp2          // &&
	Pipe2         // ||
	Shl           // <<
	Shr           // >>
	UShr          // >>>
	ShlEq         // <<=
	ShrEq         // >>=
	UShrEq        // >>>=
	Amp2Eq        // &&=
	Pipe2Eq       // ||=
	Star2Eq       // **=
	Question2Eq   // ??=
	Backtick      // `

	// --- Reserved keywords ---

	Await
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	False
	Finally
	For
	Function
	If
	In
	Instanceof
	Interface
	Import
	Implements
	New
	Null
	Package
	Private
	Protected
	Public
	Return
	Super
	Switch
	This
	Throw
	Try
	True
	Typeof
	Var
	Void
	While
	With
	Yield

	// --- Contextual keywords (valid identifiers outside their context) ---

	Let
	Static
	Async
	As
	From
	Of
	Get
	Set
	Satisfies

	// --- Node kinds: modules/programs ---

	Script
	Module

	// --- Node kinds: statements ---

	BlockStmt
	VarDecl
	Declarator
	EmptyStmt
	ExprStmt
	IfStmt
	DoWhileStmt
	WhileStmt
	ForStmt
	ForInStmt
	ForOfStmt
	ForStmtInit
	ForStmtTest
	ForStmtUpdate
	ContinueStmt
	BreakStmt
	ReturnStmt
	WithStmt
	SwitchStmt
	CaseClause
	DefaultClause
	LabelledStmt
	ThrowStmt
	TryStmt
	CatchClause
	Finalizer
	DebuggerStmt
	FnDecl

	// --- Node kinds: names & expressions ---

	Name
	NameRef
	ParameterList
	ThisExpr
	ArrayExpr
	ObjectExpr
	LiteralProp
	Getter
	Setter
	GroupingExpr
	NewExpr
	FnExpr
	BracketExpr
	DotExpr
	CallExpr
	UnaryExpr
	BinExpr
	CondExpr
	AssignExpr
	SequenceExpr
	ArgList
	Literal
	Template
	TemplateElement
	Condition
	SpreadElement
	SuperCall
	ImportCall
	NewTarget
	ImportMeta
	YieldExpr
	AwaitExpr
	ArrowExpr

	// --- Node kinds: object members ---

	IdentProp
	SpreadProp
	InitializedProp

	// --- Node kinds: patterns ---

	ObjectPattern
	ArrayPattern
	AssignPattern
	RestPattern
	KeyValuePattern
	SinglePattern
	ComputedPropertyName

	// --- Node kinds: classes ---

	ClassDecl
	ClassExpr
	ClassBody
	Method
	StaticMethod
	Field

	// --- Node kinds: modules ---

	ImportDecl
	ExportDecl
	ExportNamed
	ExportDefaultDecl
	ExportDefaultExpr
	ExportWildcard
	WildcardImport
	NamedImports
	Specifier

	// --- Node kinds: optional gradual-type grammar ---

	TsAny
	TsUnknown
	TsNumber
	TsObject
	TsBoolean
	TsBigint
	TsString
	TsSymbol
	TsVoid
	TsUndefined
	TsNull
	TsNever
	TsThis
	TsLiteral
	TsPredicate
	TsTuple
	TsTupleElement
	TsParen
	TsTypeRef
	TsQualifiedPath
	TsTypeName
	TsTemplate
	TsMappedType
	TsMappedTypeParam
	TsMappedTypeReadonly
	TsTypeQuery
	TsTypeQueryExpr
	TsImport
	TsTypeArgs
	TsArray
	TsIndexedArray
	TsTypeOperator
	TsIntersection
	TsUnion
	TsTypeParams
	TsTypeParam
	TsFnType
	TsConstructorType
	TsExtends
	TsConditionalType
	TsTypeAnnotation
	TsTypeAssertion
	TsAsExpression
	TsSatisfiesExpression
	TsInterfaceDecl
	TsInterfaceBody
	TsPropertySignature
	TsMethodSignature
	TsTypeAliasDecl

	// kindCount must stay last; it bounds the catalog for closure checks.
	kindCount
)

// keywordNames lists reserved keywords; contextual keywords are handled
// separately since they are valid identifiers outside their triggering
// context (spec §4.4, "Context-sensitive identifiers").
var keywordNames = map[Kind]string{
	Break: "break", Case: "case", Catch: "catch",
	Class: "class", Const: "const", Continue: "continue", Debugger: "debugger",
	Default: "default", Delete: "delete", Do: "do", Else: "else", Enum: "enum",
	Export: "export", Extends: "extends", False: "false", Finally: "finally",
	For: "for", Function: "function", If: "if", In: "in",
	Instanceof: "instanceof", Interface: "interface", Import: "import",
	Implements: "implements", New: "new", Null: "null", Package: "package",
	Private: "private", Protected: "protected", Public: "public",
	Return: "return", Super: "super", Switch: "switch", This: "this",
	Throw: "throw", Try: "try", True: "true", Typeof: "typeof", Var: "var",
	Void: "void", While: "while", With: "with",
}

// contextualKeywordNames lists keywords that are identifiers almost
// everywhere (spec §4.4). Await and Yield live here rather than in
// keywordNames: they're ordinary binding identifiers except inside an
// async function/module top level and a generator respectively, so the
// grammar must be able to parse `let await = 1` as a NAME and flag the
// illegal use only where context demands it, instead of rejecting the
// token outright.
var contextualKeywordNames = map[Kind]string{
	Let: "let", Static: "static", Async: "async", As: "as", From: "from",
	Of: "of", Get: "get", Set: "set", Satisfies: "satisfies",
	Await: "await", Yield: "yield",
}

// KeywordKind returns the reserved or contextual keyword Kind for src, or
// (Tombstone, false) if src is not a keyword.
func KeywordKind(src string) (Kind, bool) {
	for k, name := range keywordNames {
		if name == src {
			return k, true
		}
	}
	for k, name := range contextualKeywordNames {
		if name == src {
			return k, true
		}
	}
	return Tombstone, false
}

// IsKeyword reports whether k is a reserved keyword (never a valid binding
// identifier, regardless of context).
func (k Kind) IsKeyword() bool {
	_, ok := keywordNames[k]
	return ok
}

// IsContextualKeyword reports whether k is a contextual keyword — a valid
// identifier outside the specific grammar position that gives it meaning.
func (k Kind) IsContextualKeyword() bool {
	_, ok := contextualKeywordNames[k]
	return ok
}

// IsTrivia reports whether k is whitespace, a comment, or a shebang line:
// preserved in the tree but invisible to grammar productions (spec §4.1).
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment, Shebang:
		return true
	}
	return false
}

// IsGrouping reports whether k is a bracket, brace, or paren.
func (k Kind) IsGrouping() bool {
	switch k {
	case LParen, RParen, LBrace, RBrace, LBrack, RBrack:
		return true
	}
	return false
}

// IsLiteral reports whether k is a literal token kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, Str, Regex, True, False, Null:
		return true
	}
	return false
}

// IsError reports whether k is the tree-builder's error-node kind.
func (k Kind) IsError() bool {
	return k == Error
}

// Name returns a human-readable name for k, used in diagnostics
// ("expected X, found Y").
func (k Kind) Name() string {
	if name, ok := keywordNames[k]; ok {
		return "keyword `" + name + "`"
	}
	if name, ok := contextualKeywordNames[k]; ok {
		return "`" + name + "`"
	}
	switch k {
	case Tombstone:
		return "tombstone"
	case EOF:
		return "end of input"
	case ErrorToken:
		return "invalid token"
	case Error:
		return "syntax error"
	case Whitespace:
		return "whitespace"
	case LineComment:
		return "line comment"
	case BlockComment:
		return "block comment"
	case Shebang:
		return "shebang"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case Str:
		return "string"
	case Regex:
		return "regular expression"
	case TemplateChunk:
		return "template text"
	case TemplateDollar:
		return "`${`"
	case Semicolon:
		return "`;`"
	case Comma:
		return "`,`"
	case LParen:
		return "`(`"
	case RParen:
		return "`)`"
	case LBrace:
		return "`{`"
	case RBrace:
		return "`}`"
	case LBrack:
		return "`[`"
	case RBrack:
		return "`]`"
	case Colon:
		return "`:`"
	case Eq:
		return "`=`"
	case FatArrow:
		return "`=>`"
	case Dot:
		return "`.`"
	case Dot3:
		return "`...`"
	case Question:
		return "`?`"
	default:
		return "token"
	}
}
