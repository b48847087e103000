package syntax

// KindSet is a fixed-size bitset over Kind values below 128, giving O(1)
// membership and union regardless of how many kinds it holds. Modeled on
// rust-analyzer's TokenSet.
type KindSet struct {
	lo, hi uint64
}

const maxSetBit = 128

// NewKindSet returns an empty set.
func NewKindSet() KindSet {
	return KindSet{}
}

// KindSetOf returns a set containing exactly the given kinds.
func KindSetOf(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns a set with kind added. Panics if kind >= 128, matching the
// bitset's fixed capacity.
func (s KindSet) Add(kind Kind) KindSet {
	if int(kind) >= maxSetBit {
		panic("syntax: KindSet kind out of range")
	}
	if kind < 64 {
		s.lo |= 1 << uint(kind)
	} else {
		s.hi |= 1 << uint(kind-64)
	}
	return s
}

// Remove returns a set with kind removed.
func (s KindSet) Remove(kind Kind) KindSet {
	if int(kind) >= maxSetBit {
		panic("syntax: KindSet kind out of range")
	}
	if kind < 64 {
		s.lo &^= 1 << uint(kind)
	} else {
		s.hi &^= 1 << uint(kind-64)
	}
	return s
}

// Union returns the union of s and other.
func (s KindSet) Union(other KindSet) KindSet {
	return KindSet{lo: s.lo | other.lo, hi: s.hi | other.hi}
}

// Contains reports whether kind is a member of s.
func (s KindSet) Contains(kind Kind) bool {
	if int(kind) >= maxSetBit {
		return false
	}
	if kind < 64 {
		return s.lo&(1<<uint(kind)) != 0
	}
	return s.hi&(1<<uint(kind-64)) != 0
}

// IsEmpty reports whether s has no members.
func (s KindSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Package-level recovery sets used by the grammar's err_recover calls
// (spec §4.3, "Forward-progress / recovery discipline").

// StmtStartSet is the set of kinds that can begin a statement, used as a
// recovery boundary: err_recover stops consuming tokens once it reaches one.
var StmtStartSet = KindSetOf(
	LBrace, Var, Let, Const, If, Do, While, For, Continue, Break, Return,
	With, Switch, Throw, Try, Debugger, Function, Class, Import, Export,
	Semicolon, Ident,
)

// ExprStartSet is the set of kinds that can begin an expression.
var ExprStartSet = KindSetOf(
	Ident, Number, Str, Regex, Backtick, True, False, Null, This, Super,
	LParen, LBrack, LBrace, Function, Class, New, Typeof, Void, Delete,
	Bang, Tilde, Plus, Minus, Plus2, Minus2, Yield, Await, Async, Import,
)

// UnaryOpSet is the set of prefix unary operator kinds.
var UnaryOpSet = KindSetOf(
	Plus, Minus, Bang, Tilde, Typeof, Void, Delete, Plus2, Minus2,
)

// AssignOpSet is the set of assignment operator kinds (simple `=` plus
// compound assignment operators).
var AssignOpSet = KindSetOf(
	Eq, PlusEq, MinusEq, StarEq, SlashEq, PercentEq, Star2Eq, ShlEq, ShrEq,
	UShrEq, AmpEq, PipeEq, CaretEq, Amp2Eq, Pipe2Eq, Question2Eq,
)

// BinaryOpSet is the set of infix binary/logical operator kinds (excluding
// assignment, which the grammar parses separately per its right-associative,
// non-chaining shape).
var BinaryOpSet = KindSetOf(
	Pipe2, Amp2, Pipe, Caret, Amp, Eq2, Neq, Eq3, Neq2, LAngle, RAngle,
	LtEq, GtEq, Instanceof, In, Shl, Shr, UShr, Plus, Minus, Star, Slash,
	Percent, Star2, Question2,
)

// PatternLeafSet is the set of kinds that can begin a pattern leaf (a
// binding identifier or a destructuring sub-pattern).
var PatternLeafSet = KindSetOf(Ident, LBrack, LBrace)

// PatternStartSet is the set of kinds that can begin a full pattern,
// including the rest-element marker.
var PatternStartSet = PatternLeafSet.Add(Dot3)

// ParamStartSet is the set of kinds that can begin a parameter.
var ParamStartSet = PatternStartSet

// ClassMemberStartSet is the set of kinds that can begin a class member.
var ClassMemberStartSet = KindSetOf(
	Ident, Static, Async, Get, Set, Star, LBrack, Private, Semicolon,
)

// ModuleItemStartSet is the set of kinds that can begin a top-level module
// item (import/export declarations), layered on top of StmtStartSet.
var ModuleItemStartSet = StmtStartSet.Add(Import).Add(Export)

// TsTypeStartSet is the set of kinds that can begin a type in the optional
// gradual-type grammar.
var TsTypeStartSet = KindSetOf(
	Ident, LParen, LBrack, LBrace, Typeof, New, LAngle, Str, Number, True,
	False, Void, This,
)
