package syntax

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// identStartTable and identContinueTable approximate the ECMAScript
// IdentifierStart/IdentifierPart productions (Unicode ID_Start/ID_Continue
// plus the `$` and `_` ASCII extensions), built once from the standard
// Unicode category tables via rangetable.Merge so membership tests are a
// single binary search instead of a chain of unicode.Is* calls.
var (
	identStartTable = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	)
	identContinueTable = rangetable.Merge(
		identStartTable, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Continue,
	)
)

// IsIdentStart reports whether r can begin an identifier.
func IsIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.Is(identStartTable, r)
}

// IsIdentContinue reports whether r can continue an identifier after its
// first character.
func IsIdentContinue(r rune) bool {
	return r == '$' || r == '_' || unicode.Is(identContinueTable, r) ||
		r == 0x200C || r == 0x200D // ZWNJ, ZWJ
}

// IsLineTerminator reports whether r is one of the ECMAScript line
// terminators recognized for automatic semicolon insertion (spec §4.4,
// "Automatic semicolon insertion").
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', 0x2028, 0x2029:
		return true
	}
	return false
}

// IsWhitespace reports whether r is ECMAScript whitespace (excluding line
// terminators, which are tracked separately since ASI cares about them).
func IsWhitespace(r rune) bool {
	if IsLineTerminator(r) {
		return false
	}
	return r == ' ' || r == '\t' || r == '\v' || r == '\f' ||
		unicode.Is(unicode.Zs, r) || r == 0xFEFF
}

// stripDefaultIgnorable drops Unicode default-ignorable code points (format
// characters other than ZWNJ/ZWJ) from an identifier before comparison, so
// two spellings that differ only by an invisible code point compare equal.
var stripDefaultIgnorable = runes.Remove(runes.Predicate(func(r rune) bool {
	return unicode.Is(unicode.Cf, r) && r != 0x200C && r != 0x200D
}))

// NormalizeIdent returns ident with default-ignorable format characters
// stripped, used when comparing binding identifiers for strict-mode
// duplicate-parameter and `eval`/`arguments` checks.
func NormalizeIdent(ident string) string {
	return stripDefaultIgnorable.String(ident)
}
