package syntax

import "testing"

func TestKeywordKindRoundTrips(t *testing.T) {
	tests := []struct {
		src  string
		want Kind
	}{
		{"function", Function}, {"return", Return}, {"class", Class},
		{"let", Let}, {"async", Async}, {"of", Of}, {"satisfies", Satisfies},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, ok := KeywordKind(tt.src)
			if !ok {
				t.Fatalf("KeywordKind(%q) not found", tt.src)
			}
			if got != tt.want {
				t.Errorf("KeywordKind(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestKeywordKindRejectsNonKeywords(t *testing.T) {
	if _, ok := KeywordKind("notAKeyword"); ok {
		t.Error("KeywordKind should reject a plain identifier")
	}
}

func TestIsKeywordVsIsContextualKeyword(t *testing.T) {
	if !Function.IsKeyword() {
		t.Error("Function should be a reserved keyword")
	}
	if Function.IsContextualKeyword() {
		t.Error("Function should not be a contextual keyword")
	}
	if !Let.IsContextualKeyword() {
		t.Error("Let should be a contextual keyword")
	}
	if Let.IsKeyword() {
		t.Error("Let should not be a reserved keyword")
	}
	if Ident.IsKeyword() || Ident.IsContextualKeyword() {
		t.Error("a plain identifier token is neither kind of keyword")
	}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []Kind{Whitespace, LineComment, BlockComment, Shebang} {
		if !k.IsTrivia() {
			t.Errorf("%v should be trivia", k)
		}
	}
	if Ident.IsTrivia() {
		t.Error("Ident should not be trivia")
	}
}

func TestIsGrouping(t *testing.T) {
	for _, k := range []Kind{LParen, RParen, LBrace, RBrace, LBrack, RBrack} {
		if !k.IsGrouping() {
			t.Errorf("%v should be a grouping token", k)
		}
	}
	if Semicolon.IsGrouping() {
		t.Error("Semicolon should not be a grouping token")
	}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []Kind{Number, Str, Regex, True, False, Null} {
		if !k.IsLiteral() {
			t.Errorf("%v should be a literal kind", k)
		}
	}
	if Ident.IsLiteral() {
		t.Error("Ident should not be a literal kind")
	}
}

func TestIsError(t *testing.T) {
	if !Error.IsError() {
		t.Error("Error should report IsError")
	}
	if Ident.IsError() {
		t.Error("Ident should not report IsError")
	}
}

func TestNameFormatsKeywordsAndPunctuation(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Return, "keyword `return`"},
		{Let, "`let`"},
		{EOF, "end of input"},
		{Semicolon, "`;`"},
		{FatArrow, "`=>`"},
		{Ident, "identifier"},
	}
	for _, tt := range tests {
		if got := tt.k.Name(); got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
