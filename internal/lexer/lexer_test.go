package lexer

import (
	"testing"

	"github.com/cwbudde/langcore/internal/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	s := New(input, "<test>")
	var toks []token.Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			t.Fatalf("unexpected scan error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind[%d] = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

// S1: x := 1 + 2.
func TestScenarioAssignmentAndArithmetic(t *testing.T) {
	toks := collect(t, "x := 1 + 2.")
	assertKinds(t, toks,
		token.IDENTIFIER, token.ASSIGN, token.NUMBER, token.ADD, token.NUMBER, token.DOT, token.EOF)
	if toks[0].Lexeme != "x" || toks[2].Lexeme != "1" || toks[4].Lexeme != "2" {
		t.Fatalf("unexpected lexemes: %+v", toks)
	}
}

// S2: 16#FF# is valid; 2#2# fails on the second digit.
func TestScenarioRadixNumbers(t *testing.T) {
	toks := collect(t, "16#FF#")
	assertKinds(t, toks, token.NUMBER, token.EOF)
	if toks[0].Lexeme != "16#FF" {
		t.Fatalf("lexeme = %q, want 16#FF", toks[0].Lexeme)
	}

	s := New("2#2#", "<test>")
	if _, err := s.NextToken(); err == nil {
		t.Fatal("expected an UnexpectedLexError scanning 2#2#")
	} else if _, ok := err.(*UnexpectedLexError); !ok {
		t.Fatalf("error type = %T, want *UnexpectedLexError", err)
	}
}

// S3: "a\nb" scans to the three code points a, LF, b.
func TestScenarioStringEscapes(t *testing.T) {
	toks := collect(t, `"a\nb"`)
	assertKinds(t, toks, token.STRING, token.EOF)
	if toks[0].Lexeme != "a\nb" {
		t.Fatalf("lexeme = %q, want %q", toks[0].Lexeme, "a\nb")
	}
}

func TestStringEscapeCorrectness(t *testing.T) {
	cases := map[string]string{
		`"\r"`:  "\r",
		`"\n"`:  "\n",
		`"\t"`:  "\t",
		`"\\"`:  "\\",
		`"\""`:  "\"",
		`"\x"`:  "\\x",
		`"abc"`: "abc",
	}
	for src, want := range cases {
		toks := collect(t, src)
		if toks[0].Lexeme != want {
			t.Errorf("%s: lexeme = %q, want %q", src, toks[0].Lexeme, want)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	s := New(`"abc`, "<test>")
	if _, err := s.NextToken(); err == nil {
		t.Fatal("expected error on unterminated string")
	}
}

// S4: nested block comments.
func TestScenarioNestedComments(t *testing.T) {
	s := New("/* outer /* inner */ still-outer */ x", "<test>")
	tok, err := s.Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.COMMENT {
		t.Fatalf("kind = %s, want COMMENT", tok.Kind)
	}
	want := " outer /* inner */ still-outer "
	if tok.Lexeme != want {
		t.Fatalf("comment body = %q, want %q", tok.Lexeme, want)
	}

	next, err := s.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Kind != token.IDENTIFIER || next.Lexeme != "x" {
		t.Fatalf("next = %+v, want IDENTIFIER(x)", next)
	}
}

func TestUnbalancedNestedComment(t *testing.T) {
	s := New("/* outer /* inner */ still unterminated", "<test>")
	if _, err := s.Scan(); err == nil {
		t.Fatal("expected error on unbalanced nested comment")
	}
}

func TestCommentsFilteredByNextToken(t *testing.T) {
	toks := collect(t, "x // trailing comment\n:= 1.")
	assertKinds(t, toks, token.IDENTIFIER, token.ASSIGN, token.NUMBER, token.DOT, token.EOF)
}

// Property 5: keyword vs identifier.
func TestKeywordVsIdentifier(t *testing.T) {
	keywords := map[string]token.Kind{
		"else": token.ELSE, "if": token.IF, "is": token.IS, "var": token.VAR,
		"while": token.WHILE, "true": token.TRUE, "false": token.FALSE,
		"func": token.FUNC, "return": token.RETURN,
	}
	for word, kind := range keywords {
		toks := collect(t, word)
		if toks[0].Kind != kind {
			t.Errorf("%s: kind = %s, want %s", word, toks[0].Kind, kind)
		}
	}

	for _, ident := range []string{"elsewhere", "iffy", "x", "_foo", "whileLoop"} {
		toks := collect(t, ident)
		if toks[0].Kind != token.IDENTIFIER {
			t.Errorf("%s: kind = %s, want IDENTIFIER", ident, toks[0].Kind)
		}
	}
}

func TestBacktickEscapedKeyword(t *testing.T) {
	toks := collect(t, "`if")
	assertKinds(t, toks, token.IDENTIFIER, token.EOF)
	if toks[0].Lexeme != "`if" {
		t.Fatalf("lexeme = %q, want `if", toks[0].Lexeme)
	}
}

func TestBareBacktickIsError(t *testing.T) {
	s := New("` ", "<test>")
	if _, err := s.NextToken(); err == nil {
		t.Fatal("expected error on bare backtick")
	}
}

// Property 1 & 10: totality and the full fixture kind sequence.
func TestScannerFixture(t *testing.T) {
	src := `:= + +: - -: * *: / /= % %:
= ~= < <= > >= && || ~ is
42 2#101 8#17 16#FF #FF
"str" true false
{ } ( ) : , . ..
if else while var func return
ident`

	toks := collect(t, src)
	want := []token.Kind{
		token.ASSIGN, token.ADD, token.ADD_ASSIGN, token.SUBTRACT, token.SUBTRACT_ASSIGN,
		token.MULTIPLY, token.MULTIPLY_ASSIGN, token.DIVIDE, token.DIVIDE_ASSIGN,
		token.MODULO, token.MODULO_ASSIGN,
		token.EQUAL, token.NOT_EQUAL, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.AND, token.OR, token.NOT, token.IS,
		token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER,
		token.STRING, token.TRUE, token.FALSE,
		token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.COLON, token.COMMA, token.DOT, token.CONCAT,
		token.IF, token.ELSE, token.WHILE, token.VAR, token.FUNC, token.RETURN,
		token.IDENTIFIER,
		token.EOF,
	}
	assertKinds(t, toks, want...)

	// Property 1: totality — a further call never changes LastKind.
	s := New("", "<test>")
	tok, err := s.NextToken()
	if err != nil || tok.Kind != token.EOF {
		t.Fatalf("empty input should scan straight to EOF, got %+v err=%v", tok, err)
	}
	before := s.LastKind()
	if _, err := s.NextToken(); err != nil {
		t.Fatalf("unexpected error scanning past EOF: %v", err)
	}
	if s.LastKind() != before {
		t.Fatalf("LastKind changed after EOF: %s -> %s", before, s.LastKind())
	}
}

func TestUnicodeIdentifiersAndWhitespace(t *testing.T) {
	toks := collect(t, "Δx :=\t1.")
	assertKinds(t, toks, token.IDENTIFIER, token.ASSIGN, token.NUMBER, token.DOT, token.EOF)
	if toks[0].Lexeme != "Δx" {
		t.Fatalf("lexeme = %q, want Δx", toks[0].Lexeme)
	}
}

func TestDoubledAmpersandRequired(t *testing.T) {
	s := New("&x", "<test>")
	if _, err := s.NextToken(); err == nil {
		t.Fatal("expected error for a lone '&'")
	}
}

func TestPositionTracking(t *testing.T) {
	s := New("ab\ncd", "file.lang")
	tok, _ := s.NextToken()
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("pos = %+v, want line 1 col 1", tok.Pos)
	}
	tok, _ = s.NextToken()
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("pos = %+v, want line 2 col 1", tok.Pos)
	}
}
