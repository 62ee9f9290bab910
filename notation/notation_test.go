package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================
// Lexer Tests
// ============================================================

func TestLexer_BasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"123", []TokenType{TokenBare, TokenEOF}},
		{"-456", []TokenType{TokenBare, TokenEOF}},
		{"true", []TokenType{TokenBare, TokenEOF}},
		{"https://t.me/chat", []TokenType{TokenBare, TokenEOF}},
		{"'hello world'", []TokenType{TokenQuoted, TokenEOF}},
		{`"hello world"`, []TokenType{TokenQuoted, TokenEOF}},
		{"()", []TokenType{TokenLParen, TokenRParen, TokenEOF}},
		{"(1 2)", []TokenType{TokenLParen, TokenBare, TokenBare, TokenRParen, TokenEOF}},
		{"a(b)c", []TokenType{TokenBare, TokenLParen, TokenBare, TokenRParen, TokenBare, TokenEOF}},
		{"", []TokenType{TokenEOF}},
		{"  \n\t ", []TokenType{TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d", len(tt.expected), len(tokens))
			}

			for i, tok := range tokens {
				if tok.Type != tt.expected[i] {
					t.Errorf("Token %d: expected %s, got %s", i, tt.expected[i], tok.Type)
				}
			}
		})
	}
}

func TestLexer_QuoteDoubling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"'it''s'", "it's"},
		{`"it's"`, "it's"},
		{`'say "hi"'`, `say "hi"`},
		{`"say ""hi"""`, `say "hi"`},
		{"''", ""},
		{`""`, ""},
		{"''''", "'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if tokens[0].Type != TokenQuoted {
				t.Fatalf("Expected QUOTED, got %s", tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lexer := NewLexer("'abc")
	_, err := lexer.Tokenize()
	if err == nil {
		t.Fatal("Expected error for unterminated string")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
}

func TestLexer_Positions(t *testing.T) {
	lexer := NewLexer("(\n  abc\n)")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	// (, abc, ), EOF
	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 3 {
		t.Errorf("Expected abc at 2:3, got %s", tokens[1].Pos)
	}
	if tokens[2].Pos.Line != 3 || tokens[2].Pos.Column != 1 {
		t.Errorf("Expected ) at 3:1, got %s", tokens[2].Pos)
	}
}

// ============================================================
// Parser Tests
// ============================================================

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"null", KindNull},
		{"true", KindBool},
		{"false", KindBool},
		{"123", KindInt},
		{"-456", KindInt},
		{"3.14", KindFloat},
		{"-2.5e10", KindFloat},
		{"'hello'", KindString},
		{"bare_string", KindString},
		{"'123'", KindString},
		{"12abc", KindString},
		{"-", KindString},
		{"1.2.3", KindString},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			values, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(values) != 1 {
				t.Fatalf("Expected 1 value, got %d", len(values))
			}
			if values[0].Kind() != tt.expected {
				t.Errorf("Expected kind %s, got %s", tt.expected, values[0].Kind())
			}
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r\n"} {
		values, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if len(values) != 0 {
			t.Errorf("Parse(%q): expected empty sequence, got %d values", input, len(values))
		}
	}
}

func TestParse_Link(t *testing.T) {
	values, err := Parse("(1 2 3)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(values) != 1 {
		t.Fatalf("Expected 1 top-level value, got %d", len(values))
	}

	items, err := values[0].Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(items))
	}

	for i, want := range []int64{1, 2, 3} {
		got, err := items[i].AsInt()
		if err != nil {
			t.Fatalf("AsInt failed: %v", err)
		}
		if got != want {
			t.Errorf("Element %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestParse_Nested(t *testing.T) {
	values, err := Parse("(a (b c) ())")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	items, _ := values[0].Items()
	if len(items) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(items))
	}

	if items[0].Kind() != KindString {
		t.Errorf("Expected string, got %s", items[0].Kind())
	}
	if items[1].Kind() != KindLink || items[1].Len() != 2 {
		t.Errorf("Expected 2-element link, got %s len=%d", items[1].Kind(), items[1].Len())
	}
	if items[2].Kind() != KindLink || items[2].Len() != 0 {
		t.Errorf("Expected empty link, got %s len=%d", items[2].Kind(), items[2].Len())
	}
}

func TestParse_MultipleTopLevel(t *testing.T) {
	values, err := Parse("a 1 (b)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("Expected 3 top-level values, got %d", len(values))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		"(1 2",
		")",
		"(a))",
		"((a)",
		"'abc",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if perr.Pos.Line < 1 {
				t.Errorf("Expected a position, got %s", perr.Pos)
			}
		})
	}
}

func TestParse_UnterminatedLinkPosition(t *testing.T) {
	_, err := Parse("  (1 2")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %v", err)
	}
	// Error carries the opening parenthesis position
	if perr.Pos.Column != 3 {
		t.Errorf("Expected column 3, got %s", perr.Pos)
	}
}

// ============================================================
// Projection Tests
// ============================================================

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []int64
	}{
		{"(123 abc 456)", []int64{123, 456}},
		{"(1 2.5 3)", []int64{1, 3}},
		{"(1 '2' 3)", []int64{1, 3}},
		{"(true null -7)", []int64{-7}},
		{"1 x 2", []int64{1, 2}},
		{"(a (1 2) 3)", []int64{3}},
		{"()", []int64{}},
		{"", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumbers(tt.input)
			if err != nil {
				t.Fatalf("ParseNumbers failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"(123 abc 456)", []string{"abc"}},
		{"(abc 'x y' true null)", []string{"abc", "x y"}},
		{"('123' 456)", []string{"123"}},
		{"(a (b c) d)", []string{"a", "d"}},
		{"()", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrings(tt.input)
			if err != nil {
				t.Fatalf("ParseStrings failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNumbers_Malformed(t *testing.T) {
	_, err := ParseNumbers("(1 2")
	if err == nil {
		t.Fatal("Expected parse error")
	}
}
