package step

import "testing"

func TestScanner(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"#123", []TokenKind{TokenIdent, TokenEOF}},
		{"ADVANCED_FACE", []TokenKind{TokenKeyword, TokenEOF}},
		{"ISO-10303-21;", []TokenKind{TokenKeyword, TokenSemicolon, TokenEOF}},
		{"END-ISO-10303-21;", []TokenKind{TokenKeyword, TokenSemicolon, TokenEOF}},
		{"''", []TokenKind{TokenString, TokenEOF}},
		{"'hello world'", []TokenKind{TokenString, TokenEOF}},
		{"'it''s'", []TokenKind{TokenString, TokenEOF}},
		{".F.", []TokenKind{TokenEnum, TokenEOF}},
		{".STEEL.", []TokenKind{TokenEnum, TokenEOF}},
		{"42", []TokenKind{TokenInteger, TokenEOF}},
		{"-7", []TokenKind{TokenInteger, TokenEOF}},
		{"3.14", []TokenKind{TokenReal, TokenEOF}},
		{"0.", []TokenKind{TokenReal, TokenEOF}},
		{"1.E-2", []TokenKind{TokenReal, TokenEOF}},
		{"-1.5E+10", []TokenKind{TokenReal, TokenEOF}},
		{`"0A1B"`, []TokenKind{TokenHex, TokenEOF}},
		{"$", []TokenKind{TokenDollar, TokenEOF}},
		{"*", []TokenKind{TokenStar, TokenEOF}},
		{"&SCOPE", []TokenKind{TokenScope, TokenEOF}},
		{"ENDSCOPE", []TokenKind{TokenKeyword, TokenEOF}},
		{"(),;=", []TokenKind{TokenLParen, TokenRParen, TokenComma, TokenSemicolon, TokenEqual, TokenEOF}},
		{"/* comment */ #1", []TokenKind{TokenIdent, TokenEOF}},
		{"#1=POINT(0.,#2);", []TokenKind{TokenIdent, TokenEqual, TokenKeyword, TokenLParen, TokenReal, TokenComma, TokenIdent, TokenRParen, TokenSemicolon, TokenEOF}},
		{"#", []TokenKind{TokenError, TokenEOF}},
		{"@", []TokenKind{TokenError, TokenEOF}},
		{"'unterminated", []TokenKind{TokenError, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := NewScanner([]byte(tt.input), "test.stp")
			var got []TokenKind
			for {
				tok := s.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestScannerLiterals(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"#123", "#123"},
		{"'it''s'", "'it''s'"},
		{"1.E-2", "1.E-2"},
		{".STEEL.", ".STEEL."},
		{"&SCOPE", "&SCOPE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := NewScanner([]byte(tt.input), "test.stp")
			tok := s.NextToken()
			if tok.Literal != tt.literal {
				t.Errorf("got %q, want %q", tok.Literal, tt.literal)
			}
		})
	}
}

func TestScannerPositions(t *testing.T) {
	s := NewScanner([]byte("#1=\nPOINT"), "test.stp")
	s.NextToken() // #1
	s.NextToken() // =
	tok := s.NextToken()
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 1 {
		t.Errorf("got line %d column %d, want line 2 column 1", tok.Span.Start.Line, tok.Span.Start.Column)
	}
}
