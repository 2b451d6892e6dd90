package step

type Scanner struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewScanner(input []byte, file string) *Scanner {
	return &Scanner{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) Position() Position {
	return Position{
		File:   s.file,
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *Scanner) peekN(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *Scanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

func (s *Scanner) skipBlanks() {
	for {
		ch := s.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()
			continue
		}
		if ch == '/' && s.peekN(1) == '*' {
			s.advanceN(2)
			for s.peek() != 0 {
				if s.peek() == '*' && s.peekN(1) == '/' {
					s.advanceN(2)
					break
				}
				s.advance()
			}
			continue
		}
		break
	}
}

func (s *Scanner) NextToken() Token {
	s.skipBlanks()
	startPos := s.Position()

	if s.pos >= len(s.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := s.peek()

	if ch == '#' {
		return s.scanIdent(startPos)
	}

	if isUpper(ch) {
		return s.scanKeyword(startPos)
	}

	if isDigit(ch) || ch == '+' || ch == '-' {
		return s.scanNumber(startPos)
	}

	if ch == '\'' {
		return s.scanString(startPos)
	}

	if ch == '"' {
		return s.scanHex(startPos)
	}

	if ch == '.' {
		return s.scanEnum(startPos)
	}

	if ch == '&' {
		return s.scanAmpersand(startPos)
	}

	switch ch {
	case '(':
		s.advance()
		return s.token(TokenLParen, startPos)
	case ')':
		s.advance()
		return s.token(TokenRParen, startPos)
	case ',':
		s.advance()
		return s.token(TokenComma, startPos)
	case ';':
		s.advance()
		return s.token(TokenSemicolon, startPos)
	case '=':
		s.advance()
		return s.token(TokenEqual, startPos)
	case '$':
		s.advance()
		return s.token(TokenDollar, startPos)
	case '*':
		s.advance()
		return s.token(TokenStar, startPos)
	}

	s.advance()
	return s.token(TokenError, startPos)
}

// scanIdent reads an entity identifier: '#' followed by digits. A bare '#'
// is an error token.
func (s *Scanner) scanIdent(start Position) Token {
	s.advance()
	if !isDigit(s.peek()) {
		return s.token(TokenError, start)
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.token(TokenIdent, start)
}

// scanKeyword reads a type name or section keyword. Dashes appear only in
// the envelope keywords (ISO-10303-21, END-ISO-10303-21).
func (s *Scanner) scanKeyword(start Position) Token {
	for isUpper(s.peek()) || isDigit(s.peek()) || s.peek() == '_' || s.peek() == '-' {
		s.advance()
	}
	return s.token(TokenKeyword, start)
}

func (s *Scanner) scanNumber(start Position) Token {
	if s.peek() == '+' || s.peek() == '-' {
		s.advance()
		if !isDigit(s.peek()) {
			return s.token(TokenError, start)
		}
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	isReal := false
	if s.peek() == '.' {
		isReal = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if s.peek() == 'E' || s.peek() == 'e' {
		isReal = true
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if isReal {
		return s.token(TokenReal, start)
	}
	return s.token(TokenInteger, start)
}

// scanString reads a quoted text value. A doubled quote is an escaped quote
// and does not terminate the value; normalization happens in the parser.
func (s *Scanner) scanString(start Position) Token {
	s.advance()
	for {
		ch := s.peek()
		if ch == 0 {
			return s.token(TokenError, start)
		}
		if ch == '\'' {
			if s.peekN(1) == '\'' {
				s.advanceN(2)
				continue
			}
			s.advance()
			break
		}
		s.advance()
	}
	return s.token(TokenString, start)
}

func (s *Scanner) scanHex(start Position) Token {
	s.advance()
	for s.peek() != 0 && s.peek() != '"' {
		s.advance()
	}
	if s.peek() == 0 {
		return s.token(TokenError, start)
	}
	s.advance()
	return s.token(TokenHex, start)
}

// scanEnum reads '.NAME.'; the logical literals .T., .F. and .U. come
// through here too and are told apart by the parser.
func (s *Scanner) scanEnum(start Position) Token {
	s.advance()
	for isUpper(s.peek()) || isDigit(s.peek()) || s.peek() == '_' {
		s.advance()
	}
	if s.peek() != '.' {
		return s.token(TokenError, start)
	}
	s.advance()
	return s.token(TokenEnum, start)
}

func (s *Scanner) scanAmpersand(start Position) Token {
	s.advance()
	for isUpper(s.peek()) {
		s.advance()
	}
	lit := string(s.input[start.Offset:s.pos])
	if lit == "&SCOPE" {
		return s.token(TokenScope, start)
	}
	return s.token(TokenError, start)
}

func (s *Scanner) token(kind TokenKind, start Position) Token {
	end := s.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(s.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isUpper(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || ch == '!'
}
