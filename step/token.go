package step

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenIdent   // entity identifier, #123
	TokenKeyword // type name or section keyword, ADVANCED_FACE, HEADER, ENDSEC
	TokenString  // 'quoted text'
	TokenEnum    // .STEEL., .T., .F., .U.
	TokenInteger
	TokenReal
	TokenHex   // "0A1B"
	TokenDollar
	TokenStar
	TokenScope // &SCOPE

	TokenLParen
	TokenRParen
	TokenComma
	TokenSemicolon
	TokenEqual
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenIdent:     "Ident",
	TokenKeyword:   "Keyword",
	TokenString:    "String",
	TokenEnum:      "Enum",
	TokenInteger:   "Integer",
	TokenReal:      "Real",
	TokenHex:       "Hex",
	TokenDollar:    "Dollar",
	TokenStar:      "Star",
	TokenScope:     "Scope",
	TokenLParen:    "LParen",
	TokenRParen:    "RParen",
	TokenComma:     "Comma",
	TokenSemicolon: "Semicolon",
	TokenEqual:     "Equal",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
