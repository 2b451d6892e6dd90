package step

import (
	"bytes"
	"fmt"

	"github.com/CrealityOfficial/stepfile/step/readdata"
)

// Parser feeds scanner tokens into a readdata session in the order the
// builder protocol requires. It stands in for the flex/bison pair the
// original tool was driven by: local problems go to the session's error
// log, a Go error comes back only when the file envelope itself is broken.
type Parser struct {
	s   *Scanner
	d   *readdata.ReadData
	tok Token
}

// Parse reads a complete STEP physical file into d.
func Parse(src []byte, file string, d *readdata.ReadData) error {
	p := &Parser{s: NewScanner(src, file), d: d}
	p.next()

	if err := p.expectKeyword("ISO-10303-21"); err != nil {
		return err
	}
	if err := p.expectKind(TokenSemicolon); err != nil {
		return err
	}

	if err := p.expectKeyword("HEADER"); err != nil {
		return err
	}
	if err := p.expectKind(TokenSemicolon); err != nil {
		return err
	}
	if err := p.parseHeaderSection(); err != nil {
		return err
	}
	d.EndHeader()

	if err := p.expectKeyword("DATA"); err != nil {
		return err
	}
	if err := p.expectKind(TokenSemicolon); err != nil {
		return err
	}
	if err := p.parseDataSection(); err != nil {
		return err
	}

	if err := p.expectKeyword("END-ISO-10303-21"); err != nil {
		return err
	}
	if p.tok.Kind == TokenSemicolon {
		p.next()
	}
	return nil
}

func (p *Parser) next() {
	p.tok = p.s.NextToken()
}

func (p *Parser) expectKind(kind TokenKind) error {
	if p.tok.Kind != kind {
		return fmt.Errorf("%s:%d:%d: expected %s, got %s %q",
			p.tok.Span.Start.File, p.tok.Span.Start.Line, p.tok.Span.Start.Column,
			kind, p.tok.Kind, p.tok.Literal)
	}
	p.next()
	return nil
}

func (p *Parser) expectKeyword(word string) error {
	if p.tok.Kind != TokenKeyword || p.tok.Literal != word {
		return fmt.Errorf("%s:%d:%d: expected %s, got %q",
			p.tok.Span.Start.File, p.tok.Span.Start.Line, p.tok.Span.Start.Column,
			word, p.tok.Literal)
	}
	p.next()
	return nil
}

// parseHeaderSection reads header entities up to ENDSEC. Header entities
// carry no identifier, only a type and arguments.
func (p *Parser) parseHeaderSection() error {
	for {
		switch {
		case p.tok.Kind == TokenKeyword && p.tok.Literal == "ENDSEC":
			p.next()
			return p.expectKind(TokenSemicolon)
		case p.tok.Kind == TokenKeyword:
			p.d.BeginRecord(readdata.TextRef{})
			p.d.SetRecordType(p.d.Intern([]byte(p.tok.Literal)))
			p.next()
			if !p.parseArgList() {
				p.recover()
				continue
			}
			p.d.FinalizeRecord()
			if p.tok.Kind != TokenSemicolon {
				p.d.AddError(p.posf("missing ; after header entity"))
				continue
			}
			p.next()
		case p.tok.Kind == TokenEOF:
			return fmt.Errorf("%s: unexpected end of file in HEADER section", p.s.file)
		default:
			p.d.AddError(p.posf("unexpected %s %q in HEADER section", p.tok.Kind, p.tok.Literal))
			p.next()
		}
	}
}

// parseDataSection reads "#id = TYPE (args);" entities up to ENDSEC,
// including &SCOPE ... ENDSCOPE blocks between an identifier and its type.
func (p *Parser) parseDataSection() error {
	for {
		switch {
		case p.tok.Kind == TokenKeyword && p.tok.Literal == "ENDSEC":
			p.next()
			return p.expectKind(TokenSemicolon)
		case p.tok.Kind == TokenIdent:
			if err := p.parseEntity(); err != nil {
				return err
			}
		case p.tok.Kind == TokenEOF:
			return fmt.Errorf("%s: unexpected end of file in DATA section", p.s.file)
		default:
			p.d.AddError(p.posf("unexpected %s %q in DATA section", p.tok.Kind, p.tok.Literal))
			p.next()
		}
	}
}

func (p *Parser) parseEntity() error {
	p.d.BeginRecord(p.d.Intern([]byte(p.tok.Literal)))
	p.next()
	if p.tok.Kind != TokenEqual {
		p.d.AddError(p.posf("expected = after entity identifier"))
		p.recover()
		return nil
	}
	p.next()

	if p.tok.Kind == TokenScope {
		p.next()
		p.d.OpenScope()
		for p.tok.Kind == TokenIdent {
			if err := p.parseEntity(); err != nil {
				return err
			}
		}
		if p.tok.Kind == TokenKeyword && p.tok.Literal == "ENDSCOPE" {
			p.next()
		} else {
			p.d.AddError(p.posf("missing ENDSCOPE"))
		}
		p.d.CloseScope()
	}

	if p.tok.Kind != TokenKeyword {
		p.d.AddError(p.posf("expected entity type, got %s %q", p.tok.Kind, p.tok.Literal))
		p.recover()
		return nil
	}
	p.d.SetRecordType(p.d.Intern([]byte(p.tok.Literal)))
	p.next()

	if !p.parseArgList() {
		p.recover()
		return nil
	}
	p.d.FinalizeRecord()
	if p.tok.Kind != TokenSemicolon {
		p.d.AddError(p.posf("missing ; after entity"))
		return nil
	}
	p.next()
	return nil
}

// parseArgList consumes "( arg, arg, ... )". It reports false when the list
// cannot be brought back to a closing parenthesis, in which case the caller
// abandons the record.
func (p *Parser) parseArgList() bool {
	if p.tok.Kind != TokenLParen {
		p.d.AddError(p.posf("expected ( to open argument list"))
		return false
	}
	p.d.BeginList()
	p.next()
	if p.tok.Kind == TokenRParen {
		p.next()
		return true
	}
	for {
		if !p.parseArg() {
			return false
		}
		switch p.tok.Kind {
		case TokenComma:
			p.next()
		case TokenRParen:
			p.next()
			return true
		case TokenEOF:
			p.d.AddError(p.posf("unterminated argument list"))
			return false
		default:
			// malformed separator, absorbed as an error placeholder run
			p.d.AddArg(readdata.ParamMisc, p.d.Intern([]byte(p.tok.Literal)))
			p.next()
		}
	}
}

func (p *Parser) parseArg() bool {
	switch p.tok.Kind {
	case TokenInteger:
		p.d.AddArg(readdata.ParamInteger, p.d.Intern([]byte(p.tok.Literal)))
	case TokenReal:
		p.d.AddArg(readdata.ParamReal, p.d.Intern([]byte(p.tok.Literal)))
	case TokenIdent:
		p.d.AddArg(readdata.ParamIdent, p.d.Intern([]byte(p.tok.Literal)))
	case TokenString:
		p.d.AddArg(readdata.ParamText, p.internString(p.tok.Literal))
	case TokenEnum:
		kind := readdata.ParamEnum
		if p.tok.Literal == ".T." || p.tok.Literal == ".F." || p.tok.Literal == ".U." {
			kind = readdata.ParamLogical
		}
		p.d.AddArg(kind, p.d.Intern([]byte(p.tok.Literal)))
	case TokenHex:
		p.d.AddArg(readdata.ParamHexa, p.d.Intern([]byte(p.tok.Literal)))
	case TokenDollar, TokenStar:
		p.d.AddArg(readdata.ParamVoid, p.d.Intern([]byte(p.tok.Literal)))
	case TokenLParen:
		// nested list becomes a synthetic sub-record; its finalize hands a
		// ParamSub argument back to the outer record
		p.d.BeginSubRecord()
		if !p.parseArgList() {
			return false
		}
		p.d.FinalizeRecord()
		return true
	case TokenError:
		p.d.AddArg(readdata.ParamMisc, p.d.Intern([]byte(p.tok.Literal)))
	case TokenEOF:
		p.d.AddError(p.posf("unterminated argument list"))
		return false
	default:
		p.d.AddError(p.posf("unexpected %s %q in argument list", p.tok.Kind, p.tok.Literal))
		p.d.AddArg(readdata.ParamMisc, p.d.Intern([]byte(p.tok.Literal)))
	}
	p.next()
	return true
}

// internString interns the content of a quoted literal, then revises it in
// place when escaped quotes need collapsing.
func (p *Parser) internString(lit string) readdata.TextRef {
	raw := []byte(lit[1 : len(lit)-1])
	ref := p.d.Intern(raw)
	if bytes.Contains(raw, []byte("''")) {
		ref = p.d.ReplaceLast(bytes.ReplaceAll(raw, []byte("''"), []byte("'")))
	}
	return ref
}

// recover skips to the next ; and resets the builder for the next entity.
func (p *Parser) recover() {
	for p.tok.Kind != TokenSemicolon && p.tok.Kind != TokenEOF {
		if p.tok.Kind == TokenKeyword && (p.tok.Literal == "ENDSEC" || p.tok.Literal == "END-ISO-10303-21") {
			break
		}
		p.next()
	}
	if p.tok.Kind == TokenSemicolon {
		p.next()
	}
	p.d.SkipRecord()
}

func (p *Parser) posf(format string, args ...any) string {
	pos := p.tok.Span.Start
	return fmt.Sprintf("%s:%d:%d: ", pos.File, pos.Line, pos.Column) + fmt.Sprintf(format, args...)
}
