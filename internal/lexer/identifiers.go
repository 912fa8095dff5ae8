package lexer

import (
	"unicode"

	"github.com/cwbudde/langcore/internal/token"
)

// scanIdentifier consumes an identifier or keyword. A leading backtick
// lets reserved keywords be spelled as identifiers: it is consumed and
// appended as part of the lexeme, which guarantees the result can never
// match an entry of token.Keywords. A backtick not followed by an
// identifier-start code point is an error.
func (s *Scanner) scanIdentifier(pos token.Position) (token.Token, error) {
	if s.ch == '`' {
		s.appendRune(s.ch)
		s.readChar()
		if !isIdentStart(s.ch) {
			return token.Token{}, s.errorf("bare '`' with no identifier following")
		}
	}

	s.appendRune(s.ch)
	s.readChar()
	for isIdentStart(s.ch) || isDigit(s.ch) || s.ch == '_' {
		s.appendRune(s.ch)
		s.readChar()
	}

	lexeme := string(s.lexemeBuffer)
	if kind, ok := token.Keywords[lexeme]; ok {
		return s.emit(kind, lexeme, pos), nil
	}
	return s.emit(token.IDENTIFIER, lexeme, pos), nil
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
