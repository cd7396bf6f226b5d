// Package token tokenizes squiggly filter expressions.
package token

import (
	"fmt"
)

// Tokenize scans a filter expression into tokens, appending to dst.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	doc := NewPosDoc(d)
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Text: "{", Pos: doc.Pos(i)})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Text: "}", Pos: doc.Pos(i)})
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Text: "(", Pos: doc.Pos(i)})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Text: ")", Pos: doc.Pos(i)})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Text: ",", Pos: doc.Pos(i)})
			i++
		case c == '|':
			dst = append(dst, Token{Type: TPipe, Text: "|", Pos: doc.Pos(i)})
			i++
		case c == '.':
			dst = append(dst, Token{Type: TDot, Text: ".", Pos: doc.Pos(i)})
			i++
		case c == ':':
			dst = append(dst, Token{Type: TColon, Text: ":", Pos: doc.Pos(i)})
			i++
		case c == '-':
			if i+1 < len(d) && isDigit(d[i+1]) {
				tok, n, err := number(d, i, doc)
				if err != nil {
					return nil, err
				}
				dst = append(dst, tok)
				i = n
				continue
			}
			dst = append(dst, Token{Type: TDash, Text: "-", Pos: doc.Pos(i)})
			i++
		case c == '\'' || c == '"':
			tok, n, err := quoted(d, i, doc)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = n
		case isDigit(c):
			tok, n, err := number(d, i, doc)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = n
		case isNameByte(c):
			tok, n := name(d, i, doc)
			dst = append(dst, tok)
			i = n
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at %s", ErrToken, string(c), doc.Pos(i))
		}
	}
	return dst, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '$' || c == '*' || c == '?' || c == '@':
		return true
	default:
		return false
	}
}

func name(d []byte, i int, doc *PosDoc) (Token, int) {
	start := i
	for i < len(d) && isNameByte(d[i]) {
		i++
	}
	text := string(d[start:i])
	ty := TName
	switch text {
	case "true":
		ty = TTrue
	case "false":
		ty = TFalse
	case "null":
		ty = TNull
	}
	return Token{Type: ty, Text: text, Pos: doc.Pos(start)}, i
}

func number(d []byte, i int, doc *PosDoc) (Token, int, error) {
	start := i
	if d[i] == '-' {
		i++
	}
	for i < len(d) && isDigit(d[i]) {
		i++
	}
	ty := TInteger
	if i < len(d) && d[i] == '.' {
		ty = TFloat
		i++
		if i >= len(d) || !isDigit(d[i]) {
			return Token{}, 0, fmt.Errorf("%w: malformed number at %s", ErrToken, doc.Pos(start))
		}
		for i < len(d) && isDigit(d[i]) {
			i++
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		ty = TFloat
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		if i >= len(d) || !isDigit(d[i]) {
			return Token{}, 0, fmt.Errorf("%w: malformed number at %s", ErrToken, doc.Pos(start))
		}
		for i < len(d) && isDigit(d[i]) {
			i++
		}
	}
	return Token{Type: ty, Text: string(d[start:i]), Pos: doc.Pos(start)}, i, nil
}

func quoted(d []byte, i int, doc *PosDoc) (Token, int, error) {
	start := i
	quote := d[i]
	i++
	res := make([]byte, 0, 16)
	for i < len(d) {
		c := d[i]
		switch c {
		case '\\':
			if i+1 >= len(d) {
				return Token{}, 0, fmt.Errorf("%w: unterminated escape at %s", ErrToken, doc.Pos(i))
			}
			i++
			switch d[i] {
			case 'n':
				res = append(res, '\n')
			case 't':
				res = append(res, '\t')
			default:
				res = append(res, d[i])
			}
			i++
		case quote:
			return Token{Type: TString, Text: string(res), Pos: doc.Pos(start)}, i + 1, nil
		default:
			res = append(res, c)
			i++
		}
	}
	return Token{}, 0, fmt.Errorf("%w: unterminated string at %s", ErrToken, doc.Pos(start))
}
