package token

type TokenType int

const (
	TName TokenType = iota
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TNull
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TPipe
	TDot
	TColon
	TDash
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:    "TName",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
		TPipe:    "TPipe",
		TDot:     "TDot",
		TColon:   "TColon",
		TDash:    "TDash",
	}[t]
}

type Token struct {
	Type TokenType
	Text string
	Pos  *Pos
}

func (t *Token) String() string {
	if t.Pos == nil {
		return t.Type.String() + "(" + t.Text + ")"
	}
	return t.Type.String() + "(" + t.Text + ")@" + t.Pos.String()
}
