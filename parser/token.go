package parser

// TokenType represents the type of token scanned from a ledger line.
type TokenType uint8

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Keywords
	BUYS  // buys
	SELLS // sells

	// Literals
	DATE   // YYYY-MM-DD
	NUMBER // 123.45 or -123.45
	NAME   // Checking, BTC, Spending

	// Symbols
	ARROW // >
	COMMA // ,
	AT    // @
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	BUYS:  "BUYS",
	SELLS: "SELLS",

	DATE:   "DATE",
	NUMBER: "NUMBER",
	NAME:   "NAME",

	ARROW: ">",
	COMMA: ",",
	AT:    "@",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a lexical token holding byte offsets into the scanned line.
type Token struct {
	Type   TokenType
	Start  int // Byte offset into the line
	End    int // End offset (exclusive)
	Column int // Column number (1-indexed)
}

// String materializes the token text from the line it was scanned from.
func (t Token) String(source string) string {
	if t.Start > len(source) || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
