package parser

// Lexer tokenizes a single ledger line.
//
// Tokens store byte offsets, not string values. A '#' or ';' starts a
// comment that runs to the end of the line.
type Lexer struct {
	source string  // Line being scanned
	pos    int     // Current byte position
	tokens []Token // Token buffer
}

// NewLexer creates a lexer for one line of input.
func NewLexer(line string) *Lexer {
	return &Lexer{
		source: line,
		tokens: make([]Token, 0, 8),
	}
}

// ScanAll lexes the whole line and returns its tokens terminated by EOF.
func (l *Lexer) ScanAll() []Token {
	for l.pos < len(l.source) {
		l.skipWhitespace()

		if l.pos >= len(l.source) {
			break
		}

		if isCommentStart(l.source[l.pos]) {
			l.pos = len(l.source)
			break
		}

		l.tokens = append(l.tokens, l.scanToken())
	}

	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Start:  l.pos,
		End:    l.pos,
		Column: l.pos + 1,
	})

	return l.tokens
}

func (l *Lexer) scanToken() Token {
	start := l.pos

	switch l.source[l.pos] {
	case '>':
		l.pos++
		return Token{ARROW, start, l.pos, start + 1}
	case ',':
		l.pos++
		return Token{COMMA, start, l.pos, start + 1}
	case '@':
		l.pos++
		return Token{AT, start, l.pos, start + 1}
	}

	for l.pos < len(l.source) && !isDelimiter(l.source[l.pos]) {
		l.pos++
	}

	return Token{classifyWord(l.source[start:l.pos]), start, l.pos, start + 1}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) && isSpace(l.source[l.pos]) {
		l.pos++
	}
}

// classifyWord decides the type of a run of non-delimiter bytes.
func classifyWord(word string) TokenType {
	switch word {
	case "buys":
		return BUYS
	case "sells":
		return SELLS
	}
	if isDatePattern(word) {
		return DATE
	}
	if isNumberPattern(word) {
		return NUMBER
	}
	if isDigit(word[0]) || word[0] == '-' || word[0] == '+' || word[0] == '.' {
		return ILLEGAL
	}
	return NAME
}

// isDatePattern matches digits{4}-digits{1,2}-digits{1,2}.
func isDatePattern(word string) bool {
	parts := [3]int{}
	part := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case isDigit(ch):
			parts[part]++
		case ch == '-' && part < 2 && parts[part] > 0:
			part++
		default:
			return false
		}
	}
	return part == 2 && parts[0] == 4 &&
		parts[1] >= 1 && parts[1] <= 2 &&
		parts[2] >= 1 && parts[2] <= 2
}

// isNumberPattern matches [-+]?[0-9]*(\.[0-9]+)? with at least one digit.
func isNumberPattern(word string) bool {
	i := 0
	if word[0] == '-' || word[0] == '+' {
		i++
	}
	digits, dot := 0, false
	for ; i < len(word); i++ {
		ch := word[i]
		switch {
		case isDigit(ch):
			digits++
		case ch == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0 && word[len(word)-1] != '.'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || isCommentStart(ch) || ch == '>' || ch == ',' || ch == '@'
}

func isCommentStart(ch byte) bool { return ch == '#' || ch == ';' }

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
