package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			name:  "empty line",
			input: "",
			want:  []TokenType{EOF},
		},
		{
			name:  "comment only",
			input: "   # rent went up",
			want:  []TokenType{EOF},
		},
		{
			name:  "date only",
			input: "2024-01-05",
			want:  []TokenType{DATE, EOF},
		},
		{
			name:  "transfer",
			input: "Checking > Spending 50",
			want:  []TokenType{NAME, ARROW, NAME, NUMBER, EOF},
		},
		{
			name:  "transfer without spaces",
			input: "Checking>Spending 50,Rent 800",
			want:  []TokenType{NAME, ARROW, NAME, NUMBER, COMMA, NAME, NUMBER, EOF},
		},
		{
			name:  "trade",
			input: "2024-1-10 Broker buys 0.5 BTC @ 30000 ; first buy",
			want:  []TokenType{DATE, NAME, BUYS, NUMBER, NAME, AT, NUMBER, EOF},
		},
		{
			name:  "sell",
			input: "Broker sells 1 ETH @ 2000",
			want:  []TokenType{NAME, SELLS, NUMBER, NAME, AT, NUMBER, EOF},
		},
		{
			name:  "price",
			input: "BTC @ 31000",
			want:  []TokenType{NAME, AT, NUMBER, EOF},
		},
		{
			name:  "illegal word",
			input: "12abc",
			want:  []TokenType{ILLEGAL, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewLexer(tt.input).ScanAll()

			assert.Equal(t, len(tt.want), len(tokens), "token count mismatch")

			for i, tok := range tokens {
				assert.Equal(t, tt.want[i], tok.Type, "token type mismatch")
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"123", NUMBER},
		{"123.45", NUMBER},
		{"-123", NUMBER},
		{"+0.50", NUMBER},
		{".5", NUMBER},
		{"5.", ILLEGAL},
		{"1.2.3", ILLEGAL},
		{"-", ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewLexer(tt.input).ScanAll()
			assert.Equal(t, 2, len(tokens))
			assert.Equal(t, tt.want, tokens[0].Type)
			assert.Equal(t, tt.input, tokens[0].String(tt.input))
		})
	}
}

func TestLexerDates(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"2024-01-05", DATE},
		{"2024-1-5", DATE},
		{"24-01-05", ILLEGAL},
		{"2024-001-05", ILLEGAL},
		{"2024-01", ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewLexer(tt.input).ScanAll()
			assert.Equal(t, tt.want, tokens[0].Type)
		})
	}
}

func TestLexerColumns(t *testing.T) {
	line := "Checking > Rent 800"
	tokens := NewLexer(line).ScanAll()

	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 10, tokens[1].Column)
	assert.Equal(t, 12, tokens[2].Column)
	assert.Equal(t, "Rent", tokens[2].String(line))
	assert.Equal(t, 3, tokens[3].Len())
}

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{BUYS, "BUYS"},
		{SELLS, "SELLS"},
		{DATE, "DATE"},
		{ARROW, ">"},
		{TokenType(200), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}
