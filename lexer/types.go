package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid       TokenType = iota
	TokenSpliceUnquote           // Tilde followed by at: "~@"
	TokenOpenList                // Open parenthesis: "("
	TokenCloseList               // Close parenthesis: ")"
	TokenOpenVector              // Open square bracket: "["
	TokenCloseVector             // Close square bracket: "]"
	TokenOpenMap                 // Open curly bracket: "{"
	TokenCloseMap                // Close curly bracket: "}"
	TokenQuote                   // Single quote: "'"
	TokenQuasiQuote              // Backtick: "`"
	TokenUnquote                 // Tilde: "~"
	TokenMeta                    // Caret: "^"
	TokenDeref                   // At: "@"
	TokenString                  // Double quoted string, possibly unterminated
	TokenComment                 // Semicolon up to the end of the line
	TokenOther                   // Anything else up to a separator or punctuation
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:    []rune{'('},
	TokenCloseList:   []rune{')'},
	TokenOpenVector:  []rune{'['},
	TokenCloseVector: []rune{']'},
	TokenOpenMap:     []rune{'{'},
	TokenCloseMap:    []rune{'}'},
	TokenQuote:       []rune{'\''},
	TokenQuasiQuote:  []rune{'`'},
	TokenUnquote:     []rune{'~'},
	TokenMeta:        []rune{'^'},
	TokenDeref:       []rune{'@'},
}

// punctuation lists the single character token types in lookup order.
var punctuation = []TokenType{
	TokenOpenList,
	TokenCloseList,
	TokenOpenVector,
	TokenCloseVector,
	TokenOpenMap,
	TokenCloseMap,
	TokenQuote,
	TokenQuasiQuote,
	TokenUnquote,
	TokenMeta,
	TokenDeref,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:       "invalid",
	TokenSpliceUnquote: "splice_unquote",
	TokenOpenList:      "open_list",
	TokenCloseList:     "close_list",
	TokenOpenVector:    "open_vector",
	TokenCloseVector:   "close_vector",
	TokenOpenMap:       "open_map",
	TokenCloseMap:      "close_map",
	TokenQuote:         "quote",
	TokenQuasiQuote:    "quasiquote",
	TokenUnquote:       "unquote",
	TokenMeta:          "meta",
	TokenDeref:         "deref",
	TokenString:        "string",
	TokenComment:       "comment",
	TokenOther:         "other",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

// punctuationType returns the single character token type for r, if any.
func punctuationType(r rune) (TokenType, bool) {
	for _, tt := range punctuation {
		if isTokenType(tt)(r) {
			return tt, true
		}
	}
	return TokenInvalid, false
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}

func isNewLine(r rune) bool {
	return r == '\n'
}

// isOtherBreak reports whether r ends a run of "other" text.
func isOtherBreak(r rune) bool {
	if isSeparator(r) {
		return true
	}
	if _, ok := punctuationType(r); ok {
		return true
	}
	return r == '"' || r == ';'
}
