package lexer

import (
	"bytes"
	"io"
	"strings"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isUnquote     = isTokenType(TokenUnquote)
	isDeref       = isTokenType(TokenDeref)
	isDoubleQuote = func(r rune) bool { return r == '"' }
	isSemicolon   = func(r rune) bool { return r == ';' }
	isBackslash   = func(r rune) bool { return r == '\\' }
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		tokens: []Token{},
		buf:    []rune{},

		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens []Token

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns the tokens detected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and returns every token found in it, in input
// order. Separators are discarded.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, bool) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), false
	}

	lx.buf = append(lx.buf, r)
	if isNewLine(r) {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, true
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case isSeparator(r):
		lx.ignore()
		return lexDefaultState

	case isUnquote(r) && isDeref(lx.peek()):
		lx.next()
		return lexEmit(TokenSpliceUnquote)

	case isDoubleQuote(r):
		return lexString

	case isSemicolon(r):
		return lexComment
	}

	if tt, ok := punctuationType(r); ok {
		return lexEmit(tt)
	}

	return lexOther
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// lexString collects a string literal including its delimiting quotes. Escape
// sequences are kept raw. Reaching the end of the input emits whatever was
// collected.
func lexString(lx *Lexer) lexState {
	for {
		if lx.peek() == scanner.EOF {
			return lexEmit(TokenString)
		}
		r, _ := lx.next()
		switch {
		case isBackslash(r):
			if lx.peek() != scanner.EOF {
				lx.next()
			}
		case isDoubleQuote(r):
			return lexEmit(TokenString)
		}
	}
}

func lexComment(lx *Lexer) lexState {
	for p := lx.peek(); p != scanner.EOF && !isNewLine(p); p = lx.peek() {
		lx.next()
	}
	return lexEmit(TokenComment)
}

func lexOther(lx *Lexer) lexState {
	for p := lx.peek(); p != scanner.EOF && !isOtherBreak(p); p = lx.peek() {
		lx.next()
	}
	return lexEmit(TokenOther)
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte) []Token {
	return New(bytes.NewReader(in)).Scan()
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(in string) []Token {
	return New(strings.NewReader(in)).Scan()
}
