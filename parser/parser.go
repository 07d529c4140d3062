package parser

import (
	"regexp"
	"strconv"

	"github.com/xiam/mal/ast"
	"github.com/xiam/mal/lexer"
)

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// markerNames maps the printed names of the reader markers back to them, so
// that (quote a) and 'a read the same.
var markerNames = map[string]ast.ValueType{
	"quote":          ast.ValueTypeQuote,
	"quasiquote":     ast.ValueTypeQuasiQuote,
	"unquote":        ast.ValueTypeUnquote,
	"splice-unquote": ast.ValueTypeSpliceUnquote,
	"with-meta":      ast.ValueTypeMeta,
}

var sequenceTypes = map[lexer.TokenType]struct {
	closer lexer.TokenType
	nt     ast.NodeType
}{
	lexer.TokenOpenList:   {lexer.TokenCloseList, ast.NodeTypeList},
	lexer.TokenOpenVector: {lexer.TokenCloseVector, ast.NodeTypeVector},
	lexer.TokenOpenMap:    {lexer.TokenCloseMap, ast.NodeTypeMap},
}

var quoteMarkers = map[lexer.TokenType]ast.ValueType{
	lexer.TokenQuote:         ast.ValueTypeQuote,
	lexer.TokenQuasiQuote:    ast.ValueTypeQuasiQuote,
	lexer.TokenUnquote:       ast.ValueTypeUnquote,
	lexer.TokenSpliceUnquote: ast.ValueTypeSpliceUnquote,
}

// Parser reads forms from a token sequence with a single forward cursor.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser positioned at pos.
func New(tokens []lexer.Token, pos int) *Parser {
	return &Parser{tokens: tokens, pos: pos}
}

// Pos returns the position of the next unread token.
func (p *Parser) Pos() int {
	return p.pos
}

// Done returns true when every token has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() (*lexer.Token, bool) {
	if p.Done() {
		return nil, false
	}
	return &p.tokens[p.pos], true
}

func (p *Parser) next() (*lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// ParseOne reads the next form. It returns nil only when there are no tokens
// left.
func (p *Parser) ParseOne() *ast.Node {
	for {
		tok, ok := p.peek()
		if !ok {
			return nil
		}

		switch tok.Type() {
		case lexer.TokenOpenList, lexer.TokenOpenVector, lexer.TokenOpenMap:
			return p.parseSequence()

		case lexer.TokenQuote, lexer.TokenQuasiQuote, lexer.TokenUnquote, lexer.TokenSpliceUnquote:
			return p.parseQuote()

		case lexer.TokenDeref:
			return p.parseDeref()

		case lexer.TokenMeta:
			return p.parseMeta()

		case lexer.TokenString, lexer.TokenComment, lexer.TokenOther:
			p.next()
			if node := parseAtom(tok); node != nil {
				return node
			}
			// empty text, keep going

		default:
			// closing brackets with no matching opener
			p.next()
			return ast.NewAtom(tok, ast.UnexpectedTokenValue(tok.Text()))
		}
	}
}

func (p *Parser) parseSequence() *ast.Node {
	open, _ := p.next()
	seq := sequenceTypes[open.Type()]

	node := ast.NewComposite(seq.nt, open)
	for {
		tok, ok := p.peek()
		if !ok {
			_ = node.Push(ast.NewAtom(nil, ast.MarkerValue(ast.ValueTypeUnbalancedListEnd)))
			return node
		}
		if tok.Is(seq.closer) {
			p.next()
			return node
		}
		if child := p.ParseOne(); child != nil {
			_ = node.Push(child)
		}
	}
}

// parseOrUnbalanced reads the next form, or returns an unbalanced list
// sentinel when the input is exhausted.
func (p *Parser) parseOrUnbalanced() *ast.Node {
	if node := p.ParseOne(); node != nil {
		return node
	}
	return ast.NewAtom(nil, ast.MarkerValue(ast.ValueTypeUnbalancedListEnd))
}

func (p *Parser) parseQuote() *ast.Node {
	tok, _ := p.next()
	marker := ast.NewAtom(tok, ast.MarkerValue(quoteMarkers[tok.Type()]))
	return ast.NewList(tok, marker, p.parseOrUnbalanced())
}

func (p *Parser) parseDeref() *ast.Node {
	tok, _ := p.next()

	name, ok := p.peek()
	if !ok || !name.Is(lexer.TokenOther) {
		return ast.NewAtom(tok, ast.MarkerValue(ast.ValueTypeIncompleteDeref))
	}
	p.next()
	return ast.NewAtom(tok, ast.DerefValue(name.Text()))
}

// parseMeta reads "^meta target" as (with-meta target meta).
func (p *Parser) parseMeta() *ast.Node {
	tok, _ := p.next()
	meta := p.parseOrUnbalanced()
	target := p.parseOrUnbalanced()
	return ast.NewList(tok, ast.NewAtom(tok, ast.MarkerValue(ast.ValueTypeMeta)), target, meta)
}

func parseAtom(tok *lexer.Token) *ast.Node {
	text := tok.Text()

	switch tok.Type() {
	case lexer.TokenString:
		if isBalancedString(text) {
			return ast.NewAtom(tok, ast.StringValue(text))
		}
		return ast.NewAtom(tok, ast.UnbalancedStringValue(text))

	case lexer.TokenComment:
		return ast.NewAtom(tok, ast.CommentValue(text))
	}

	if text == "" {
		return nil
	}
	if integerPattern.MatchString(text) {
		i64, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ast.NewAtom(tok, ast.InvalidIntegerValue(text))
		}
		return ast.NewAtom(tok, ast.IntValue(i64))
	}
	if vt, ok := markerNames[text]; ok {
		return ast.NewAtom(tok, ast.MarkerValue(vt))
	}
	return ast.NewAtom(tok, ast.SymbolValue(text))
}

// isBalancedString reports whether a raw string literal is closed by an
// unescaped quote.
func isBalancedString(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	escapes := 0
	for i := len(s) - 2; i > 0 && s[i] == '\\'; i-- {
		escapes++
	}
	return escapes%2 == 0
}

// ParseOne reads one form from tokens starting at pos and returns it together
// with the position right after it. The node is nil only when pos is past the
// last token.
func ParseOne(tokens []lexer.Token, pos int) (*ast.Node, int) {
	p := New(tokens, pos)
	node := p.ParseOne()
	return node, p.Pos()
}

// Parse tokenizes the given text and reads its first form.
func Parse(in string) *ast.Node {
	node, _ := ParseOne(lexer.TokenizeString(in), 0)
	return node
}

// ParseAll tokenizes the given text and reads every form in it.
func ParseAll(in string) []*ast.Node {
	p := New(lexer.TokenizeString(in), 0)

	nodes := []*ast.Node{}
	for node := p.ParseOne(); node != nil; node = p.ParseOne() {
		nodes = append(nodes, node)
	}
	return nodes
}
