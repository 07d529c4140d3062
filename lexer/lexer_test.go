package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -22`,

		`+ 1 1 1 1`,

		`[ [ [] ] [] []]`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a :b
			c-d-e-f
			"g
			hi"
		)`,

		`(def! foo (+ 3 3))`,

		`'(a b) ~c ~@d ^{:a 1} [x] @atom`,

		`(fn1 [:A "😊"])`,

		`(fn1 {:robot 🤖})`,
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotEmpty(t, tokens)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{},
		},
		{
			" \t,\n ,",
			[]TokenType{},
		},
		{
			`1`,
			[]TokenType{
				TokenOther,
			},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenOpenList,
				TokenOther,
				TokenOther,
				TokenOther,
				TokenCloseList,
			},
		},
		{
			`(+
				[1
				{}])`,
			[]TokenType{
				TokenOpenList,
				TokenOther,
				TokenOpenVector,
				TokenOther,
				TokenOpenMap,
				TokenCloseMap,
				TokenCloseVector,
				TokenCloseList,
			},
		},
		{
			"'a `b ~c ~@d ^e @f",
			[]TokenType{
				TokenQuote,
				TokenOther,
				TokenQuasiQuote,
				TokenOther,
				TokenUnquote,
				TokenOther,
				TokenSpliceUnquote,
				TokenOther,
				TokenMeta,
				TokenOther,
				TokenDeref,
				TokenOther,
			},
		},
		{
			`~ @`,
			[]TokenType{
				TokenUnquote,
				TokenDeref,
			},
		},
		{
			`"abc" ; rest of line`,
			[]TokenType{
				TokenString,
				TokenComment,
			},
		},
		{
			"a ; comment\nb",
			[]TokenType{
				TokenOther,
				TokenComment,
				TokenOther,
			},
		},
		{
			`abc"def"`,
			[]TokenType{
				TokenOther,
				TokenString,
			},
		},
		{
			`a,b`,
			[]TokenType{
				TokenOther,
				TokenOther,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i].In))
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`(def! x-y 5)`,
			[]string{"(", "def!", "x-y", "5", ")"},
		},
		{
			`"a b\"c" d`,
			[]string{`"a b\"c"`, "d"},
		},
		{
			`"unterminated (1 2`,
			[]string{`"unterminated (1 2`},
		},
		{
			`"trailing\`,
			[]string{`"trailing\`},
		},
		{
			`"\\" x`,
			[]string{`"\\"`, "x"},
		},
		{
			"1 ;; two\n3",
			[]string{"1", ";; two", "3"},
		},
		{
			`~@(a)`,
			[]string{"~@", "(", "a", ")"},
		},
		{
			`{:a 1, :b 2}`,
			[]string{"{", ":a", "1", ":b", "2", "}"},
		},
		{
			`-12 foo?`,
			[]string{"-12", "foo?"},
		},
	}

	for i := range testCases {
		tokens := TokenizeString(testCases[i].In)
		texts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			texts = append(texts, tok.Text())
		}
		assert.Equal(t, testCases[i].Out, texts, "input: %q", testCases[i].In)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"1",
			[][2]int{
				{1, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
			},
		},
		{
			"1\n\n\t\t(23456)",
			[][2]int{
				{1, 1},
				{3, 3}, {3, 4}, {3, 9},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i].In))
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokenizeRestartable(t *testing.T) {
	in := `(+ 1 "two" ; three`
	assert.Equal(t, TokenizeString(in), TokenizeString(in))
}
