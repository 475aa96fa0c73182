// Package example holds worked grammars exercising combi end to end:
// a plain alternation, a left-recursive arithmetic calculator (with and
// without whitespace skipping), and a left-recursive postfix counter.
package example

import (
	"github.com/Crikka/combi"
	"github.com/Crikka/combi/lib"
)

// Arithmetic builds a four-operator (+ - * /) expression grammar with
// parenthesised sub-expressions, evaluating as it parses. Expr and Term
// are left-recursive (their own fragment is the first slot of their
// binary-operator rules); Factor is not.
func Arithmetic() (expr, term, factor *combi.Fragment[int64]) {
	expr = combi.NewFragment[int64]("Expr")
	term = combi.NewFragment[int64]("Term")
	factor = combi.NewFragment[int64]("Factor")

	combi.Handle3(expr, func(l int64, _ string, r int64) int64 { return l + r }, expr, combi.Char('+'), term)
	combi.Handle3(expr, func(l int64, _ string, r int64) int64 { return l - r }, expr, combi.Char('-'), term)
	combi.Handle1(expr, func(t int64) int64 { return t }, term)

	combi.Handle3(term, func(l int64, _ string, r int64) int64 { return l * r }, term, combi.Char('*'), factor)
	combi.Handle3(term, func(l int64, _ string, r int64) int64 { return l / r }, term, combi.Char('/'), factor)
	combi.Handle1(term, func(f int64) int64 { return f }, factor)

	combi.Handle1(factor, func(n int64) int64 { return n }, combi.Integer())
	combi.Handle3(factor, func(_ string, e int64, _ string) int64 { return e }, combi.Char('('), expr, combi.Char(')'))

	return expr, term, factor
}

// ArithmeticWithWhitespace is Arithmetic with blank/line-terminator
// bytes silently skipped between tokens.
func ArithmeticWithWhitespace() (expr, term, factor *combi.Fragment[int64]) {
	expr, term, factor = Arithmetic()
	for _, f := range []*combi.Fragment[int64]{expr, term, factor} {
		f.Skip(lib.SkipWhitespace()).SkipAtEnd(true)
	}
	return expr, term, factor
}

// Tristate is a plain, non-recursive alternation among three literal
// keywords.
func Tristate() *combi.Fragment[string] {
	return combi.Select[string]("Tristate",
		combi.Constant("true"),
		combi.Constant("false"),
		combi.Constant("maybe"),
	)
}

// PipeCounter counts a run of '|' bytes via left recursion: an empty
// string matches as 0, and each additional trailing '|' adds one.
func PipeCounter() *combi.Fragment[int64] {
	counter := combi.NewFragment[int64]("PipeCounter")
	combi.Handle2(counter, func(n int64, _ string) int64 { return n + 1 }, counter, combi.Char('|'))
	combi.Handle1(counter, func(_ string) int64 { return 0 }, combi.Constant(""))
	return counter
}

// FourDigitCode matches exactly four decimal digits, e.g. a PIN or a
// short product code.
func FourDigitCode() combi.Matcher[[]string] {
	return combi.Repeat(4, combi.Digit())
}
