// Package lib offers ready-made matchers built from combi's primitives,
// for the character classes and tokens most grammars need and would
// otherwise redefine themselves.
package lib

import (
	"strings"

	"github.com/Crikka/combi"
)

// Underscore matches a single literal underscore.
func Underscore() combi.Matcher[string] {
	return combi.Char('_')
}

// IdentifierStart matches a letter or underscore.
func IdentifierStart() combi.Matcher[string] {
	return combi.Or[string, string](combi.Letter(), Underscore())
}

// IdentifierPart matches a letter, digit, or underscore.
func IdentifierPart() combi.Matcher[string] {
	return combi.Or[string, string](IdentifierStart(), combi.Digit())
}

// Identifier matches an IdentifierStart followed by zero or more
// IdentifierPart bytes, concatenated into one string.
func Identifier() combi.Matcher[string] {
	f := combi.NewFragment[string]("Identifier")
	combi.Handle2(f, func(start string, rest []string) string {
		return start + strings.Join(rest, "")
	}, IdentifierStart(), combi.Star[string](IdentifierPart()))
	return f
}

// Whitespace matches a single blank byte or one line terminator ("\r\n",
// "\n" or "\r") — the matcher most grammars hand to Fragment.Skip via
// lib.SkipWhitespace.
func Whitespace() combi.Matcher[string] {
	return combi.Or[string, string](combi.Blank(), combi.LineTerminator())
}

// SkipWhitespace is Whitespace erased for use in Fragment.Skip.
func SkipWhitespace() combi.Skip {
	return combi.AsSkip[string](Whitespace())
}

// Sign matches a single '+' or '-'.
func Sign() combi.Matcher[string] {
	return combi.AnyOf("+-")
}

// SignedInteger matches an optional leading sign followed by a decimal
// digit run, yielding the parsed value (negated if the sign was '-').
func SignedInteger() combi.Matcher[int64] {
	f := combi.NewFragment[int64]("SignedInteger")
	combi.Handle2(f, func(sign combi.Optional[string], n int64) int64 {
		if sign.Present && sign.Value == "-" {
			return -n
		}
		return n
	}, combi.OptionalC(Sign()), combi.Integer())
	return f
}
