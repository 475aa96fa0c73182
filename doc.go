// Package combi implements parser combinators for context-free grammars,
// including grammars with left-recursive productions.
//
// A grammar is built directly in Go by composing small matching
// primitives: terminals (Constant, Char, Integer, AnyOf, AnyIn) and
// combinators (Not, Plus, Star, OptionalC, StartWith, EndWith, Repeat,
// Word, Or, And, Range). Productions are grouped into a Fragment, a
// named non-terminal holding an ordered set of Rules; each Rule binds a
// sequence of matcher slots to a semantic action that produces a typed
// value.
//
// Overlook of the matcher protocol
//
// Every combinator implements Matcher[T]:
//
//	Match(v StringView) (value T, ok bool)
//	Consume(v StringView) Piece[T]
//
// Match succeeds only when the whole view is consumed; Consume succeeds
// on any prefix and reports how many bytes it ate. Consume is the
// primitive operation — Match is always equivalent to checking that
// Consume reported a length equal to the view's size.
//
// Left recursion
//
// Unlike a classical top-down PEG engine, a Fragment may contain rules
// whose first slot is the fragment itself. Fragment.Consume seeds a
// growth loop from the fragment's non-left-recursive rules, then
// repeatedly re-feeds the left-recursive rules with every seed found so
// far (via a Yielder) until a full pass produces nothing new, or until
// Config.MaxPasses passes have run when that limit is set. See
// fragment.go for the fixpoint.
//
// Skips
//
// A Fragment may declare a set of skip matchers (Fragment.Skip). Before
// each slot is attempted, and again before the semantic action runs if
// SkipAtEnd is set, the first skip matcher that consumes a nonempty
// prefix has that prefix silently dropped. Skip bytes never appear in a
// slot's value.
package combi
