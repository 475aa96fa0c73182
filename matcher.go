package combi

// Unknown is the advisory "no known size" sentinel returned by
// ExactSize/BiggestSize when a matcher cannot bound its own consumption.
const Unknown = -1

// Matcher is any value that can test or consume a prefix of a
// StringView and report the element type of what it produces.
//
// For every concrete Matcher and every input v the following must
// hold:
//
//   - Prefix agreement: if Consume(v) = Piece{L, x, true}, then
//     Match(v.Substr(0, L)) returns (x', true) with x' semantically
//     equal to x.
//   - Empty input: Consume(View("")) returns Piece{0, _, false} unless
//     the matcher is nullable, in which case it returns
//     Piece{0, zeroValue, true}.
//   - Monotone length: for a successful Consume(v), Length <= v.Size().
//
// ExactSize and BiggestSize are advisory size hints; returning Unknown
// from both is always a correct (if less helpful) implementation.
type Matcher[T any] interface {
	// Match succeeds iff the entire view is consumed.
	Match(v StringView) (T, bool)

	// Consume succeeds on any prefix, reporting how much of it matched.
	Consume(v StringView) Piece[T]

	// ExactSize returns the fixed number of bytes this matcher always
	// consumes on success, or Unknown.
	ExactSize() int

	// BiggestSize returns an upper bound on the bytes this matcher can
	// consume on success, or Unknown.
	BiggestSize() int
}

// matchViaConsume implements Match in terms of Consume, as every
// Matcher must: Match is equivalent to Consume succeeding with
// Length == v.Size().
func matchViaConsume[T any](m Matcher[T], v StringView) (T, bool) {
	p := m.Consume(v)
	if p.Ok && p.Length == v.Size() {
		return p.Value, true
	}
	var zero T
	return zero, false
}
