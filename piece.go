package combi

// Piece is the contract of Matcher.Consume: the length of the consumed
// prefix and the value produced, or the absence of a match.
//
// Invariant: when Ok is false, Length and Value are the zero values.
// A successful match of an empty prefix (Length == 0 with Ok == true)
// is produced by the nullable combinators (OptionalC, Star), by the
// zero-width Not assertion — see unary.go — and by any matcher whose
// own definition accepts the empty string, such as Constant("").
type Piece[T any] struct {
	Length int
	Value  T
	Ok     bool
}

// fail is the canonical failed Piece.
func fail[T any]() Piece[T] {
	return Piece[T]{}
}

// matched builds a successful Piece.
func matched[T any](length int, value T) Piece[T] {
	return Piece[T]{Length: length, Value: value, Ok: true}
}

// Optional is the value wrapper produced by the Optional combinator: it
// marks whether the inner matcher actually matched, distinct from
// Piece's own success/failure flag (an Optional combinator always
// succeeds, even when its payload is absent).
type Optional[T any] struct {
	Present bool
	Value   T
}
