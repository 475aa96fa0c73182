package combi

// notMatcher is a zero-width negative assertion: it never consumes
// text, regardless of how much the inner matcher would have consumed.
type notMatcher[T any] struct {
	inner Matcher[T]
}

// Not succeeds iff inner's Consume fails, consuming no text.
func Not[T any](inner Matcher[T]) Matcher[string] {
	return &notMatcher[T]{inner: inner}
}

func (m *notMatcher[T]) Consume(v StringView) Piece[string] {
	if m.inner.Consume(v).Ok {
		return fail[string]()
	}
	return matched(0, "")
}

func (m *notMatcher[T]) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *notMatcher[T]) ExactSize() int   { return 0 }
func (m *notMatcher[T]) BiggestSize() int { return 0 }

// plusMatcher is one-or-more greedy repetition.
type plusMatcher[T any] struct {
	inner Matcher[T]
}

// Plus matches inner one or more times, greedily, stopping at inner's
// first failure. The value is the list of inner values in order.
func Plus[T any](inner Matcher[T]) Matcher[[]T] {
	return &plusMatcher[T]{inner: inner}
}

func (m *plusMatcher[T]) Consume(v StringView) Piece[[]T] {
	var values []T
	total := 0
	for {
		tail := v.Substr(total)
		p := m.inner.Consume(tail)
		if !p.Ok {
			break
		}
		values = append(values, p.Value)
		total += p.Length
		if p.Length == 0 {
			// a nullable inner matcher would loop forever; one empty
			// success is enough to satisfy "one or more".
			break
		}
	}
	if len(values) == 0 {
		return fail[[]T]()
	}
	return matched(total, values)
}

func (m *plusMatcher[T]) Match(v StringView) ([]T, bool) {
	return matchViaConsume[[]T](m, v)
}

func (m *plusMatcher[T]) ExactSize() int   { return Unknown }
func (m *plusMatcher[T]) BiggestSize() int { return Unknown }

// starMatcher is Optional(Plus(inner)) flattened to a plain (possibly
// empty, possibly nil) slice — idiomatic Go already treats a nil/empty
// slice as "no elements", so the nested optional-of-list collapses
// into []T without losing information.
type starMatcher[T any] struct {
	inner Matcher[T]
}

// Star matches inner zero or more times, greedily. It always succeeds.
func Star[T any](inner Matcher[T]) Matcher[[]T] {
	return &starMatcher[T]{inner: inner}
}

func (m *starMatcher[T]) Consume(v StringView) Piece[[]T] {
	p := Plus(m.inner).Consume(v)
	if !p.Ok {
		return matched[[]T](0, nil)
	}
	return p
}

func (m *starMatcher[T]) Match(v StringView) ([]T, bool) {
	return matchViaConsume[[]T](m, v)
}

func (m *starMatcher[T]) ExactSize() int   { return Unknown }
func (m *starMatcher[T]) BiggestSize() int { return Unknown }

// optionalMatcher wraps inner's result in an Optional value.
type optionalMatcher[T any] struct {
	inner Matcher[T]
}

// OptionalC matches inner zero or one times, always succeeding. Unlike
// Star/Plus the absence of a match is observable in the returned value
// via Optional.Present, since Optional carries exactly one element
// rather than a list.
func OptionalC[T any](inner Matcher[T]) Matcher[Optional[T]] {
	return &optionalMatcher[T]{inner: inner}
}

func (m *optionalMatcher[T]) Consume(v StringView) Piece[Optional[T]] {
	p := m.inner.Consume(v)
	if !p.Ok {
		return matched(0, Optional[T]{})
	}
	return matched(p.Length, Optional[T]{Present: true, Value: p.Value})
}

func (m *optionalMatcher[T]) Match(v StringView) (Optional[T], bool) {
	return matchViaConsume[Optional[T]](m, v)
}

func (m *optionalMatcher[T]) ExactSize() int   { return Unknown }
func (m *optionalMatcher[T]) BiggestSize() int { return Unknown }

// startWithMatcher tries prefixes of increasing length.
type startWithMatcher[T any] struct {
	inner Matcher[T]
}

// StartWith tries prefixes of v of increasing length (bounded by
// inner's BiggestSize when known, else v's own size) and returns the
// first one inner fully matches.
func StartWith[T any](inner Matcher[T]) Matcher[T] {
	return &startWithMatcher[T]{inner: inner}
}

func (m *startWithMatcher[T]) Consume(v StringView) Piece[T] {
	max := v.Size()
	if b := m.inner.BiggestSize(); b >= 0 && b < max {
		max = b
	}
	for length := 0; length <= max; length++ {
		if value, ok := m.inner.Match(v.Substr(0, length)); ok {
			return matched(length, value)
		}
	}
	return fail[T]()
}

func (m *startWithMatcher[T]) Match(v StringView) (T, bool) {
	return matchViaConsume[T](m, v)
}

func (m *startWithMatcher[T]) ExactSize() int   { return Unknown }
func (m *startWithMatcher[T]) BiggestSize() int { return m.inner.BiggestSize() }

// endWithMatcher tries suffixes of increasing starting offset.
type endWithMatcher[T any] struct {
	inner Matcher[T]
}

// EndWith tries suffixes of v at increasing starting offsets and
// returns the first one inner fully matches (through the end of v).
// The reported length is that suffix's length, i.e. measured from its
// start through the end of the view.
func EndWith[T any](inner Matcher[T]) Matcher[T] {
	return &endWithMatcher[T]{inner: inner}
}

func (m *endWithMatcher[T]) Consume(v StringView) Piece[T] {
	for offset := 0; offset <= v.Size(); offset++ {
		if value, ok := m.inner.Match(v.Substr(offset)); ok {
			return matched(v.Size()-offset, value)
		}
	}
	return fail[T]()
}

func (m *endWithMatcher[T]) Match(v StringView) (T, bool) {
	return matchViaConsume[T](m, v)
}

func (m *endWithMatcher[T]) ExactSize() int   { return Unknown }
func (m *endWithMatcher[T]) BiggestSize() int { return Unknown }

// repeatMatcher matches inner exactly n times back-to-back.
type repeatMatcher[T any] struct {
	n     int
	inner Matcher[T]
}

// Repeat matches inner exactly n times in a row. Both Match and
// Consume require all n repetitions to succeed in order.
func Repeat[T any](n int, inner Matcher[T]) Matcher[[]T] {
	return &repeatMatcher[T]{n: n, inner: inner}
}

func (m *repeatMatcher[T]) Consume(v StringView) Piece[[]T] {
	values := make([]T, 0, m.n)
	total := 0
	for i := 0; i < m.n; i++ {
		p := m.inner.Consume(v.Substr(total))
		if !p.Ok {
			return fail[[]T]()
		}
		values = append(values, p.Value)
		total += p.Length
	}
	return matched(total, values)
}

func (m *repeatMatcher[T]) Match(v StringView) ([]T, bool) {
	return matchViaConsume[[]T](m, v)
}

func (m *repeatMatcher[T]) ExactSize() int {
	if inner := m.inner.ExactSize(); inner >= 0 {
		return inner * m.n
	}
	return Unknown
}

func (m *repeatMatcher[T]) BiggestSize() int {
	if inner := m.inner.BiggestSize(); inner >= 0 {
		return inner * m.n
	}
	return Unknown
}

// wordMatcher concatenates a Plus(inner) into a single string.
type wordMatcher[T any] struct {
	inner Matcher[T]
}

// Word matches Plus(inner), mapping its list of byte-producing
// sub-matches into the concatenation of their matched bytes.
func Word[T any](inner Matcher[T]) Matcher[string] {
	return &wordMatcher[T]{inner: inner}
}

func (m *wordMatcher[T]) Consume(v StringView) Piece[string] {
	p := Plus(m.inner).Consume(v)
	if !p.Ok {
		return fail[string]()
	}
	return matched(p.Length, v.Substr(0, p.Length).String())
}

func (m *wordMatcher[T]) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *wordMatcher[T]) ExactSize() int   { return Unknown }
func (m *wordMatcher[T]) BiggestSize() int { return Unknown }
