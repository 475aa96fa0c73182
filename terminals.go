package combi

import (
	"math"
	"sort"
)

// constantMatcher matches a fixed byte sequence literally.
type constantMatcher struct {
	text string
}

// Constant matches the given text literally. The matched value is the
// text itself.
func Constant(text string) Matcher[string] {
	return &constantMatcher{text: text}
}

// Char matches a single fixed byte. Equivalent to Constant of a
// one-byte string, kept separate because its ExactSize is always 1.
func Char(c byte) Matcher[string] {
	return &constantMatcher{text: string(c)}
}

func (m *constantMatcher) Consume(v StringView) Piece[string] {
	if v.HasPrefix(m.text) {
		return matched(len(m.text), m.text)
	}
	return fail[string]()
}

func (m *constantMatcher) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *constantMatcher) ExactSize() int   { return len(m.text) }
func (m *constantMatcher) BiggestSize() int { return len(m.text) }

// runeSetMatcher matches one byte drawn from an explicit set. Matching
// is strictly bytewise; no rune decoding is performed.
type runeSetMatcher struct {
	sorted []byte
}

// AnyOf matches a single byte that belongs to set.
func AnyOf(set string) Matcher[string] {
	sorted := []byte(set)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &runeSetMatcher{sorted: sorted}
}

func (m *runeSetMatcher) Consume(v StringView) Piece[string] {
	if v.Size() == 0 {
		return fail[string]()
	}
	b := v.ByteAt(0)
	i := sort.Search(len(m.sorted), func(i int) bool { return m.sorted[i] >= b })
	if i < len(m.sorted) && m.sorted[i] == b {
		return matched(1, v.Substr(0, 1).String())
	}
	return fail[string]()
}

func (m *runeSetMatcher) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *runeSetMatcher) ExactSize() int   { return 1 }
func (m *runeSetMatcher) BiggestSize() int { return 1 }

// runeRangeMatcher matches one byte within an inclusive [lo, hi] range.
type runeRangeMatcher struct {
	lo, hi byte
}

// AnyIn matches a single byte b such that lo <= b <= hi.
func AnyIn(lo, hi byte) Matcher[string] {
	return &runeRangeMatcher{lo: lo, hi: hi}
}

func (m *runeRangeMatcher) Consume(v StringView) Piece[string] {
	if v.Size() == 0 {
		return fail[string]()
	}
	b := v.ByteAt(0)
	if b >= m.lo && b <= m.hi {
		return matched(1, v.Substr(0, 1).String())
	}
	return fail[string]()
}

func (m *runeRangeMatcher) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *runeRangeMatcher) ExactSize() int   { return 1 }
func (m *runeRangeMatcher) BiggestSize() int { return 1 }

// integerMatcher matches the longest nonempty run of decimal digits
// and parses it.
type integerMatcher struct{}

// Integer matches the longest nonempty digit run [0-9]+ and yields its
// parsed value. A digit run too wide for an int64 dismatches rather
// than wrapping.
func Integer() Matcher[int64] {
	return integerMatcher{}
}

func (integerMatcher) Consume(v StringView) Piece[int64] {
	n := 0
	for n < v.Size() && v.ByteAt(n) >= '0' && v.ByteAt(n) <= '9' {
		n++
	}
	if n == 0 {
		return fail[int64]()
	}

	var value int64
	for i := 0; i < n; i++ {
		d := int64(v.ByteAt(i) - '0')
		if value > (math.MaxInt64-d)/10 {
			// would overflow a signed 64-bit integer: fail, as permitted.
			return fail[int64]()
		}
		value = value*10 + d
	}
	return matched(n, value)
}

func (m integerMatcher) Match(v StringView) (int64, bool) {
	return matchViaConsume[int64](m, v)
}

func (integerMatcher) ExactSize() int   { return Unknown }
func (integerMatcher) BiggestSize() int { return Unknown }
