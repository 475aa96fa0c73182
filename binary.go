package combi

// All binary combinators return the matched prefix text as their
// value, independent of the operands' own element types — so
// Or/And/Range are generic over two possibly distinct operand types
// T1, T2 and re-derive the string from the consumed length rather
// than reusing either operand's typed payload.

// orMatcher tries the left operand, then the right.
type orMatcher[T1, T2 any] struct {
	left  Matcher[T1]
	right Matcher[T2]
}

// Or matches left, and if that fails, right. The value is the matched
// prefix string.
func Or[T1, T2 any](left Matcher[T1], right Matcher[T2]) Matcher[string] {
	return &orMatcher[T1, T2]{left: left, right: right}
}

func (m *orMatcher[T1, T2]) Consume(v StringView) Piece[string] {
	if p := m.left.Consume(v); p.Ok {
		return matched(p.Length, v.Substr(0, p.Length).String())
	}
	if p := m.right.Consume(v); p.Ok {
		return matched(p.Length, v.Substr(0, p.Length).String())
	}
	return fail[string]()
}

func (m *orMatcher[T1, T2]) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *orMatcher[T1, T2]) ExactSize() int {
	l, r := m.left.ExactSize(), m.right.ExactSize()
	if l >= 0 && l == r {
		return l
	}
	return Unknown
}

func (m *orMatcher[T1, T2]) BiggestSize() int {
	l, r := m.left.BiggestSize(), m.right.BiggestSize()
	if l < 0 || r < 0 {
		return Unknown
	}
	if l > r {
		return l
	}
	return r
}

// andMatcher requires both operands to consume the identical length;
// a shorter-left/longer-right pair is a dismatch rather than a
// truncated match.
type andMatcher[T1, T2 any] struct {
	left  Matcher[T1]
	right Matcher[T2]
}

// And requires left and right to both succeed, consuming exactly the
// same number of bytes. The value is that shared prefix string.
func And[T1, T2 any](left Matcher[T1], right Matcher[T2]) Matcher[string] {
	return &andMatcher[T1, T2]{left: left, right: right}
}

func (m *andMatcher[T1, T2]) Consume(v StringView) Piece[string] {
	pl := m.left.Consume(v)
	if !pl.Ok {
		return fail[string]()
	}
	pr := m.right.Consume(v)
	if !pr.Ok || pr.Length != pl.Length {
		return fail[string]()
	}
	return matched(pl.Length, v.Substr(0, pl.Length).String())
}

func (m *andMatcher[T1, T2]) Match(v StringView) (string, bool) {
	return matchViaConsume[string](m, v)
}

func (m *andMatcher[T1, T2]) ExactSize() int {
	l, r := m.left.ExactSize(), m.right.ExactSize()
	if l >= 0 && l == r {
		return l
	}
	return Unknown
}

func (m *andMatcher[T1, T2]) BiggestSize() int {
	l, r := m.left.BiggestSize(), m.right.BiggestSize()
	if l < 0 {
		return r
	}
	if r < 0 {
		return l
	}
	if l < r {
		return l
	}
	return r
}

// Range is equivalent to And(StartWith(left), EndWith(right)): both
// operands are evaluated against the same view, and And's equal-length
// rule applies identically (see unary.go for the StartWith/EndWith
// window-scan semantics this builds on).
func Range[T1, T2 any](left Matcher[T1], right Matcher[T2]) Matcher[string] {
	return And[T1, T2](StartWith(left), EndWith(right))
}
