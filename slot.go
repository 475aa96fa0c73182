package combi

// slot is a type-erased Matcher[T1] wrapped so a Rule can hold an
// ordered list of slots whose element types differ from each other and
// from the Rule's own result type. Each slot closes over its concrete
// Matcher[T1] via asSlot and exposes only what rule resolution needs:
// consume a view, report the matched length and an any-typed value.
type slot struct {
	consume func(v StringView) (value interface{}, length int, ok bool)
}

// asSlot erases a Matcher[T] into a slot.
func asSlot[T any](m Matcher[T]) slot {
	return slot{
		consume: func(v StringView) (interface{}, int, bool) {
			p := m.Consume(v)
			return p.Value, p.Length, p.Ok
		},
	}
}

// Skip is a type-erased matcher usable in a Fragment's skip set. Its
// value is discarded; only the consumed length matters.
type Skip struct {
	consume func(v StringView) (length int, ok bool)
}

// Try runs the erased matcher against v, for direct testing of a Skip
// value outside a Fragment's growth loop.
func (s Skip) Try(v StringView) (int, bool) {
	return s.consume(v)
}

// AsSkip erases any Matcher[T] into a Skip. Call it once per matcher
// when building a Fragment's skip set, e.g. Fragment.Skip(AsSkip(Blank())).
func AsSkip[T any](m Matcher[T]) Skip {
	return Skip{
		consume: func(v StringView) (int, bool) {
			p := m.Consume(v)
			return p.Length, p.Ok
		},
	}
}
