package combi

// skipFn consults a Fragment's skip set against the current view and
// reports how many bytes to silently drop, or 0 for none.
type skipFn func(v StringView) int

// rule is the type-erased, internal half of a Rule: an ordered list of
// slots, the semantic action that turns their collected values into
// the fragment's result type, and the bookkeeping Fragment needs to
// run it (left-recursion, tie-break weight).
type rule[T any] struct {
	name          string // owning fragment's name, for error messages
	slots         []slot
	action        func(vals []interface{}) T
	leftRecursive bool
	weight        int
}

// resolve runs a non-left-recursive rule against v from its first slot.
func (r *rule[T]) resolve(v StringView, shouldSkip skipFn, skipAtEnd bool) Piece[T] {
	return r.resolveFrom(v, 0, nil, 0, shouldSkip, skipAtEnd)
}

// resolveWithSeed runs a left-recursive rule whose first slot is the
// owning fragment itself: seed/seedLength stand in for that slot
// having already matched, and resolution continues from slot index 1.
func (r *rule[T]) resolveWithSeed(v StringView, seed interface{}, seedLength int, shouldSkip skipFn, skipAtEnd bool) Piece[T] {
	vals := make([]interface{}, 1, len(r.slots))
	vals[0] = seed
	return r.resolveFrom(v.Substr(seedLength), 1, vals, seedLength, shouldSkip, skipAtEnd)
}

func (r *rule[T]) resolveFrom(v StringView, startIdx int, vals []interface{}, consumedSoFar int, shouldSkip skipFn, skipAtEnd bool) Piece[T] {
	total := consumedSoFar
	cur := v
	for i := startIdx; i < len(r.slots); i++ {
		for {
			k := shouldSkip(cur)
			if k <= 0 {
				break
			}
			cur = cur.Substr(k)
			total += k
		}
		value, length, ok := r.slots[i].consume(cur)
		if !ok {
			return fail[T]()
		}
		vals = append(vals, value)
		cur = cur.Substr(length)
		total += length
	}
	if skipAtEnd {
		for {
			k := shouldSkip(cur)
			if k <= 0 {
				break
			}
			cur = cur.Substr(k)
			total += k
		}
	}
	if r.action == nil {
		panic(&NoExecuteDefinitionError{Fragment: r.name})
	}
	return matched(total, r.invokeAction(vals))
}

// invokeAction calls the user-supplied action, converting any panic
// raised inside the action (a nil dereference or any other runtime
// panic) into a NullReferenceError. Panics that are already one of this
// package's own error types pass through unchanged.
func (r *rule[T]) invokeAction(vals []interface{}) (result T) {
	defer func() {
		if rec := recover(); rec != nil {
			switch rec.(type) {
			case *NoExecuteDefinitionError, *NullReferenceError:
				panic(rec)
			default:
				panic(&NullReferenceError{Fragment: r.name, Cause: rec})
			}
		}
	}()
	return r.action(vals)
}

func resolveWeight(weight []int) int {
	if len(weight) > 0 {
		return weight[0]
	}
	return -1
}

// isSelfSlot reports whether m is literally the fragment f itself, by
// pointer identity — the criterion that marks a rule left-recursive.
func isSelfSlot[T1, T any](f *Fragment[T], m Matcher[T1]) bool {
	if frag, ok := any(m).(*Fragment[T]); ok {
		return frag == f
	}
	return false
}

// Handle1 attaches a one-slot rule to f. A nil action is accepted and
// registers as a rule with no bound action, which Validate reports and
// resolving it raises NoExecuteDefinitionError — useful as a
// placeholder while a grammar is under construction.
func Handle1[T1, T any](f *Fragment[T], action func(T1) T, slot1 Matcher[T1], weight ...int) {
	if isSelfSlot[T1, T](f, slot1) {
		panic(&combiError{value: "rule " + f.name + ": a rule's sole slot cannot be its own fragment"})
	}
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T { return action(vals[0].(T1)) }
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1)},
		action:        wrapped,
		leftRecursive: false,
		weight:        resolveWeight(weight),
	})
}

// Handle2 attaches a two-slot rule to f. When slot1 is f itself the
// rule is registered as left-recursive and fed through the seeded
// growth fixpoint instead of being tried top-down.
func Handle2[T1, T2, T any](f *Fragment[T], action func(T1, T2) T, slot1 Matcher[T1], slot2 Matcher[T2], weight ...int) {
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T { return action(vals[0].(T1), vals[1].(T2)) }
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1), asSlot(slot2)},
		action:        wrapped,
		leftRecursive: isSelfSlot[T1, T](f, slot1),
		weight:        resolveWeight(weight),
	})
}

// Handle3 attaches a three-slot rule to f.
func Handle3[T1, T2, T3, T any](f *Fragment[T], action func(T1, T2, T3) T, slot1 Matcher[T1], slot2 Matcher[T2], slot3 Matcher[T3], weight ...int) {
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T { return action(vals[0].(T1), vals[1].(T2), vals[2].(T3)) }
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1), asSlot(slot2), asSlot(slot3)},
		action:        wrapped,
		leftRecursive: isSelfSlot[T1, T](f, slot1),
		weight:        resolveWeight(weight),
	})
}

// Handle4 attaches a four-slot rule to f.
func Handle4[T1, T2, T3, T4, T any](f *Fragment[T], action func(T1, T2, T3, T4) T, slot1 Matcher[T1], slot2 Matcher[T2], slot3 Matcher[T3], slot4 Matcher[T4], weight ...int) {
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T {
			return action(vals[0].(T1), vals[1].(T2), vals[2].(T3), vals[3].(T4))
		}
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1), asSlot(slot2), asSlot(slot3), asSlot(slot4)},
		action:        wrapped,
		leftRecursive: isSelfSlot[T1, T](f, slot1),
		weight:        resolveWeight(weight),
	})
}

// Handle5 attaches a five-slot rule to f.
func Handle5[T1, T2, T3, T4, T5, T any](f *Fragment[T], action func(T1, T2, T3, T4, T5) T, slot1 Matcher[T1], slot2 Matcher[T2], slot3 Matcher[T3], slot4 Matcher[T4], slot5 Matcher[T5], weight ...int) {
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T {
			return action(vals[0].(T1), vals[1].(T2), vals[2].(T3), vals[3].(T4), vals[4].(T5))
		}
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1), asSlot(slot2), asSlot(slot3), asSlot(slot4), asSlot(slot5)},
		action:        wrapped,
		leftRecursive: isSelfSlot[T1, T](f, slot1),
		weight:        resolveWeight(weight),
	})
}

// Handle6 attaches a six-slot rule to f.
func Handle6[T1, T2, T3, T4, T5, T6, T any](f *Fragment[T], action func(T1, T2, T3, T4, T5, T6) T, slot1 Matcher[T1], slot2 Matcher[T2], slot3 Matcher[T3], slot4 Matcher[T4], slot5 Matcher[T5], slot6 Matcher[T6], weight ...int) {
	var wrapped func([]interface{}) T
	if action != nil {
		wrapped = func(vals []interface{}) T {
			return action(vals[0].(T1), vals[1].(T2), vals[2].(T3), vals[3].(T4), vals[4].(T5), vals[5].(T6))
		}
	}
	f.addRule(&rule[T]{
		name:          f.name,
		slots:         []slot{asSlot(slot1), asSlot(slot2), asSlot(slot3), asSlot(slot4), asSlot(slot5), asSlot(slot6)},
		action:        wrapped,
		leftRecursive: isSelfSlot[T1, T](f, slot1),
		weight:        resolveWeight(weight),
	})
}
