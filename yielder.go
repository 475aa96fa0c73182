package combi

// Yielder is a growable ordered sequence with stable indices: producers
// append with Push, consumers track a read cursor with Drain. Growth
// during iteration is intended — Drain always re-checks Len() so a
// consumer that pushes into the same Yielder while draining will see
// its own new items on the very next loop iteration, and a distinct
// consumer with a lagging Cursor will pick them up next time it drains.
//
// This is the engine's only piece of per-evaluation mutable state: it
// lives on the call stack of Fragment.Consume/Match and is never
// shared across evaluations.
type Yielder[T any] struct {
	items []T
}

// NewYielder builds a Yielder already seeded with the given items.
func NewYielder[T any](seed ...T) *Yielder[T] {
	y := &Yielder[T]{}
	y.items = append(y.items, seed...)
	return y
}

// Push appends an item, making it visible to any Cursor on its next
// Drain.
func (y *Yielder[T]) Push(item T) {
	y.items = append(y.items, item)
}

// Len reports how many items have been pushed so far.
func (y *Yielder[T]) Len() int {
	return len(y.items)
}

// At returns the item at a stable index.
func (y *Yielder[T]) At(i int) T {
	return y.items[i]
}

// Cursor is a consumer's private read position into a Yielder.
type Cursor struct {
	at int
}

// Drain calls fn once for every item at or past the cursor's current
// position, advancing the cursor as it goes, including items fn itself
// (or a sibling consumer sharing the same Yielder) pushes during the
// call. It reports whether fn returned true for any item.
func (y *Yielder[T]) Drain(c *Cursor, fn func(item T) bool) (grew bool) {
	for c.at < y.Len() {
		item := y.At(c.at)
		c.at++
		if fn(item) {
			grew = true
		}
	}
	return grew
}
