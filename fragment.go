package combi

import "github.com/sirupsen/logrus"

// Fragment is a named non-terminal: an ordered set of Rules (built with
// Handle1..Handle6) plus an optional skip set. It implements Matcher[T]
// itself, so fragments compose into larger grammars exactly like any
// other matcher, including as a slot of their own rules for recursion.
type Fragment[T any] struct {
	name       string
	nonLRRules []*rule[T]
	lrRules    []*rule[T]
	skips      []Skip
	skipAtEnd  bool
	config     Config
	logger     *logrus.Logger
}

// NewFragment creates an empty, named fragment. Rules are attached
// afterward with Handle1..Handle6.
func NewFragment[T any](name string) *Fragment[T] {
	return &Fragment[T]{name: name}
}

// Select builds a fragment whose only rules are plain alternation among
// the given matchers, each passing its value through unchanged — a
// shortcut for the common case of a non-terminal that just picks among
// several already-typed alternatives.
func Select[T any](name string, ms ...Matcher[T]) *Fragment[T] {
	f := NewFragment[T](name)
	for _, m := range ms {
		m := m
		Handle1[T, T](f, func(v T) T { return v }, m)
	}
	return f
}

// Skip appends matchers to f's skip set. Before resolving each slot
// (and again before the semantic action if SkipAtEnd is set), the first
// skip matcher that consumes a nonempty prefix has that prefix
// silently dropped; later skip matchers are not tried that round.
func (f *Fragment[T]) Skip(skips ...Skip) *Fragment[T] {
	f.skips = append(f.skips, skips...)
	return f
}

// SkipAtEnd controls whether the skip set is also consulted once more
// after the last slot, before the semantic action runs.
func (f *Fragment[T]) SkipAtEnd(yes bool) *Fragment[T] {
	f.skipAtEnd = yes
	return f
}

// WithConfig attaches growth-loop tuning to f.
func (f *Fragment[T]) WithConfig(cfg Config) *Fragment[T] {
	f.config = cfg
	return f
}

// WithLogger attaches a logger that traces each left-recursive growth
// pass at debug level. A nil logger (the default) disables tracing.
func (f *Fragment[T]) WithLogger(logger *logrus.Logger) *Fragment[T] {
	f.logger = logger
	return f
}

func (f *Fragment[T]) addRule(r *rule[T]) {
	if r.leftRecursive {
		f.lrRules = append(f.lrRules, r)
	} else {
		f.nonLRRules = append(f.nonLRRules, r)
	}
}

func (f *Fragment[T]) shouldSkip(v StringView) int {
	for _, s := range f.skips {
		if length, ok := s.consume(v); ok && length > 0 {
			return length
		}
	}
	return 0
}

// runGrowth seeds a pool from the non-left-recursive rules, then
// repeatedly re-feeds the left-recursive rules with every pool item
// until a full sweep adds nothing new, calling onCandidate for every
// successful resolution (seed or grown) along the way.
func (f *Fragment[T]) runGrowth(v StringView, onCandidate func(p Piece[T], weight int)) {
	pool := NewYielder[Piece[T]]()
	for _, r := range f.nonLRRules {
		p := r.resolve(v, f.shouldSkip, f.skipAtEnd)
		if p.Ok {
			pool.Push(p)
			onCandidate(p, r.weight)
		}
	}
	if len(f.lrRules) == 0 {
		return
	}

	cursors := make([]Cursor, len(f.lrRules))
	passes := 0
	for {
		grew := false
		for li, r := range f.lrRules {
			g := pool.Drain(&cursors[li], func(seed Piece[T]) bool {
				p := r.resolveWithSeed(v, seed.Value, seed.Length, f.shouldSkip, f.skipAtEnd)
				if p.Ok {
					pool.Push(p)
					onCandidate(p, r.weight)
					return true
				}
				return false
			})
			if g {
				grew = true
			}
		}
		passes++
		if f.logger != nil {
			f.logger.WithFields(logrus.Fields{
				"fragment":  f.name,
				"pass":      passes,
				"pool_size": pool.Len(),
			}).Debug("left-recursive growth pass")
		}
		if !grew {
			break
		}
		if f.config.MaxPasses > 0 && passes >= f.config.MaxPasses {
			if f.logger != nil {
				f.logger.WithField("fragment", f.name).Warn("left-recursive growth stopped by MaxPasses")
			}
			break
		}
	}
}

// Consume tries every rule (seeding non-left-recursive rules, then
// growing left-recursive ones to a fixpoint) and returns the longest
// successful match, the first one found among ties.
func (f *Fragment[T]) Consume(v StringView) Piece[T] {
	best := fail[T]()
	f.runGrowth(v, func(p Piece[T], weight int) {
		if !best.Ok || p.Length > best.Length {
			best = p
		}
	})
	return best
}

// Match requires the whole view to be consumed. Among the candidates
// that do, the highest-weight one wins; ties go to whichever was found
// first.
func (f *Fragment[T]) Match(v StringView) (T, bool) {
	var best Piece[T]
	bestWeight := 0
	found := false
	f.runGrowth(v, func(p Piece[T], weight int) {
		if p.Length != v.Size() {
			return
		}
		if !found || weight > bestWeight {
			best = p
			bestWeight = weight
			found = true
		}
	})
	if !found {
		var zero T
		return zero, false
	}
	return best.Value, true
}

func (f *Fragment[T]) ExactSize() int   { return Unknown }
func (f *Fragment[T]) BiggestSize() int { return Unknown }

// SafeConsume is Consume with programmer errors (a rule with no bound
// action, a nil dereference inside a semantic action) recovered and
// returned as an error instead of propagating as a panic.
func (f *Fragment[T]) SafeConsume(v StringView) (piece Piece[T], err error) {
	defer recoverProgrammerError(&err)
	piece = f.Consume(v)
	return
}

// SafeMatch is Match with programmer errors recovered, as SafeConsume.
func (f *Fragment[T]) SafeMatch(v StringView) (value T, ok bool, err error) {
	defer recoverProgrammerError(&err)
	value, ok = f.Match(v)
	return
}

// Request is the diagnostic sibling of Consume: alongside the matched
// length and value it reports the 1-based line/column where the match
// began in the buffer v was sliced from, and it recovers programmer
// errors the way SafeConsume does.
func (f *Fragment[T]) Request(v StringView) (result Result[T], err error) {
	defer recoverProgrammerError(&err)
	piece := f.Consume(v)
	if !piece.Ok {
		return Result[T]{}, nil
	}
	pos := newPositionCalculator(v.buffer).at(v.offset)
	return Result[T]{Length: piece.Length, Value: piece.Value, Ok: true, Position: pos}, nil
}
