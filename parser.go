package parsekit

// A Parser consumes tokens of type T from a Cursor and produces a value of
// type O, or fails with an error of type E. S is the slice type the
// underlying Input produces (string, []byte, mem.RO, []T, ...); C is the
// type of contextual data threaded down via ThenWithCtx/Configure.
//
// Parse and Skip must agree: calling Skip must consume exactly the input
// that the corresponding Parse call would, fail under exactly the same
// conditions, and emit the same errors — it must simply avoid constructing
// O when the caller has no use for it. This is parsekit's replacement for
// chumsky's compile-time Mode parameter, which Go cannot express because
// methods cannot carry their own type parameters. Every combinator in this
// package upholds the agreement by running the same logic for Skip as for
// Parse: most are ParseFunc values, whose Skip runs the full function
// (children's Parse methods and any mapping function included) and drops
// the value. Only IgnoreThen, ThenIgnore, Slice, AndIs, Not and the
// separators of SeparatedBy/SeparatedByExactly call a child's Skip rather
// than its Parse.
//
// A failed Parse or Skip call leaves the cursor's position and error
// behavior up to the specific combinator: primitives never advance the
// cursor on failure, and combinators that try several alternatives rewind
// to their starting position between attempts (see Or).
type Parser[T any, O any, S any, C any, E ParseError[T]] interface {
	// Parse attempts to consume a value from cur. On success it returns
	// the value, a zero Located[E], and true. On failure it returns a
	// zero O, the error located at the furthest position examined, and
	// false.
	Parse(cur Cursor[T, S, C, E]) (O, Located[E], bool)

	// Skip behaves like Parse but discards the produced value. Combinators
	// such as IgnoreThen, ThenIgnore and Slice call it on a child whose
	// value they drop.
	Skip(cur Cursor[T, S, C, E]) (Located[E], bool)
}

// ParseFunc adapts a plain function into a Parser. Its Skip method is the
// naive one (call the function and discard the result); combinators that
// need a cheaper Skip implement Parser directly instead of via ParseFunc.
type ParseFunc[T any, O any, S any, C any, E ParseError[T]] func(Cursor[T, S, C, E]) (O, Located[E], bool)

// Parse implements Parser.
func (f ParseFunc[T, O, S, C, E]) Parse(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
	return f(cur)
}

// Skip implements Parser.
func (f ParseFunc[T, O, S, C, E]) Skip(cur Cursor[T, S, C, E]) (Located[E], bool) {
	_, err, ok := f(cur)
	return err, ok
}

// Pair is the output of Then: the result of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}
