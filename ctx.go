package parsekit

// Configure derives a per-invocation context/config for p from the
// enclosing context, via derive(current C) -> C2, and runs p with that
// derived value instead of whatever it would otherwise see. This is how a
// grammar expresses "a parser whose behavior depends on a configuration
// record" (spec.md §4.9) without a separate config type: since parsekit
// folds chumsky's State/Context split into one C per Cursor (see cursor.go),
// deriving a new C2 from the current C *is* deriving a new configuration.
// The canonical use is indentation-sensitive whitespace: Configure(spaces,
// func(indent int) int { return indent }) reruns the exactly-N-spaces
// parser with whatever indent level the enclosing block established.
func Configure[T any, O any, S any, C any, C2 any, E ParseError[T]](p Parser[T, O, S, C2, E], derive func(C) C2) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		return p.Parse(withCtx[T, S, C, C2, E](cur, derive(cur.Ctx)))
	})
}

// ThenWithCtx runs a, then runs b with its context replaced by f(a's
// output, cur's current context), pairing their outputs. This is
// parsekit's translation of chumsky's then_with_ctx/ParserExtra::Context
// swap: the context type seen by b (C2) can differ entirely from the
// context type seen by a and the combinator as a whole (C), because
// Cursor's core is shared by pointer and only the Ctx field changes
// between the two calls.
func ThenWithCtx[T any, A, B any, S any, C any, C2 any, E ParseError[T]](a Parser[T, A, S, C, E], f func(A, C) C2, b Parser[T, B, S, C2, E]) Parser[T, Pair[A, B], S, C, E] {
	return ParseFunc[T, Pair[A, B], S, C, E](func(cur Cursor[T, S, C, E]) (Pair[A, B], Located[E], bool) {
		av, err, ok := a.Parse(cur)
		if !ok {
			var zero Pair[A, B]
			return zero, err, false
		}
		bv, err, ok := b.Parse(withCtx[T, S, C, C2, E](cur, f(av, cur.Ctx)))
		if !ok {
			var zero Pair[A, B]
			return zero, err, false
		}
		return Pair[A, B]{First: av, Second: bv}, Located[E]{}, true
	})
}

// WithCtx runs p with its context replaced by the constant ctx, ignoring
// whatever context the enclosing parser carries.
func WithCtx[T any, O any, S any, C any, C2 any, E ParseError[T]](p Parser[T, O, S, C2, E], ctx C2) Parser[T, O, S, C, E] {
	return Configure[T, O, S, C, C2, E](p, func(C) C2 { return ctx })
}
