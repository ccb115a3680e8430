package parsekit

// Map transforms a parser's output with f.
func Map[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], f func(A) B) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		av, err, ok := p.Parse(cur)
		if !ok {
			var zero B
			return zero, err, false
		}
		return f(av), Located[E]{}, true
	})
}

// MapWithSpan transforms a parser's output with f, which also receives the
// span of input the parser consumed.
func MapWithSpan[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], f func(A, Span) B) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		start := cur.Save()
		av, err, ok := p.Parse(cur)
		if !ok {
			var zero B
			return zero, err, false
		}
		return f(av, cur.SpanSince(start)), Located[E]{}, true
	})
}

// MapWithState transforms a parser's output with f, which also receives
// the cursor's context/state value. This is parsekit's counterpart to
// chumsky's map_with_state, folded into the merged context/state value
// described on Cursor.
func MapWithState[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], f func(A, C) B) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		av, err, ok := p.Parse(cur)
		if !ok {
			var zero B
			return zero, err, false
		}
		return f(av, cur.Ctx), Located[E]{}, true
	})
}

// TryMap transforms a parser's output with f, which may itself fail by
// returning ok == false along with the error to report.
func TryMap[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], f func(A, Span) (B, E, bool)) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		start := cur.Save()
		av, err, ok := p.Parse(cur)
		if !ok {
			var zero B
			return zero, err, false
		}
		bv, ferr, fok := f(av, cur.SpanSince(start))
		if !fok {
			var zero B
			return zero, Located[E]{Pos: start, Err: ferr}, false
		}
		return bv, Located[E]{}, true
	})
}

// To replaces a parser's output with a constant value.
func To[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], val B) Parser[T, B, S, C, E] {
	return Map(p, func(A) B { return val })
}

// Ignored discards a parser's output, useful when only its success/failure
// and span matter.
func Ignored[T any, A any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E]) Parser[T, struct{}, S, C, E] {
	return To[T, A, struct{}](p, struct{}{})
}

// Slice discards a parser's output and instead returns the raw slice of
// input it consumed, using the underlying Input's zero-copy Slice method.
func Slice[T any, A any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E]) Parser[T, S, S, C, E] {
	return ParseFunc[T, S, S, C, E](func(cur Cursor[T, S, C, E]) (S, Located[E], bool) {
		start := cur.Save()
		if err, ok := p.Skip(cur); !ok {
			var zero S
			return zero, err, false
		}
		return cur.Slice(start, cur.Pos()), Located[E]{}, true
	})
}

// MapSlice is Slice followed by Map: the parser's matched input slice is
// passed through f rather than returned as-is.
func MapSlice[T any, A any, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], f func(S) B) Parser[T, B, S, C, E] {
	return Map(Slice(p), f)
}
