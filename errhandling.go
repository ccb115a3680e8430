package parsekit

// MapErr transforms a failing parser's error with f.
func MapErr[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], f func(E) E) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		v, err, ok := p.Parse(cur)
		if !ok {
			err.Err = f(err.Err)
		}
		return v, err, ok
	})
}

// MapErrWithSpan transforms a failing parser's error with f, which also
// receives the span from the parser's starting position to the point of
// failure.
func MapErrWithSpan[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], f func(E, Span) E) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		start := cur.Save()
		v, err, ok := p.Parse(cur)
		if !ok {
			err.Err = f(err.Err, cur.SpanSince(start))
		}
		return v, err, ok
	})
}

// MapErrWithState transforms a failing parser's error with f, which also
// receives the cursor's context/state value.
func MapErrWithState[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], f func(E, C) E) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		v, err, ok := p.Parse(cur)
		if !ok {
			err.Err = f(err.Err, cur.Ctx)
		}
		return v, err, ok
	})
}

// Validate runs p, then passes its output through check, which may emit
// zero or more non-fatal errors via the given Emitter and return a
// (possibly transformed) output. Validate itself never fails on p's
// behalf — only p's own failure fails the parse; check's emitted errors
// surface later via the cursor's accumulated error list.
func Validate[T any, A, B any, S any, C any, E ParseError[T]](p Parser[T, A, S, C, E], check func(A, Span, *Emitter[T, E]) B) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		start := cur.Save()
		av, err, ok := p.Parse(cur)
		if !ok {
			var zero B
			return zero, err, false
		}
		var em Emitter[T, E]
		bv := check(av, cur.SpanSince(start), &em)
		for _, e := range em.Errors() {
			cur.Emit(e)
		}
		return bv, Located[E]{}, true
	})
}

// OrElse runs p; on failure it calls f with the error and substitutes
// whatever output f produces, turning a would-be failure into a success.
// Unlike RecoverWith, OrElse does not reparse the input at all — it is for
// cases where a sensible fallback value can be derived from the error
// alone.
func OrElse[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], f func(E) O) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		v, err, ok := p.Parse(cur)
		if ok {
			return v, Located[E]{}, true
		}
		return f(err.Err), Located[E]{}, true
	})
}

// RecoverWith runs p; on failure it rewinds to p's starting position and
// runs fallback instead. If fallback succeeds, p's error is emitted as a
// non-fatal error and fallback's output is returned; if fallback also
// fails, the cursor is rewound and p's original error is returned, with
// nothing emitted. This is the combinator that lets a grammar skip past a
// malformed construct (fallback commonly built from TakeUntil) and keep
// parsing the rest of the input rather than aborting outright.
func RecoverWith[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], fallback Parser[T, O, S, C, E]) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		v, err, ok := p.Parse(cur)
		if ok {
			return v, Located[E]{}, true
		}
		cur.Rewind(start)
		cur.TruncateErrors(errsStart)
		fv, ferr, fok := fallback.Parse(cur)
		if fok {
			cur.Emit(err.Err)
			return fv, Located[E]{}, true
		}
		cur.Rewind(start)
		cur.TruncateErrors(errsStart)
		_ = ferr
		return fv, err, false
	})
}
