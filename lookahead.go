package parsekit

// Rewind runs p but always restores the cursor to its starting position
// afterward, whether p succeeded or failed — a pure lookahead.
func Rewind[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E]) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		v, err, ok := p.Parse(cur)
		cur.Rewind(start)
		if !ok {
			cur.TruncateErrors(errsStart)
		}
		return v, err, ok
	})
}

// AndIs runs a, and if it succeeds, rewinds and requires that b also
// succeeds from the same starting position (without consuming b's match).
// On overall success the cursor ends up where a left it; a's output is
// returned, and b is used only for its success or failure.
func AndIs[T any, A, B any, S any, C any, E ParseError[T]](a Parser[T, A, S, C, E], b Parser[T, B, S, C, E]) Parser[T, A, S, C, E] {
	return ParseFunc[T, A, S, C, E](func(cur Cursor[T, S, C, E]) (A, Located[E], bool) {
		before := cur.Save()
		av, aerr, ok := a.Parse(cur)
		if !ok {
			var zero A
			return zero, aerr, false
		}
		after := cur.Save()
		cur.Rewind(before)
		errsStart := cur.ErrorCount()
		berr, ok := b.Skip(cur)
		if !ok {
			cur.Rewind(before)
			cur.TruncateErrors(errsStart)
			var zero A
			return zero, berr, false
		}
		cur.Rewind(after)
		return av, Located[E]{}, true
	})
}

// Not succeeds, producing nothing and consuming nothing, only when p
// fails. It is the negative-lookahead primitive.
func Not[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E]) Parser[T, struct{}, S, C, E] {
	return ParseFunc[T, struct{}, S, C, E](func(cur Cursor[T, S, C, E]) (struct{}, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		_, ok := p.Skip(cur)
		cur.Rewind(start)
		if !ok {
			cur.TruncateErrors(errsStart)
		}
		if ok {
			tok, peeked := cur.Peek()
			var found *T
			if peeked {
				found = &tok
			}
			return struct{}{}, Located[E]{Pos: start, Err: cur.Error(nil, found, cur.SpanSince(start))}, false
		}
		return struct{}{}, Located[E]{}, true
	})
}
