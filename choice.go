package parsekit

// Or tries a first; if a fails, it rewinds and tries b instead. Both
// branches are always attempted from the same starting
// position — on a double failure, the error from whichever branch reached
// further into the input wins, with ties merged (see prioritize in
// errors.go), so alternation never silently discards a more specific
// diagnostic.
func Or[T any, O any, S any, C any, E ParseError[T]](a, b Parser[T, O, S, C, E]) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		av, aerr, ok := a.Parse(cur)
		if ok {
			return av, Located[E]{}, true
		}
		cur.Rewind(start)
		cur.TruncateErrors(errsStart)
		bv, berr, ok := b.Parse(cur)
		if ok {
			return bv, Located[E]{}, true
		}
		cur.Rewind(start)
		cur.TruncateErrors(errsStart)
		var zero O
		return zero, prioritize[T, E](aerr, berr), false
	})
}

// OrNot tries p; if it fails, it succeeds anyway with no value, without
// consuming input. The wrapped failure's rewind makes OrNot total: it
// never itself fails.
func OrNot[T any, O any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E]) Parser[T, *O, S, C, E] {
	return ParseFunc[T, *O, S, C, E](func(cur Cursor[T, S, C, E]) (*O, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		v, _, ok := p.Parse(cur)
		if !ok {
			cur.Rewind(start)
			cur.TruncateErrors(errsStart)
			return nil, Located[E]{}, true
		}
		return &v, Located[E]{}, true
	})
}
