package parsekit

// End succeeds, producing nothing, only at the end of input.
func End[T comparable, S any, C any, E ParseError[T]]() Parser[T, struct{}, S, C, E] {
	return ParseFunc[T, struct{}, S, C, E](func(cur Cursor[T, S, C, E]) (struct{}, Located[E], bool) {
		start := cur.Save()
		if tok, ok := cur.Peek(); ok {
			return struct{}{}, Located[E]{Pos: start, Err: cur.Error(nil, &tok, cur.SpanSince(start))}, false
		}
		return struct{}{}, Located[E]{}, true
	})
}

// Empty always succeeds without consuming any input.
func Empty[T any, O any, S any, C any, E ParseError[T]]() Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		var zero O
		return zero, Located[E]{}, true
	})
}

// Any consumes and returns exactly one token, failing only at end of
// input.
func Any[T any, S any, C any, E ParseError[T]]() Parser[T, T, S, C, E] {
	return ParseFunc[T, T, S, C, E](func(cur Cursor[T, S, C, E]) (T, Located[E], bool) {
		start := cur.Save()
		tok, ok := cur.Next()
		if !ok {
			var zero T
			return zero, Located[E]{Pos: start, Err: cur.Error(nil, nil, cur.SpanSince(start))}, false
		}
		return tok, Located[E]{}, true
	})
}

// Just consumes a single token equal to want, failing otherwise.
func Just[T comparable, S any, C any, E ParseError[T]](want T) Parser[T, T, S, C, E] {
	return OneOf[T, S, C, E](want)
}

// JustSeq consumes an ordered sequence of tokens exactly, failing at the
// first element that doesn't match what seq calls for (e.g. matching the
// keyword "null" token-by-token, or a multi-byte delimiter). The returned
// value is a copy of seq itself, not a slice into the input — callers that
// want the matched input back as a zero-copy view should wrap this in
// Slice instead.
func JustSeq[T comparable, S any, C any, E ParseError[T]](seq []T) Parser[T, []T, S, C, E] {
	return ParseFunc[T, []T, S, C, E](func(cur Cursor[T, S, C, E]) ([]T, Located[E], bool) {
		start := cur.Save()
		for _, want := range seq {
			pos := cur.Save()
			tok, ok := cur.Next()
			if !ok || tok != want {
				var found *T
				if ok {
					found = &tok
				}
				var zero []T
				cur.Rewind(start)
				return zero, Located[E]{Pos: pos, Err: cur.Error([]T{want}, found, cur.SpanSince(pos))}, false
			}
		}
		return append([]T(nil), seq...), Located[E]{}, true
	})
}

// OneOf consumes a single token equal to any of opts, failing otherwise.
func OneOf[T comparable, S any, C any, E ParseError[T]](opts ...T) Parser[T, T, S, C, E] {
	return Filter[T, S, C, E](func(t T) bool {
		for _, o := range opts {
			if t == o {
				return true
			}
		}
		return false
	}).withExpected(opts)
}

// NoneOf consumes a single token equal to none of opts, failing otherwise.
func NoneOf[T comparable, S any, C any, E ParseError[T]](opts ...T) Parser[T, T, S, C, E] {
	return Filter[T, S, C, E](func(t T) bool {
		for _, o := range opts {
			if t == o {
				return false
			}
		}
		return true
	})
}

// Filter consumes a single token satisfying pred, failing otherwise. The
// resulting error carries no specific expected-token set, since an
// arbitrary predicate has no finite description.
func Filter[T any, S any, C any, E ParseError[T]](pred func(T) bool) filterParser[T, S, C, E] {
	return filterParser[T, S, C, E]{pred: pred}
}

// filterParser is Filter's concrete implementation. Filter returns it as a
// named type (rather than as a bare Parser) so OneOf can attach an
// expected-token list to the error it produces without a second wrapping
// layer.
type filterParser[T any, S any, C any, E ParseError[T]] struct {
	pred     func(T) bool
	expected []T
}

func (fp filterParser[T, S, C, E]) withExpected(expected []T) filterParser[T, S, C, E] {
	fp.expected = expected
	return fp
}

func (fp filterParser[T, S, C, E]) Parse(cur Cursor[T, S, C, E]) (T, Located[E], bool) {
	start := cur.Save()
	tok, ok := cur.Peek()
	if ok && fp.pred(tok) {
		cur.Next()
		return tok, Located[E]{}, true
	}
	var found *T
	if ok {
		found = &tok
	}
	var zero T
	return zero, Located[E]{Pos: start, Err: cur.Error(fp.expected, found, cur.SpanSince(start))}, false
}

func (fp filterParser[T, S, C, E]) Skip(cur Cursor[T, S, C, E]) (Located[E], bool) {
	_, err, ok := fp.Parse(cur)
	return err, ok
}

// TakeUntil consumes tokens one at a time, collecting them, until until
// succeeds; until's match is consumed but its output is returned alongside
// the collected tokens, not folded into them.
func TakeUntil[T any, U any, S any, C any, E ParseError[T]](until Parser[T, U, S, C, E]) Parser[T, Pair[[]T, U], S, C, E] {
	return ParseFunc[T, Pair[[]T, U], S, C, E](func(cur Cursor[T, S, C, E]) (Pair[[]T, U], Located[E], bool) {
		var collected []T
		for {
			save := cur.Save()
			errsSave := cur.ErrorCount()
			u, uerr, ok := until.Parse(cur)
			if ok {
				return Pair[[]T, U]{First: collected, Second: u}, Located[E]{}, true
			}
			cur.Rewind(save)
			cur.TruncateErrors(errsSave)
			tok, ok := cur.Next()
			if !ok {
				var zero Pair[[]T, U]
				return zero, uerr, false
			}
			collected = append(collected, tok)
		}
	})
}

// Todo returns a parser that panics when invoked, a placeholder for a
// grammar rule not yet implemented. It is a programmer error to reach one,
// never a parse failure.
func Todo[T any, O any, S any, C any, E ParseError[T]]() Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		panic("parsekit: todo parser invoked")
	})
}

// Choice tries each parser in order, returning the first success, or the
// merged error of all attempts if every one fails. It is the variadic form
// of Or for parsers that share one output type.
func Choice[T any, O any, S any, C any, E ParseError[T]](ps ...Parser[T, O, S, C, E]) Parser[T, O, S, C, E] {
	return ParseFunc[T, O, S, C, E](func(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
		start := cur.Save()
		errsStart := cur.ErrorCount()
		var best Located[E]
		haveBest := false
		for _, p := range ps {
			cur.Rewind(start)
			cur.TruncateErrors(errsStart)
			out, err, ok := p.Parse(cur)
			if ok {
				return out, Located[E]{}, true
			}
			if !haveBest {
				best, haveBest = err, true
			} else {
				best = prioritize[T, E](best, err)
			}
		}
		cur.Rewind(start)
		cur.TruncateErrors(errsStart)
		var zero O
		return zero, best, false
	})
}

// Triple is the output of Group over three parsers.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the output of Group over four parsers.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Group2 runs two parsers in sequence, requiring every one to succeed, and
// collects their outputs into a Pair. It is the non-merging counterpart of
// Choice: where Choice picks one of several alternatives, Group runs all
// of its arguments. This stands in for chumsky's variadic Group macro,
// which Go's generics cannot express; Group3/Group4 cover the common
// higher arities.
func Group2[T any, A, B any, S any, C any, E ParseError[T]](a Parser[T, A, S, C, E], b Parser[T, B, S, C, E]) Parser[T, Pair[A, B], S, C, E] {
	return Then(a, b)
}

// Group3 runs three parsers in sequence, requiring every one to succeed.
func Group3[T any, A, B, Cc any, S any, Ctx any, E ParseError[T]](a Parser[T, A, S, Ctx, E], b Parser[T, B, S, Ctx, E], c Parser[T, Cc, S, Ctx, E]) Parser[T, Triple[A, B, Cc], S, Ctx, E] {
	return ParseFunc[T, Triple[A, B, Cc], S, Ctx, E](func(cur Cursor[T, S, Ctx, E]) (Triple[A, B, Cc], Located[E], bool) {
		var zero Triple[A, B, Cc]
		av, err, ok := a.Parse(cur)
		if !ok {
			return zero, err, false
		}
		bv, err, ok := b.Parse(cur)
		if !ok {
			return zero, err, false
		}
		cv, err, ok := c.Parse(cur)
		if !ok {
			return zero, err, false
		}
		return Triple[A, B, Cc]{First: av, Second: bv, Third: cv}, Located[E]{}, true
	})
}

// Group4 runs four parsers in sequence, requiring every one to succeed.
func Group4[T any, A, B, Cc, D any, S any, Ctx any, E ParseError[T]](a Parser[T, A, S, Ctx, E], b Parser[T, B, S, Ctx, E], c Parser[T, Cc, S, Ctx, E], d Parser[T, D, S, Ctx, E]) Parser[T, Quad[A, B, Cc, D], S, Ctx, E] {
	return ParseFunc[T, Quad[A, B, Cc, D], S, Ctx, E](func(cur Cursor[T, S, Ctx, E]) (Quad[A, B, Cc, D], Located[E], bool) {
		var zero Quad[A, B, Cc, D]
		av, err, ok := a.Parse(cur)
		if !ok {
			return zero, err, false
		}
		bv, err, ok := b.Parse(cur)
		if !ok {
			return zero, err, false
		}
		cv, err, ok := c.Parse(cur)
		if !ok {
			return zero, err, false
		}
		dv, err, ok := d.Parse(cur)
		if !ok {
			return zero, err, false
		}
		return Quad[A, B, Cc, D]{First: av, Second: bv, Third: cv, Fourth: dv}, Located[E]{}, true
	})
}
