package parsekit

// Then runs a then b in sequence, succeeding only if both do, and pairs
// their outputs.
func Then[T any, A, B any, S any, C any, E ParseError[T]](a Parser[T, A, S, C, E], b Parser[T, B, S, C, E]) Parser[T, Pair[A, B], S, C, E] {
	return ParseFunc[T, Pair[A, B], S, C, E](func(cur Cursor[T, S, C, E]) (Pair[A, B], Located[E], bool) {
		av, err, ok := a.Parse(cur)
		if !ok {
			var zero Pair[A, B]
			return zero, err, false
		}
		bv, err, ok := b.Parse(cur)
		if !ok {
			var zero Pair[A, B]
			return zero, err, false
		}
		return Pair[A, B]{First: av, Second: bv}, Located[E]{}, true
	})
}

// IgnoreThen runs a then b in sequence, keeping only b's output.
func IgnoreThen[T any, A, B any, S any, C any, E ParseError[T]](a Parser[T, A, S, C, E], b Parser[T, B, S, C, E]) Parser[T, B, S, C, E] {
	return ParseFunc[T, B, S, C, E](func(cur Cursor[T, S, C, E]) (B, Located[E], bool) {
		if err, ok := a.Skip(cur); !ok {
			var zero B
			return zero, err, false
		}
		return b.Parse(cur)
	})
}

// ThenIgnore runs a then b in sequence, keeping only a's output.
func ThenIgnore[T any, A, B any, S any, C any, E ParseError[T]](a Parser[T, A, S, C, E], b Parser[T, B, S, C, E]) Parser[T, A, S, C, E] {
	return ParseFunc[T, A, S, C, E](func(cur Cursor[T, S, C, E]) (A, Located[E], bool) {
		av, err, ok := a.Parse(cur)
		if !ok {
			var zero A
			return zero, err, false
		}
		if err, ok := b.Skip(cur); !ok {
			var zero A
			return zero, err, false
		}
		return av, Located[E]{}, true
	})
}

// DelimitedBy runs open, then p, then close, keeping only p's output. It is
// ThenIgnore(IgnoreThen(open, p), close) spelled out as one combinator,
// matching how grammars use it most often (brackets, quotes, parens).
func DelimitedBy[T any, O, OpenT, CloseT any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], open Parser[T, OpenT, S, C, E], close Parser[T, CloseT, S, C, E]) Parser[T, O, S, C, E] {
	return ThenIgnore(IgnoreThen(open, p), close)
}

// PaddedBy runs pad, then p, then pad again, keeping only p's output.
// Typical use is stripping whitespace/comments around a token.
func PaddedBy[T any, O, PadT any, S any, C any, E ParseError[T]](p Parser[T, O, S, C, E], pad Parser[T, PadT, S, C, E]) Parser[T, O, S, C, E] {
	return ThenIgnore(IgnoreThen(pad, p), pad)
}
