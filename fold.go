package parsekit

// Foldl parses first once, then rest zero or more times, combining results
// left-to-right: acc = f(acc, item) for each item rest produces, in the
// order they were parsed. It never fails because rest could not be
// applied again — it simply stops at the first position rest fails and
// keeps the accumulator built so far.
func Foldl[T any, A any, I any, S any, C any, E ParseError[T]](first Parser[T, A, S, C, E], rest Parser[T, I, S, C, E], f func(A, I) A) Parser[T, A, S, C, E] {
	return ParseFunc[T, A, S, C, E](func(cur Cursor[T, S, C, E]) (A, Located[E], bool) {
		acc, err, ok := first.Parse(cur)
		if !ok {
			var zero A
			return zero, err, false
		}
		for {
			save := cur.Save()
			errsSave := cur.ErrorCount()
			item, _, ok := rest.Parse(cur)
			if !ok {
				cur.Rewind(save)
				cur.TruncateErrors(errsSave)
				break
			}
			acc = f(acc, item)
		}
		return acc, Located[E]{}, true
	})
}

// Foldr parses rest zero or more times, then last once, combining results
// right-to-left: starting from last's output, each item rest produced (in
// reverse parse order) is folded in via acc = f(item, acc).
func Foldr[T any, I any, A any, S any, C any, E ParseError[T]](rest Parser[T, I, S, C, E], last Parser[T, A, S, C, E], f func(I, A) A) Parser[T, A, S, C, E] {
	return ParseFunc[T, A, S, C, E](func(cur Cursor[T, S, C, E]) (A, Located[E], bool) {
		var items []I
		for {
			save := cur.Save()
			errsSave := cur.ErrorCount()
			item, _, ok := rest.Parse(cur)
			if !ok {
				cur.Rewind(save)
				cur.TruncateErrors(errsSave)
				break
			}
			items = append(items, item)
		}
		acc, err, ok := last.Parse(cur)
		if !ok {
			var zero A
			return zero, err, false
		}
		for i := len(items) - 1; i >= 0; i-- {
			acc = f(items[i], acc)
		}
		return acc, Located[E]{}, true
	})
}
