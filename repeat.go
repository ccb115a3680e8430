package parsekit

// Repeated applies p zero or more times, collecting each result into a
// Container built by newC, and succeeds as long as the minimum of min
// repetitions (0 for a plain "zero or more") were matched. Repeated never
// fails solely because p could be applied again; it stops at the first
// position where p fails and treats that as the end of the run.
func Repeated[T any, I any, CC Container[I], S any, C any, E ParseError[T]](p Parser[T, I, S, C, E], min int, newC func() CC) Parser[T, CC, S, C, E] {
	return ParseFunc[T, CC, S, C, E](func(cur Cursor[T, S, C, E]) (CC, Located[E], bool) {
		out := newC()
		n := 0
		var lastErr Located[E]
		for {
			save := cur.Save()
			errsSave := cur.ErrorCount()
			v, err, ok := p.Parse(cur)
			if !ok {
				cur.Rewind(save)
				cur.TruncateErrors(errsSave)
				lastErr = err
				break
			}
			out.Push(v)
			n++
		}
		if n < min {
			var zero CC
			return zero, lastErr, false
		}
		return out, Located[E]{}, true
	})
}

// SeparatedBy applies p, then repeatedly (sep then p), collecting every p
// result into a Container built by newC. allowLeading permits (and
// consumes) a separator before the first item; allowTrailing permits one
// trailing separator with no following item. Fails if fewer than min
// items were collected. Follows the step order of spec.md §4.5: a
// separator that fails partway through the loop is rewound before the
// caller inspects min, so a parser downstream of SeparatedBy can itself
// consume a separator SeparatedBy declined to treat as trailing.
func SeparatedBy[T any, I any, SepT any, CC Container[I], S any, C any, E ParseError[T]](p Parser[T, I, S, C, E], sep Parser[T, SepT, S, C, E], min int, allowLeading, allowTrailing bool, newC func() CC) Parser[T, CC, S, C, E] {
	return ParseFunc[T, CC, S, C, E](func(cur Cursor[T, S, C, E]) (CC, Located[E], bool) {
		out := newC()
		n := 0
		start := cur.Save()
		startErrs := cur.ErrorCount()

		if allowLeading {
			leadSave := cur.Save()
			leadErrs := cur.ErrorCount()
			if _, sok := sep.Skip(cur); !sok {
				cur.Rewind(leadSave)
				cur.TruncateErrors(leadErrs)
			}
		}

		v, err, ok := p.Parse(cur)
		if ok {
			out.Push(v)
			n++
		}
		var lastErr Located[E]
		if !ok {
			lastErr = err
			if min == 0 {
				cur.Rewind(start)
				cur.TruncateErrors(startErrs)
				return out, Located[E]{}, true
			}
			var zero CC
			return zero, lastErr, false
		}

		for {
			sepSave := cur.Save()
			sepErrs := cur.ErrorCount()
			if serr, sok := sep.Skip(cur); !sok {
				cur.Rewind(sepSave)
				cur.TruncateErrors(sepErrs)
				if n < min {
					var zero CC
					return zero, serr, false
				}
				break
			}
			itemSave := cur.Save()
			iv, ierr, iok := p.Parse(cur)
			if !iok {
				cur.Rewind(sepSave)
				cur.TruncateErrors(sepErrs)
				if n < min {
					var zero CC
					return zero, ierr, false
				}
				break
			}
			_ = itemSave
			out.Push(iv)
			n++
		}

		if allowTrailing {
			trailSave := cur.Save()
			trailErrs := cur.ErrorCount()
			if _, sok := sep.Skip(cur); !sok {
				cur.Rewind(trailSave)
				cur.TruncateErrors(trailErrs)
			}
		}
		return out, Located[E]{}, true
	})
}

// RepeatedExactly applies p exactly n times, collecting each result into a
// Container built by newC, failing if p cannot be matched n times in a
// row. Go's generics have no way to size an array by a type parameter, so
// unlike a fixed-size-array translation this is enforced at run time
// against the n argument rather than the type system.
func RepeatedExactly[T any, I any, CC Container[I], S any, C any, E ParseError[T]](p Parser[T, I, S, C, E], n int, newC func() CC) Parser[T, CC, S, C, E] {
	return ParseFunc[T, CC, S, C, E](func(cur Cursor[T, S, C, E]) (CC, Located[E], bool) {
		out := newC()
		start := cur.Save()
		startErrs := cur.ErrorCount()
		for i := 0; i < n; i++ {
			v, err, ok := p.Parse(cur)
			if !ok {
				cur.Rewind(start)
				cur.TruncateErrors(startErrs)
				var zero CC
				return zero, err, false
			}
			out.Push(v)
		}
		return out, Located[E]{}, true
	})
}

// SeparatedByExactly applies p exactly n times, separated by sep,
// collecting each result into a Container built by newC.
func SeparatedByExactly[T any, I any, SepT any, CC Container[I], S any, C any, E ParseError[T]](p Parser[T, I, S, C, E], sep Parser[T, SepT, S, C, E], n int, newC func() CC) Parser[T, CC, S, C, E] {
	return ParseFunc[T, CC, S, C, E](func(cur Cursor[T, S, C, E]) (CC, Located[E], bool) {
		out := newC()
		start := cur.Save()
		startErrs := cur.ErrorCount()
		for i := 0; i < n; i++ {
			if i > 0 {
				if err, ok := sep.Skip(cur); !ok {
					cur.Rewind(start)
					cur.TruncateErrors(startErrs)
					var zero CC
					return zero, err, false
				}
			}
			v, err, ok := p.Parse(cur)
			if !ok {
				cur.Rewind(start)
				cur.TruncateErrors(startErrs)
				var zero CC
				return zero, err, false
			}
			out.Push(v)
		}
		return out, Located[E]{}, true
	})
}
