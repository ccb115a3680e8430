package parsekit

// Result is the outcome of a top-level Parse or Check call: the produced
// output (zero if the parse failed outright), the errors accumulated along
// the way (both the fatal failure, if any, and every error emitted via
// Emit/Validate/RecoverWith), and whether the parse succeeded.
type Result[O any, E any] struct {
	Output O
	Errors []E
	Ok     bool
}

// HasErrors reports whether any error was recorded, fatal or not — true
// for an outright failure and also for a successful parse that recovered
// from (or merely validated past) one or more non-fatal errors along the
// way.
func (r Result[O, E]) HasErrors() bool {
	return len(r.Errors) > 0
}

// Parse runs p against the whole of input, starting with context ctx, and
// requires that p consumes every token — trailing input after a
// successful p is reported as a failure, the same as if p itself had
// failed there. factory builds the error used for that trailing-input
// report and any other "unexpected end of input")-shaped failure.
func Parse[T any, O any, S any, C any, E ParseError[T]](input SliceInput[T, S], p Parser[T, O, S, C, E], factory ErrorFactory[T, E], ctx C) Result[O, E] {
	cur := NewCursor[T, S, C, E](input, factory, ctx)
	out, err, ok := p.Parse(cur)
	return finishResult(cur, out, err, ok)
}

// Check runs p against the whole of input like Parse, but discards the
// output, for callers that only want to validate the input and collect
// diagnostics.
func Check[T any, O any, S any, C any, E ParseError[T]](input SliceInput[T, S], p Parser[T, O, S, C, E], factory ErrorFactory[T, E], ctx C) Result[struct{}, E] {
	cur := NewCursor[T, S, C, E](input, factory, ctx)
	err, ok := p.Skip(cur)
	return finishResult(cur, struct{}{}, err, ok)
}

func finishResult[T any, O any, S any, C any, E ParseError[T]](cur Cursor[T, S, C, E], out O, err Located[E], ok bool) Result[O, E] {
	errs := make([]E, 0, len(cur.Errors())+1)
	if !ok {
		errs = append(errs, err.Err)
		var zero O
		return Result[O, E]{Output: zero, Errors: appendLocated(errs, cur.Errors()), Ok: false}
	}
	if tok, hasMore := cur.Peek(); hasMore {
		start := cur.Save()
		trailing := cur.Error(nil, &tok, cur.SpanSince(start))
		errs = append(errs, trailing)
		var zero O
		return Result[O, E]{Output: zero, Errors: appendLocated(errs, cur.Errors()), Ok: false}
	}
	return Result[O, E]{Output: out, Errors: appendLocated(errs, cur.Errors()), Ok: true}
}

func appendLocated[E any](errs []E, located []Located[E]) []E {
	for _, l := range located {
		errs = append(errs, l.Err)
	}
	return errs
}
