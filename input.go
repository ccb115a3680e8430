package parsekit

// An Input is a uniform, ordered sequence of tokens of type T. Positions are
// plain ints (offsets into the underlying sequence): cheap to copy, and
// opaque to everything but the Input implementation that produced them.
//
// Next must be side-effect free: calling Next(pos) twice with the same pos
// must return the same result. Implementations are expected to be backed by
// something already fully resident in memory (a byte slice, a string, a
// token vector) — the engine never blocks on Next.
type Input[T any] interface {
	// Next returns the token at pos and the position immediately following
	// it, or reports ok == false at the end of the input.
	Next(pos int) (tok T, next int, ok bool)
}

// A SliceInput is an Input whose positions can delimit a contiguous,
// zero-copy view of the underlying sequence. S is typically a string,
// []byte, or mem.RO.
type SliceInput[T any, S any] interface {
	Input[T]

	// Slice returns the view of the input between start and end, which must
	// both be positions previously produced by this same Input (via Next or
	// an initial zero position).
	Slice(start, end int) S
}
