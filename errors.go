package parsekit

import (
	"fmt"
	"strings"
)

// ParseError is the interface every error value threaded through a parse
// must satisfy. Merge combines two errors raised at the same input
// position — for example when alternation tries several branches that all
// fail at the same place, the errors are merged into a single, more
// informative one rather than one being discarded silently.
type ParseError[T any] interface {
	Merge(other ParseError[T]) ParseError[T]
}

// An ErrorFactory builds an ParseError value reporting a mismatch between
// what a primitive expected and what it found. expected == nil means "no
// specific token was expected" (e.g. Filter, Not). found == nil means the
// input was exhausted.
type ErrorFactory[T any, E ParseError[T]] interface {
	ExpectedFound(expected []T, found *T, span Span) E
}

// Located pairs an error with the input position at which it was raised.
// Located errors propagate upward through combinators and are merged (via
// prioritize, below) when alternation must choose between failing
// branches.
type Located[E any] struct {
	Pos int
	Err E
}

// prioritize picks the error at the further input position, on the theory
// that a parser that got further into the input produced a more relevant
// diagnostic. Ties are broken by merge.
func prioritize[T any, E ParseError[T]](a, b Located[E]) Located[E] {
	switch {
	case a.Pos > b.Pos:
		return a
	case b.Pos > a.Pos:
		return b
	default:
		return Located[E]{Pos: a.Pos, Err: a.Err.Merge(b.Err).(E)}
	}
}

// An Emitter is a sink for non-fatal errors accumulated during an otherwise
// successful parse (see Validate).
type Emitter[T any, E ParseError[T]] struct {
	errs []E
}

// Emit records a non-fatal error.
func (em *Emitter[T, E]) Emit(err E) { em.errs = append(em.errs, err) }

// Errors returns the errors recorded so far.
func (em *Emitter[T, E]) Errors() []E { return em.errs }

// Simple is a general-purpose ParseError that records the set of tokens
// that would have allowed the parse to proceed, the token actually found
// (if any), and the span at which the mismatch occurred.
type Simple[T any] struct {
	Expected []T
	Found    *T
	Span     Span
}

// SimpleFactory builds Simple errors. Its zero value is ready to use.
type SimpleFactory[T any] struct{}

// ExpectedFound implements ErrorFactory.
func (SimpleFactory[T]) ExpectedFound(expected []T, found *T, span Span) Simple[T] {
	return Simple[T]{Expected: append([]T(nil), expected...), Found: found, Span: span}
}

// Merge implements ParseError, unioning the expected-token sets of two
// errors raised at the same position.
func (s Simple[T]) Merge(other ParseError[T]) ParseError[T] {
	o, ok := other.(Simple[T])
	if !ok {
		return s
	}
	merged := append(append([]T(nil), s.Expected...), o.Expected...)
	found := s.Found
	if found == nil {
		found = o.Found
	}
	sp := s.Span
	if sp == (Span{}) {
		sp = o.Span
	}
	return Simple[T]{Expected: merged, Found: found, Span: sp}
}

func (s Simple[T]) Error() string {
	var b strings.Builder
	if len(s.Expected) == 0 {
		b.WriteString("unexpected input")
	} else {
		fmt.Fprintf(&b, "expected one of %v", s.Expected)
	}
	if s.Found != nil {
		fmt.Fprintf(&b, ", found %v", *s.Found)
	} else {
		b.WriteString(", found end of input")
	}
	fmt.Fprintf(&b, " at %d..%d", s.Span.Pos, s.Span.End)
	return b.String()
}

// Cheap is a minimal ParseError that records only the position of the
// failure, for callers that don't need detailed diagnostics and want to
// avoid the allocation cost of collecting expected-token sets.
type Cheap[T any] struct {
	Span Span
}

// CheapFactory builds Cheap errors. Its zero value is ready to use.
type CheapFactory[T any] struct{}

// ExpectedFound implements ErrorFactory.
func (CheapFactory[T]) ExpectedFound(_ []T, _ *T, span Span) Cheap[T] {
	return Cheap[T]{Span: span}
}

// Merge implements ParseError. Cheap errors carry no extra information to
// merge, so the earlier-starting span is kept.
func (c Cheap[T]) Merge(other ParseError[T]) ParseError[T] {
	o, ok := other.(Cheap[T])
	if ok && o.Span.Pos < c.Span.Pos {
		return o
	}
	return c
}

func (c Cheap[T]) Error() string {
	return fmt.Sprintf("parse error at %d..%d", c.Span.Pos, c.Span.End)
}
