// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package parsekit implements a zero-copy parser-combinator engine.
//
// # Parsers
//
// A Parser[T, O, S, C, E] consumes tokens of type T from a Cursor and
// produces a value of type O, or fails with an error of type E. Grammars
// are built by composing small parsers — Just, OneOf, Filter — into larger
// ones with combinators like Then, Or, and Repeated, rather than by hand
// writing a recursive-descent function per rule:
//
//	digit := parsekit.Filter[rune, string, struct{}, parsekit.Simple[rune]](unicode.IsDigit)
//	number := parsekit.MapSlice(parsekit.Repeated(digit, 1, parsekit.NewRuneString),
//	    func(s string) int { n, _ := strconv.Atoi(s); return n })
//
// Every parser supports two ways of running: Parse builds and returns its
// output, while Skip runs the same grammar but discards the value, for
// combinators (IgnoreThen, ThenIgnore, Slice) that drop a child's output. The two must always agree on what they
// consume and how they fail; see the Parser doc comment for the exact
// contract.
//
// # Cursors and input
//
// A Cursor is the single read/write handle a parser uses to pull tokens
// from an Input, save and rewind its position for backtracking, and carry
// a user-supplied context value down into sub-parsers (see Configure,
// ThenWithCtx). Input is implemented by TextInput (zero-copy over a string
// or []byte, using go4.org/mem) and TokenInput (a pre-lexed token vector
// carrying its own source spans), or by application-specific
// implementations of Input/SliceInput.
//
// # Errors
//
// Failures are ordinary values satisfying ParseError, built through an
// ErrorFactory so that a grammar can swap in a lightweight Cheap error or a
// descriptive Simple one without touching any combinator. Alternation
// (Or, Choice) never silently drops a branch's diagnostic: when every
// branch fails, the errors are merged, favoring whichever branch consumed
// the most input before failing.
//
// # Recursive grammars
//
// RecursiveParser ties the knot for grammars that refer to themselves
// (an expression containing sub-expressions):
//
//	expr := parsekit.RecursiveParser(func(self *parsekit.Recursive[...]) parsekit.Parser[...] {
//	    return parsekit.Or(atom, parenthesized(self))
//	})
//
// Unlike the reference-counted handle this pattern needs in languages
// without a cycle-collecting garbage collector, Recursive here is just a
// pointer to a slot filled in once after every rule referring to it has
// already captured the pointer.
package parsekit
