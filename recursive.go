package parsekit

// Recursive is a forward-declared parser handle used to build grammars
// with cyclic rules (an expression that can contain itself). chumsky needs
// an Rc/Weak split here to avoid leaking reference cycles; Go's
// cycle-collecting garbage collector makes that unnecessary; Recursive is
// just a pointer to a slot that gets filled in once, after every rule that
// refers to it has already captured the pointer.
type Recursive[T any, O any, S any, C any, E ParseError[T]] struct {
	inner   Parser[T, O, S, C, E]
	defined bool
}

// Declare creates an undefined Recursive handle. Using it (via Parse or
// Skip) before Define is called panics.
func Declare[T any, O any, S any, C any, E ParseError[T]]() *Recursive[T, O, S, C, E] {
	return &Recursive[T, O, S, C, E]{}
}

// Define fills in the parser a Recursive handle stands for. It must be
// called exactly once, before the handle is used to parse anything;
// calling it a second time is a programmer error and panics.
func (r *Recursive[T, O, S, C, E]) Define(p Parser[T, O, S, C, E]) {
	if r.defined {
		panic("parsekit: recursive parser defined twice")
	}
	r.inner = p
	r.defined = true
}

// Parse implements Parser, delegating to the defined parser.
func (r *Recursive[T, O, S, C, E]) Parse(cur Cursor[T, S, C, E]) (O, Located[E], bool) {
	if r.inner == nil {
		panic("parsekit: recursive parser used before Define")
	}
	return r.inner.Parse(cur)
}

// Skip implements Parser, delegating to the defined parser.
func (r *Recursive[T, O, S, C, E]) Skip(cur Cursor[T, S, C, E]) (Located[E], bool) {
	if r.inner == nil {
		panic("parsekit: recursive parser used before Define")
	}
	return r.inner.Skip(cur)
}

// RecursiveParser builds a self-referential parser in one step: build
// receives a handle to the parser it is itself constructing (usable
// anywhere a Parser of the same signature is expected) and returns the
// grammar rule's real definition, which is typically an Or/Choice with one
// branch that recurses through that handle.
func RecursiveParser[T any, O any, S any, C any, E ParseError[T]](build func(*Recursive[T, O, S, C, E]) Parser[T, O, S, C, E]) Parser[T, O, S, C, E] {
	r := Declare[T, O, S, C, E]()
	r.Define(build(r))
	return r
}
