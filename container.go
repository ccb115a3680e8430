package parsekit

import "github.com/creachadair/mds/mapset"

// A Container accumulates items produced by a repetition combinator
// (Repeated, SeparatedBy). Go generics have no notion of a type's default
// constructor, so callers pass a factory function that builds an empty
// Container rather than relying on one being derivable from I or C alone
// — NewSliceContainer, NewByteString, NewSetContainer and so on below are
// the factories parsekit ships; grammars can supply their own for
// application-specific accumulators (symbol tables, interned string
// pools, ...).
type Container[I any] interface {
	Push(item I)
}

// SliceContainer accumulates items into a plain slice, in order.
type SliceContainer[I any] struct {
	Items []I
}

// NewSliceContainer is a Container factory for SliceContainer.
func NewSliceContainer[I any]() *SliceContainer[I] { return &SliceContainer[I]{} }

// Push implements Container.
func (c *SliceContainer[I]) Push(item I) { c.Items = append(c.Items, item) }

// ByteString accumulates bytes into a string, used for combinators that
// repeat over a byte/rune-producing parser and want the concatenated text
// rather than a []byte slice.
type ByteString struct {
	buf []byte
}

// NewByteString is a Container factory for ByteString over byte items.
func NewByteString() *ByteString { return &ByteString{} }

// Push implements Container for byte items.
func (c *ByteString) Push(item byte) { c.buf = append(c.buf, item) }

// PushRune appends the UTF-8 encoding of item. Used when ByteString
// accumulates runes instead of bytes; call sites pick whichever Push* the
// item type requires.
func (c *ByteString) PushRune(item rune) { c.buf = append(c.buf, []byte(string(item))...) }

// String returns the accumulated text.
func (c *ByteString) String() string { return string(c.buf) }

// RuneString is a Container over runes that accumulates directly into a
// string, for grammars whose item type is rune rather than byte.
type RuneString struct {
	buf []byte
}

// NewRuneString is a Container factory for RuneString.
func NewRuneString() *RuneString { return &RuneString{} }

// Push implements Container.
func (c *RuneString) Push(item rune) { c.buf = append(c.buf, []byte(string(item))...) }

// String returns the accumulated text.
func (c *RuneString) String() string { return string(c.buf) }

// SetContainer accumulates distinct items into a mapset.Set, discarding
// duplicates. I must be comparable, as required by mapset.
type SetContainer[I comparable] struct {
	Set mapset.Set[I]
}

// NewSetContainer is a Container factory for SetContainer.
func NewSetContainer[I comparable]() *SetContainer[I] {
	return &SetContainer[I]{Set: mapset.New[I]()}
}

// Push implements Container.
func (c *SetContainer[I]) Push(item I) { c.Set.Add(item) }

// KV is the item type pushed into a MapContainer.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// MapContainer accumulates key/value pairs into a key-insertion-ordered
// map: later entries for the same key overwrite the value but keep the
// key's original position in Keys. mds has no ready-made ordered-map type
// (mapset.Set covers the plain Set capability, used by SetContainer), so
// this is hand-rolled from a map plus a key-order slice.
type MapContainer[K comparable, V any] struct {
	M    map[K]V
	Keys []K
}

// NewMapContainer is a Container factory for MapContainer.
func NewMapContainer[K comparable, V any]() *MapContainer[K, V] {
	return &MapContainer[K, V]{M: make(map[K]V)}
}

// Push implements Container.
func (c *MapContainer[K, V]) Push(item KV[K, V]) {
	if _, ok := c.M[item.Key]; !ok {
		c.Keys = append(c.Keys, item.Key)
	}
	c.M[item.Key] = item.Value
}

// Ordered returns the accumulated pairs in insertion order.
func (c *MapContainer[K, V]) Ordered() []KV[K, V] {
	out := make([]KV[K, V], len(c.Keys))
	for i, k := range c.Keys {
		out[i] = KV[K, V]{Key: k, Value: c.M[k]}
	}
	return out
}

// Counter is a Container that discards every item and only tracks how
// many were pushed, for repetition combinators used purely to validate a
// count (e.g. RepeatedExactly paired with Ignored).
type Counter[I any] struct {
	N int
}

// NewCounter is a Container factory for Counter.
func NewCounter[I any]() *Counter[I] { return &Counter[I]{} }

// Push implements Container.
func (c *Counter[I]) Push(I) { c.N++ }
