package parsekit

import "go4.org/mem"

// TextInput is a zero-copy Input over UTF-8 text, backed by a mem.RO value
// so it can be constructed from a string or a []byte without copying
// either. Tokens are runes; positions are byte offsets into the original
// text, matching the offset bookkeeping jtree's scanner does internally.
type TextInput struct {
	src mem.RO
}

// NewTextInput builds a TextInput over s without copying it.
func NewTextInput(s string) TextInput { return TextInput{src: mem.S(s)} }

// NewByteInput builds a TextInput over b without copying it. b must not be
// modified for as long as the TextInput or any Parser operating over it is
// in use.
func NewByteInput(b []byte) TextInput { return TextInput{src: mem.B(b)} }

// Next implements Input, decoding one rune starting at pos.
func (t TextInput) Next(pos int) (rune, int, bool) {
	if pos >= t.src.Len() {
		return 0, pos, false
	}
	r, size := mem.DecodeRune(t.src.SliceFrom(pos))
	return r, pos + size, true
}

// Slice implements SliceInput, returning the zero-copy text between two
// positions previously produced by Next.
func (t TextInput) Slice(start, end int) mem.RO { return t.src.Slice(start, end) }

// Len reports the length of the input in bytes.
func (t TextInput) Len() int { return t.src.Len() }

var (
	_ Input[rune]              = TextInput{}
	_ SliceInput[rune, mem.RO] = TextInput{}
)
