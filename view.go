package combi

// StringView is a zero-copy view over a shared, immutable byte buffer
// (a Go string already is one: its header aliases the backing array
// without copying, and the garbage collector keeps the array alive for
// as long as any view references it, so no custom refcounting is
// needed to share a buffer across views).
//
// A StringView never outlives the buffer it was built from, and it is
// immutable: Substr returns a new, aliasing view and never copies or
// frees the underlying bytes.
type StringView struct {
	buffer string
	offset int
	length int
}

// View wraps a Go string as a StringView over its whole length.
func View(s string) StringView {
	return StringView{buffer: s, offset: 0, length: len(s)}
}

// Size returns the number of bytes visible through the view.
func (v StringView) Size() int {
	return v.length
}

// Empty reports whether the view has zero length.
func (v StringView) Empty() bool {
	return v.length == 0
}

// ByteAt returns the byte at index i of the view (0-indexed).
func (v StringView) ByteAt(i int) byte {
	return v.buffer[v.offset+i]
}

// Substr returns the aliasing view of v starting at from, running to
// the end of v if length is omitted.
func (v StringView) Substr(from int, length ...int) StringView {
	n := v.length - from
	if len(length) > 0 {
		n = length[0]
	}
	return StringView{buffer: v.buffer, offset: v.offset + from, length: n}
}

// Equals reports whether v's bytes equal the given byte sequence
// exactly.
func (v StringView) Equals(s string) bool {
	return v.length == len(s) && v.String() == s
}

// HasPrefix reports whether v starts with the given byte sequence.
func (v StringView) HasPrefix(s string) bool {
	return v.length >= len(s) && v.buffer[v.offset:v.offset+len(s)] == s
}

// String returns the viewed bytes as a string. A Go string slice is
// already an immutable owned value, so no explicit copy is required.
func (v StringView) String() string {
	return v.buffer[v.offset : v.offset+v.length]
}
