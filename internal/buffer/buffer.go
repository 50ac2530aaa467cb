package buffer

import "bytes"

// Buffer accumulates a message streamingly until it's complete. The memory is kept across
// messages, so a connection allocates it at most once unless a message outgrows it.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data, checking whether the new amount of elements (bytes) doesn't exceed the
// limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// HasSuffix reports whether the accumulated data ends with the suffix.
func (b *Buffer) HasSuffix(suffix []byte) bool {
	return bytes.HasSuffix(b.memory, suffix)
}

// Preview returns the accumulated data without copying.
func (b *Buffer) Preview() []byte {
	return b.memory
}

func (b *Buffer) Len() int {
	return len(b.memory)
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}
