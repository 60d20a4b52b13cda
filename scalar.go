package dyngen

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"
)

// InvalidEnumerator is the name produced for an enumeration value outside
// the declared range.
const InvalidEnumerator = "<<invalid>>"

// EnumName returns the enumerator name for ordinal v, or
// InvalidEnumerator when v is not below len(names).
func EnumName(names []string, v uint32) String {
	if uint64(v) >= uint64(len(names)) {
		return InvalidEnumerator
	}
	return String(names[v])
}

// Integer converts an integer no wider than 32 bits to a Number. Every
// such value is exactly representable as a float64.
func Integer[T ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32](v T) Number {
	return Number(v)
}

// Char converts a narrow character to a one-character String. The NUL
// character yields the empty string. A byte outside the ASCII range is
// not valid UTF-8 on its own and decodes to U+FFFD.
func Char(c byte) String {
	if c == 0 {
		return ""
	}
	if c >= utf8.RuneSelf {
		return String(utf8.RuneError)
	}
	return String(rune(c))
}

// WChar converts a wide character to a one-character String. The
// character is truncated to one UTF-16 code unit.
func WChar(r rune) String {
	buf := [2]uint16{uint16(r), 0}
	return StringFromUTF16(buf[:])
}

var utf16Pool = sync.Pool{
	New: func() any {
		buf := make([]uint16, 0, 64)
		return &buf
	},
}

// AcquireUTF16 returns a zeroed buffer of n UTF-16 code units. Release it
// with ReleaseUTF16 once the string has been built.
func AcquireUTF16(n int) []uint16 {
	bp := utf16Pool.Get().(*[]uint16)
	buf := *bp
	if cap(buf) < n {
		buf = make([]uint16, n)
	} else {
		buf = buf[:n]
		clear(buf)
	}
	return buf
}

// ReleaseUTF16 returns a buffer obtained from AcquireUTF16 to the pool.
func ReleaseUTF16(buf []uint16) {
	buf = buf[:0]
	utf16Pool.Put(&buf)
}

// StringFromUTF16 decodes a NUL-terminated UTF-16 buffer. Decoding stops
// at the first NUL or at the end of buf. Unpaired surrogates decode to
// U+FFFD.
func StringFromUTF16(buf []uint16) String {
	for i, u := range buf {
		if u == 0 {
			buf = buf[:i]
			break
		}
	}
	return String(utf16.Decode(buf))
}
