package charset

// MaxEncodedWidth is the largest number of bytes a single encoded
// character may occupy in any supported encoding.
const MaxEncodedWidth = 4

// Codec describes a variable-width character encoding in terms of head
// bytes and continuation bytes.
type Codec interface {
	// IsHead reports whether b is the first byte of an encoded character.
	IsHead(b byte) bool

	// LengthByHead returns the number of bytes of the character whose
	// head byte is b. Bytes that are not valid head bytes report 1, so a
	// forward scan over damaged content still advances.
	LengthByHead(b byte) int

	// Decode decodes the character beginning at p[0]. If p does not
	// begin with a well-formed character, the first byte is returned
	// widened to a rune with size 1 (a degraded single-byte read).
	Decode(p []byte) (r rune, size int)
}
