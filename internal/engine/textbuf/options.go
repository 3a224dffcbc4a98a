package textbuf

import "github.com/dshills/textcore/internal/engine/charset"

// Option is a functional option for configuring a Buffer.
type Option func(b *Buffer, gapSize *int64)

// WithMultibyte enables or disables multibyte character positions.
// Unibyte buffers treat every byte as one character.
func WithMultibyte(enabled bool) Option {
	return func(b *Buffer, _ *int64) {
		b.multibyte = enabled
	}
}

// WithCodec sets the variable-width codec used to classify head bytes
// and decode characters. Defaults to UTF-8.
func WithCodec(c charset.Codec) Option {
	return func(b *Buffer, _ *int64) {
		if c != nil {
			b.codec = c
		}
	}
}

// WithGapSize sets the initial gap size of the backing storage.
func WithGapSize(n int64) Option {
	return func(_ *Buffer, gapSize *int64) {
		if n > 0 {
			*gapSize = n
		}
	}
}

// WithReadOnly creates the buffer read-only.
func WithReadOnly() Option {
	return func(b *Buffer, _ *int64) {
		b.readOnly = true
	}
}
