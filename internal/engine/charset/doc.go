// Package charset classifies the bytes of a variable-width character
// encoding. The engine core never assumes a specific encoding; it asks a
// Codec whether a byte starts a character and how many bytes that
// character occupies. The package ships a UTF-8 codec, which is the only
// encoding the rest of the project uses.
//
// A Codec answers three questions:
//
//   - IsHead: does this byte begin an encoded character?
//   - LengthByHead: how many bytes does the character starting with this
//     head byte occupy?
//   - Decode: what character do these bytes encode?
//
// Continuation bytes must be distinguishable from head bytes so that a
// backward scan for the previous character boundary always terminates
// within MaxEncodedWidth bytes.
package charset
