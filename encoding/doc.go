// Package encoding implements the 2-bit ternary weight encoding.
//
// A ternary weight is one of {-1, 0, +1}. The dense representation spends a
// full byte (int8) per weight; the packed representation stores four weights
// per byte as 2-bit fields, giving a row stride of ceil(cols/4) bytes.
//
// # Field Layout
//
// Field i of a packed byte occupies bits [2i, 2i+1], i in 0..3, so the weight
// for column c of a row lives in byte c/4 at bit 2*(c%4). The field values are:
//
//	00 -> 0
//	01 -> +1
//	10 -> -1
//	11 -> -1 (never produced by the encoder, see DecodeTrit)
//
// Trailing fields beyond the logical column count in the last byte of a row are
// padding and always decode to 0, because PackTernary zero-fills the output
// buffer before writing any field.
//
// This package operates on raw slices. The matrix package provides the typed
// Dense/Packed wrappers that most callers should use instead.
package encoding
