package encoding

// Field values of the 2-bit ternary encoding.
const (
	fieldZero byte = 0x0 // 00 -> 0
	fieldPos  byte = 0x1 // 01 -> +1
	fieldNeg  byte = 0x2 // 10 -> -1

	// TritsPerByte is the number of 2-bit fields stored in one packed byte.
	TritsPerByte = 4

	// fieldMask extracts a single 2-bit field.
	fieldMask byte = 0x3
)

// EncodeTrit encodes a ternary weight into its 2-bit field value.
//
// The mapping is 0 -> 00, +1 -> 01, -1 -> 10. The field value 11 is never
// produced. The input must be a valid ternary weight; any non-zero, non-one
// value is encoded as -1, matching the generator's value domain.
func EncodeTrit(v int8) byte {
	switch v {
	case 0:
		return fieldZero
	case 1:
		return fieldPos
	default:
		return fieldNeg
	}
}

// DecodeTrit decodes a 2-bit field value into a ternary weight.
//
// The mapping is 00 -> 0, 01 -> +1, 10 -> -1. The field value 11 also decodes
// to -1, mirroring 10: it is unreachable through EncodeTrit (the packer only
// ever writes 00, 01 or 10 into a zero-filled buffer), so the mapping only
// matters for hand-built buffers, where treating the set bit 1 as the sign
// keeps decoding branch-light. Only the low two bits of field are examined.
func DecodeTrit(field byte) int8 {
	bits := field & fieldMask
	if bits&fieldNeg != 0 {
		return -1
	}
	if bits == fieldPos {
		return 1
	}

	return 0
}

// PackedStride returns the packed row stride in bytes for the given column
// count: ceil(cols / 4).
func PackedStride(cols int) int {
	return (cols + TritsPerByte - 1) / TritsPerByte
}
