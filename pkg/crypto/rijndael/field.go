package rijndael

// GF(2^8) arithmetic with operations modulo the Rijndael irreducible
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B). Bytes are polynomials
// over GF(2); addition is XOR.

// reductionPoly is the low byte of the Rijndael polynomial, folded in
// whenever a doubling carries out of the field.
const reductionPoly = 0x1b

// gfAdd performs addition in GF(2^8), which is XOR.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// xtime multiplies by x (2) in GF(2^8): shift left one bit and reduce
// modulo the field polynomial when the vacated high bit was set.
func xtime(b byte) byte {
	if b&0x80 == 0 {
		return b << 1
	}
	return (b << 1) ^ reductionPoly
}

// gfMultiply performs full multiplication in GF(2^8) by double-and-add:
// walk the bits of a low to high, accumulating b, which doubles via
// xtime once per bit.
func gfMultiply(a, b byte) byte {
	var product byte
	for i := 0; i < 8; i++ {
		if a&1 == 1 {
			product ^= b
		}
		a >>= 1
		b = xtime(b)
	}
	return product
}
