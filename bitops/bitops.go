// Package bitops implements the width-generic arithmetic the 65C816 core
// needs to run the same instruction body in 8-bit and 16-bit operand mode.
package bitops

// Width is the constraint satisfied by the two operand widths the 816
// ever works in. Every ALU helper here is instantiated at exactly these
// two concrete types, never called through an interface, so the two
// widths compile to two separate monomorphised code paths; cpu65816's
// instruction bodies pick one from the M or X flag when they run.
type Width interface {
	~uint8 | ~uint16
}

// Bits reports the operand width in bits: 8 or 16.
func Bits[W Width]() int {
	var w W
	switch any(w).(type) {
	case uint8:
		return 8
	default:
		return 16
	}
}

// Max returns the all-ones value for W (0xFF or 0xFFFF).
func Max[W Width]() W {
	var w W
	return ^w
}

// SignBit returns the negative-flag bit for W (0x80 or 0x8000).
func SignBit[W Width]() W {
	return W(1) << (Bits[W]() - 1)
}

// WrappingAdd adds a and b modulo 2^Bits(W), returning the sum and
// whether unsigned carry out of the top bit occurred.
func WrappingAdd[W Width](a, b W, carryIn bool) (W, bool) {
	wide := uint32(a) + uint32(b)
	if carryIn {
		wide++
	}
	sum := W(wide)
	carry := wide > uint32(Max[W]())
	return sum, carry
}

// WrappingSub subtracts b (and a borrow-in) from a modulo 2^Bits(W),
// returning the difference and whether no borrow was needed (i.e. the
// 65816's inverted-carry convention: C=1 means "no borrow").
func WrappingSub[W Width](a, b W, borrowIn bool) (W, bool) {
	carryIn := !borrowIn
	notB := Max[W]() - b
	return WrappingAdd(a, notB, carryIn)
}

// Overflowed reports signed (two's complement) overflow of a+b=result.
func Overflowed[W Width](a, b, result W) bool {
	signA := a&SignBit[W]() != 0
	signB := b&SignBit[W]() != 0
	signR := result&SignBit[W]() != 0
	return signA == signB && signA != signR
}

// IsNegative reports whether the sign bit of v is set.
func IsNegative[W Width](v W) bool {
	return v&SignBit[W]() != 0
}

// IsZero reports whether v is the zero value for W.
func IsZero[W Width](v W) bool {
	return v == 0
}

// ShiftLeft performs one ASL/ROL step: returns the shifted value and the
// bit shifted out (which becomes the new carry).
func ShiftLeft[W Width](v W, carryIn bool) (W, bool) {
	carryOut := v&SignBit[W]() != 0
	result := v << 1
	if carryIn {
		result |= 1
	}
	return result, carryOut
}

// ShiftRight performs one LSR/ROR step: returns the shifted value and the
// bit shifted out (which becomes the new carry).
func ShiftRight[W Width](v W, carryIn bool) (W, bool) {
	carryOut := v&1 != 0
	result := v >> 1
	if carryIn {
		result |= SignBit[W]()
	}
	return result, carryOut
}

// Lo returns the low 8 bits of v.
func Lo[W Width](v W) uint8 {
	return uint8(v)
}

// Hi returns the high 8 bits of a 16-bit value (0 for an 8-bit W).
func Hi[W Width](v W) uint8 {
	if Bits[W]() == 8 {
		return 0
	}
	return uint8(uint16(v) >> 8)
}

// Join16 assembles a uint16 from its low and high bytes. Grounded on
// original_source's ByteAccess/WriteTwice two-write latch pattern; the
// bus package assembles its 16-bit ports itself and does not call it.
func Join16(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
