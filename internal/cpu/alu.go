package cpu

// The arithmetic and logic rules of the CPU. Each rule is a pure
// function of its operands and the current flags; the caller commits the
// result and the returned flags together.

// add adds b (and the carry, if carry is set) to a.
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func add(a, b uint8, carry bool) (uint8, Flags) {
	var c uint8
	if carry {
		c = 1
	}
	sum := uint16(a) + uint16(b) + uint16(c)
	result := uint8(sum)
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: a&0xF+b&0xF+c > 0xF,
		Carry:     sum > 0xFF,
	}
}

// sub subtracts b (and the carry, if carry is set) from a. It is also
// used by CP, which discards the result.
//
//	SUB n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func sub(a, b uint8, carry bool) (uint8, Flags) {
	var c int
	if carry {
		c = 1
	}
	diff := int(a) - int(b) - c
	result := uint8(diff)
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: int(a&0xF)-int(b&0xF)-c < 0,
		Carry:     diff < 0,
	}
}

// and performs a bitwise AND.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func and(a, b uint8) (uint8, Flags) {
	result := a & b
	return result, Flags{Zero: result == 0, HalfCarry: true}
}

// or performs a bitwise OR. Flags: Z set if result is zero, others reset.
func or(a, b uint8) (uint8, Flags) {
	result := a | b
	return result, Flags{Zero: result == 0}
}

// xor performs a bitwise XOR. Flags: Z set if result is zero, others reset.
func xor(a, b uint8) (uint8, Flags) {
	result := a ^ b
	return result, Flags{Zero: result == 0}
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func increment(n uint8, f Flags) (uint8, Flags) {
	result := n + 1
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: n&0xF == 0xF,
		Carry:     f.Carry,
	}
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func decrement(n uint8, f Flags) (uint8, Flags) {
	result := n - 1
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: n&0xF == 0,
		Carry:     f.Carry,
	}
}

// addHL adds nn to hl.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func addHL(hl, nn uint16, f Flags) (uint16, Flags) {
	sum := uint32(hl) + uint32(nn)
	return uint16(sum), Flags{
		Zero:      f.Zero,
		HalfCarry: hl&0x7FF+nn&0x7FF > 0x7FF,
		Carry:     sum > 0xFFFF,
	}
}

// addSPSigned adds the signed offset e to sp. Carries are computed on the
// unsigned low byte, as the hardware does.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func addSPSigned(sp uint16, e uint8) (uint16, Flags) {
	result := uint16(int32(sp) + int32(int8(e)))
	return result, Flags{
		HalfCarry: sp&0xF+uint16(e&0xF) > 0xF,
		Carry:     sp&0xFF+uint16(e) > 0xFF,
	}
}

// daa adjusts a into binary coded decimal after an addition or
// subtraction, using the flags left behind by it.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if an adjustment of 0x60 was made.
func daa(a uint8, f Flags) (uint8, Flags) {
	var adjust uint8
	carry := f.Carry
	if !f.Subtract {
		if f.Carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		if f.HalfCarry || a&0xF > 0x9 {
			adjust |= 0x06
		}
		a += adjust
	} else {
		if f.Carry {
			adjust |= 0x60
		}
		if f.HalfCarry {
			adjust |= 0x06
		}
		a -= adjust
	}
	return a, Flags{Zero: a == 0, Subtract: f.Subtract, Carry: carry}
}

// rotateLeftCircular rotates n left, copying bit 7 into bit 0 and the carry.
func rotateLeftCircular(n uint8) (uint8, Flags) {
	result := n<<1 | n>>7
	return result, Flags{Zero: result == 0, Carry: n&0x80 != 0}
}

// rotateRightCircular rotates n right, copying bit 0 into bit 7 and the carry.
func rotateRightCircular(n uint8) (uint8, Flags) {
	result := n>>1 | n<<7
	return result, Flags{Zero: result == 0, Carry: n&0x01 != 0}
}

// rotateLeft rotates n left through the carry.
func rotateLeft(n uint8, f Flags) (uint8, Flags) {
	result := n << 1
	if f.Carry {
		result |= 0x01
	}
	return result, Flags{Zero: result == 0, Carry: n&0x80 != 0}
}

// rotateRight rotates n right through the carry.
func rotateRight(n uint8, f Flags) (uint8, Flags) {
	result := n >> 1
	if f.Carry {
		result |= 0x80
	}
	return result, Flags{Zero: result == 0, Carry: n&0x01 != 0}
}

// shiftLeftArithmetic shifts n left into the carry, bit 0 becomes 0.
func shiftLeftArithmetic(n uint8) (uint8, Flags) {
	result := n << 1
	return result, Flags{Zero: result == 0, Carry: n&0x80 != 0}
}

// shiftRightArithmetic shifts n right into the carry, keeping bit 7.
func shiftRightArithmetic(n uint8) (uint8, Flags) {
	result := n>>1 | n&0x80
	return result, Flags{Zero: result == 0, Carry: n&0x01 != 0}
}

// shiftRightLogical shifts n right into the carry, bit 7 becomes 0.
func shiftRightLogical(n uint8) (uint8, Flags) {
	result := n >> 1
	return result, Flags{Zero: result == 0, Carry: n&0x01 != 0}
}

// swap the upper and lower nibbles of n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func swap(n uint8) (uint8, Flags) {
	result := n<<4 | n>>4
	return result, Flags{Zero: result == 0}
}

// testBit tests bit b of n.
//
//	BIT b, r
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func testBit(n, b uint8, f Flags) Flags {
	return Flags{Zero: n&(1<<b) == 0, HalfCarry: true, Carry: f.Carry}
}
