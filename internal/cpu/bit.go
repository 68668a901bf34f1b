package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// shift performs one of the prefixed rotate, shift or swap operations on
// target. All of them are 2 bytes wide, including the prefix.
func (c *CPU) shift(op Op, t Target) uint16 {
	n := c.read(t)

	var result uint8
	var flags Flags
	switch op {
	case OpRLC:
		result, flags = rotateLeftCircular(n)
	case OpRRC:
		result, flags = rotateRightCircular(n)
	case OpRL:
		result, flags = rotateLeft(n, c.F)
	case OpRR:
		result, flags = rotateRight(n, c.F)
	case OpSLA:
		result, flags = shiftLeftArithmetic(n)
	case OpSRA:
		result, flags = shiftRightArithmetic(n)
	case OpSwap:
		result, flags = swap(n)
	case OpSRL:
		result, flags = shiftRightLogical(n)
	}
	c.write(t, result)
	c.F = flags
	return c.PC + 2
}

// setBit sets (SET) or clears (RES) bit b of target. Flags are not affected.
func (c *CPU) setBit(op Op, b uint8, t Target) uint16 {
	n := c.read(t)
	if op == OpSet {
		n = types.SetBit(n, b)
	} else {
		n = types.ResetBit(n, b)
	}
	c.write(t, n)
	return c.PC + 2
}
