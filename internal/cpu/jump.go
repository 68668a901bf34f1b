package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// jumpAbsolute jumps to the address following the opcode if cond holds.
//
//	JP cc, a16
func (c *CPU) jumpAbsolute(cond Condition) uint16 {
	if c.F.test(cond) {
		return c.readOperand16()
	}
	return c.PC + 3
}

// jumpRelative adds the signed byte following the opcode to the address
// of the next instruction if cond holds.
//
//	JR cc, r8
func (c *CPU) jumpRelative(cond Condition) uint16 {
	next := c.PC + 2
	if c.F.test(cond) {
		return next + uint16(int8(c.readOperand()))
	}
	return next
}

// call pushes the address of the next instruction and jumps to the
// address following the opcode if cond holds. An untaken call still
// skips its 2 byte operand.
//
//	CALL cc, a16
func (c *CPU) call(cond Condition) uint16 {
	next := c.PC + 3
	if c.F.test(cond) {
		target := c.readOperand16()
		c.push(next)
		return target
	}
	return next
}

// ret pops the return address if cond holds.
//
//	RET cc
func (c *CPU) ret(cond Condition) uint16 {
	if c.F.test(cond) {
		return c.pop()
	}
	return c.PC + 1
}

// push decrements SP and writes the high byte, then decrements SP again
// and writes the low byte. SP is left pointing at the low byte.
func (c *CPU) push(value uint16) {
	c.SP--
	c.bus.Write(c.SP, types.High(value))
	c.SP--
	c.bus.Write(c.SP, types.Low(value))
}

// pop is the inverse of push.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return types.Word(high, low)
}
