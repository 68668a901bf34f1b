package cpu

// modify applies fn to an 8-bit register or (HL), committing the result
// and flags together.
//
//	INC r
//	DEC r
func (c *CPU) modify(t Target, fn func(uint8) (uint8, Flags)) uint16 {
	result, flags := fn(c.read(t))
	c.write(t, result)
	c.F = flags
	return c.PC + 1
}

// arithmetic performs an 8-bit operation on A and source. CP discards
// the result and only keeps the flags.
func (c *CPU) arithmetic(op Op, source Target) uint16 {
	n := c.read(source)

	var result uint8
	var flags Flags
	switch op {
	case OpAdd:
		result, flags = add(c.A, n, false)
	case OpAdc:
		result, flags = add(c.A, n, c.F.Carry)
	case OpSub:
		result, flags = sub(c.A, n, false)
	case OpSbc:
		result, flags = sub(c.A, n, c.F.Carry)
	case OpAnd:
		result, flags = and(c.A, n)
	case OpXor:
		result, flags = xor(c.A, n)
	case OpOr:
		result, flags = or(c.A, n)
	case OpCp:
		_, flags = sub(c.A, n, false)
		result = c.A
	}
	c.A, c.F = result, flags

	if source == TargetD8 {
		return c.PC + 2
	}
	return c.PC + 1
}
