package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// load copies an 8-bit value from source to target.
//
//	LD r, r'
//	LD r, d8
//	LD r, (HL)
//	LD (HL), r
//	LD (HL), d8
func (c *CPU) load(target, source Target) uint16 {
	c.write(target, c.read(source))

	if c.Debug && target == TargetB && source == TargetB {
		c.DebugBreakpoint = true
	}

	if source == TargetD8 {
		return c.PC + 2
	}
	return c.PC + 1
}

// indirectAddress resolves the memory operand of an accumulator load and
// returns it with the width of the instruction.
func (c *CPU) indirectAddress(i Indirect) (uint16, uint16) {
	switch i {
	case IndirectBC:
		return c.Pair(PairBC), 1
	case IndirectDE:
		return c.Pair(PairDE), 1
	case IndirectHLInc, IndirectHLDec:
		return c.Pair(PairHL), 1
	case IndirectA16:
		return c.readOperand16(), 3
	case IndirectA8:
		return types.IOBase + uint16(c.readOperand()), 2
	case IndirectC:
		return types.IOBase + uint16(c.C), 1
	}
	panic("invalid indirect operand: " + i.String())
}

// postIndirect applies the HL increment or decrement of LD (HL+) and LD (HL-).
func (c *CPU) postIndirect(i Indirect) {
	switch i {
	case IndirectHLInc:
		c.SetPair(PairHL, c.Pair(PairHL)+1)
	case IndirectHLDec:
		c.SetPair(PairHL, c.Pair(PairHL)-1)
	}
}

// loadA loads A from memory.
//
//	LD A, (BC)
//	LD A, (DE)
//	LD A, (HL+)
//	LD A, (HL-)
//	LD A, (a16)
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadA(i Indirect) uint16 {
	address, width := c.indirectAddress(i)
	c.A = c.bus.Read(address)
	c.postIndirect(i)
	return c.PC + width
}

// storeA stores A to memory, the inverse of loadA.
func (c *CPU) storeA(i Indirect) uint16 {
	address, width := c.indirectAddress(i)
	c.bus.Write(address, c.A)
	c.postIndirect(i)
	return c.PC + width
}

// storeSP stores SP at the little-endian address following the opcode.
//
//	LD (a16), SP
func (c *CPU) storeSP() uint16 {
	address := c.readOperand16()
	c.bus.Write(address, types.Low(c.SP))
	c.bus.Write(address+1, types.High(c.SP))
	return c.PC + 3
}
