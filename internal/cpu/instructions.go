package cpu

// execute runs instruction against the current state and returns the
// address of the next instruction. Handlers own their program counter
// delta; there is no increment after dispatch.
func (c *CPU) execute(instruction Instruction) uint16 {
	if c.Debug {
		c.log.Debugf("%04X  %s", c.PC, instruction)
	}

	switch instruction.Op {
	case OpNop:
		return c.PC + 1
	case OpStop:
		c.mode = ModeStop
		return c.PC + 2
	case OpHalt:
		c.mode = ModeHalt
		return c.PC + 1
	case OpDI:
		c.ime = false
		return c.PC + 1
	case OpEI:
		c.ime = true
		return c.PC + 1

	case OpLoad:
		return c.load(instruction.Target, instruction.Source)
	case OpLoad16:
		c.writePair(instruction.Pair, c.readOperand16())
		return c.PC + 3
	case OpLoadA:
		return c.loadA(instruction.Indirect)
	case OpStoreA:
		return c.storeA(instruction.Indirect)
	case OpStoreSP:
		return c.storeSP()
	case OpLoadSPHL:
		c.SP = c.Pair(PairHL)
		return c.PC + 1
	case OpLoadHLSP:
		hl, flags := addSPSigned(c.SP, c.readOperand())
		c.SetPair(PairHL, hl)
		c.F = flags
		return c.PC + 2

	case OpInc:
		return c.modify(instruction.Target, func(n uint8) (uint8, Flags) { return increment(n, c.F) })
	case OpDec:
		return c.modify(instruction.Target, func(n uint8) (uint8, Flags) { return decrement(n, c.F) })
	case OpInc16:
		c.writePair(instruction.Pair, c.readPair(instruction.Pair)+1)
		return c.PC + 1
	case OpDec16:
		c.writePair(instruction.Pair, c.readPair(instruction.Pair)-1)
		return c.PC + 1
	case OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp:
		return c.arithmetic(instruction.Op, instruction.Source)
	case OpAddHL:
		hl, flags := addHL(c.Pair(PairHL), c.readPair(instruction.Pair), c.F)
		c.SetPair(PairHL, hl)
		c.F = flags
		return c.PC + 1
	case OpAddSP:
		c.SP, c.F = addSPSigned(c.SP, c.readOperand())
		return c.PC + 2

	case OpRLCA:
		c.A, c.F = rotateLeftCircular(c.A)
		c.F.Zero = false
		return c.PC + 1
	case OpRRCA:
		c.A, c.F = rotateRightCircular(c.A)
		c.F.Zero = false
		return c.PC + 1
	case OpRLA:
		c.A, c.F = rotateLeft(c.A, c.F)
		c.F.Zero = false
		return c.PC + 1
	case OpRRA:
		c.A, c.F = rotateRight(c.A, c.F)
		c.F.Zero = false
		return c.PC + 1
	case OpDAA:
		c.A, c.F = daa(c.A, c.F)
		return c.PC + 1
	case OpCPL:
		c.A = ^c.A
		c.F.Subtract, c.F.HalfCarry = true, true
		return c.PC + 1
	case OpSCF:
		c.F = Flags{Zero: c.F.Zero, Carry: true}
		return c.PC + 1
	case OpCCF:
		c.F = Flags{Zero: c.F.Zero, Carry: !c.F.Carry}
		return c.PC + 1

	case OpJR:
		return c.jumpRelative(instruction.Cond)
	case OpJP:
		return c.jumpAbsolute(instruction.Cond)
	case OpJPHL:
		return c.Pair(PairHL)
	case OpCall:
		return c.call(instruction.Cond)
	case OpRet:
		return c.ret(instruction.Cond)
	case OpRetI:
		c.ime = true
		return c.ret(CondAlways)
	case OpRst:
		c.push(c.PC + 1)
		return uint16(instruction.Vector)
	case OpPush:
		c.push(c.readPair(instruction.Pair))
		return c.PC + 1
	case OpPop:
		c.writePair(instruction.Pair, c.pop())
		return c.PC + 1

	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSwap, OpSRL:
		return c.shift(instruction.Op, instruction.Target)
	case OpBit:
		c.F = testBit(c.read(instruction.Target), instruction.Bit, c.F)
		return c.PC + 2
	case OpRes, OpSet:
		return c.setBit(instruction.Op, instruction.Bit, instruction.Target)
	}

	panic("unhandled instruction: " + instruction.String())
}
