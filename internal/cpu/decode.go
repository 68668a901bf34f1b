package cpu

// PrefixByte is the opcode that selects the secondary instruction table
// for the byte that follows it.
const PrefixByte uint8 = 0xCB

type entry struct {
	instruction Instruction
	defined     bool
}

var (
	instructionSet   [256]entry
	instructionSetCB [256]entry
)

// Decode returns the instruction for opcode from the primary table. The
// boolean is false for opcodes that have no instruction, including
// PrefixByte, which is handled by the fetch stage.
func Decode(opcode uint8) (Instruction, bool) {
	e := instructionSet[opcode]
	return e.instruction, e.defined
}

// DecodePrefixed returns the instruction for the byte following
// PrefixByte. Every byte is defined in the secondary table.
func DecodePrefixed(opcode uint8) (Instruction, bool) {
	e := instructionSetCB[opcode]
	return e.instruction, e.defined
}

func define(opcode uint8, i Instruction) {
	instructionSet[opcode] = entry{instruction: i, defined: true}
}

func defineCB(opcode uint8, i Instruction) {
	i.Prefixed = true
	instructionSetCB[opcode] = entry{instruction: i, defined: true}
}

// disallowedOpcodes have no instruction on the hardware.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// registerTarget converts the 3-bit register field of an opcode.
func registerTarget(bits uint8) Target {
	return Target(bits & 0x7)
}

// condition converts the 2-bit condition field (bits 3-4) of an opcode.
func condition(opcode uint8) Condition {
	return CondNZ + Condition(opcode>>3&0x3)
}

func init() {
	define(0x00, Instruction{Op: OpNop})
	define(0x10, Instruction{Op: OpStop})
	define(0x76, Instruction{Op: OpHalt})
	define(0xF3, Instruction{Op: OpDI})
	define(0xFB, Instruction{Op: OpEI})

	// 0x00 - 0x3F
	for p := PairBC; p <= PairSP; p++ {
		row := uint8(p) << 4
		define(row|0x01, Instruction{Op: OpLoad16, Pair: p})
		define(row|0x03, Instruction{Op: OpInc16, Pair: p})
		define(row|0x09, Instruction{Op: OpAddHL, Pair: p})
		define(row|0x0B, Instruction{Op: OpDec16, Pair: p})
	}
	for i, ind := range []Indirect{IndirectBC, IndirectDE, IndirectHLInc, IndirectHLDec} {
		row := uint8(i) << 4
		define(row|0x02, Instruction{Op: OpStoreA, Indirect: ind})
		define(row|0x0A, Instruction{Op: OpLoadA, Indirect: ind})
	}
	for r := uint8(0); r < 8; r++ {
		t := registerTarget(r)
		define(r<<3|0x04, Instruction{Op: OpInc, Target: t})
		define(r<<3|0x05, Instruction{Op: OpDec, Target: t})
		define(r<<3|0x06, Instruction{Op: OpLoad, Target: t, Source: TargetD8})
	}
	for i, op := range []Op{OpRLCA, OpRRCA, OpRLA, OpRRA, OpDAA, OpCPL, OpSCF, OpCCF} {
		define(uint8(i)<<3|0x07, Instruction{Op: op})
	}
	define(0x08, Instruction{Op: OpStoreSP})
	define(0x18, Instruction{Op: OpJR, Cond: CondAlways})
	for _, opcode := range []uint8{0x20, 0x28, 0x30, 0x38} {
		define(opcode, Instruction{Op: OpJR, Cond: condition(opcode)})
	}

	// 0x40 - 0x7F, with 0x76 (LD (HL), (HL)) taken by HALT
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		define(uint8(opcode), Instruction{
			Op:     OpLoad,
			Target: registerTarget(uint8(opcode) >> 3),
			Source: registerTarget(uint8(opcode)),
		})
	}

	// 0x80 - 0xBF, and the d8 forms in column 0x6/0xE of 0xC0 - 0xFF
	for i, op := range []Op{OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp} {
		base := 0x80 | uint8(i)<<3
		for r := uint8(0); r < 8; r++ {
			define(base|r, Instruction{Op: op, Source: registerTarget(r)})
		}
		define(0xC6|uint8(i)<<3, Instruction{Op: op, Source: TargetD8})
	}

	// 0xC0 - 0xFF
	for _, opcode := range []uint8{0xC0, 0xC8, 0xD0, 0xD8} {
		define(opcode, Instruction{Op: OpRet, Cond: condition(opcode)})
	}
	for _, opcode := range []uint8{0xC2, 0xCA, 0xD2, 0xDA} {
		define(opcode, Instruction{Op: OpJP, Cond: condition(opcode)})
	}
	for _, opcode := range []uint8{0xC4, 0xCC, 0xD4, 0xDC} {
		define(opcode, Instruction{Op: OpCall, Cond: condition(opcode)})
	}
	for i, p := range []Pair{PairBC, PairDE, PairHL, PairAF} {
		row := 0xC0 | uint8(i)<<4
		define(row|0x01, Instruction{Op: OpPop, Pair: p})
		define(row|0x05, Instruction{Op: OpPush, Pair: p})
	}
	for v := uint8(0); v < 8; v++ {
		define(0xC7|v<<3, Instruction{Op: OpRst, Vector: v << 3})
	}
	define(0xC3, Instruction{Op: OpJP, Cond: CondAlways})
	define(0xC9, Instruction{Op: OpRet, Cond: CondAlways})
	define(0xCD, Instruction{Op: OpCall, Cond: CondAlways})
	define(0xD9, Instruction{Op: OpRetI})
	define(0xE0, Instruction{Op: OpStoreA, Indirect: IndirectA8})
	define(0xE2, Instruction{Op: OpStoreA, Indirect: IndirectC})
	define(0xE8, Instruction{Op: OpAddSP})
	define(0xE9, Instruction{Op: OpJPHL})
	define(0xEA, Instruction{Op: OpStoreA, Indirect: IndirectA16})
	define(0xF0, Instruction{Op: OpLoadA, Indirect: IndirectA8})
	define(0xF2, Instruction{Op: OpLoadA, Indirect: IndirectC})
	define(0xF8, Instruction{Op: OpLoadHLSP})
	define(0xF9, Instruction{Op: OpLoadSPHL})
	define(0xFA, Instruction{Op: OpLoadA, Indirect: IndirectA16})

	// the prefixed table is fully regular: 2 bits of group, 3 bits of
	// operation or bit index and 3 bits of register
	shifts := []Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSwap, OpSRL}
	for opcode := 0; opcode <= 0xFF; opcode++ {
		op := uint8(opcode)
		t := registerTarget(op)
		n := op >> 3 & 0x7
		switch op >> 6 {
		case 0:
			defineCB(op, Instruction{Op: shifts[n], Target: t})
		case 1:
			defineCB(op, Instruction{Op: OpBit, Bit: n, Target: t})
		case 2:
			defineCB(op, Instruction{Op: OpRes, Bit: n, Target: t})
		case 3:
			defineCB(op, Instruction{Op: OpSet, Bit: n, Target: t})
		}
	}
}
