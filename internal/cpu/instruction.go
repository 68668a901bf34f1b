package cpu

import "fmt"

// Op identifies an instruction family. Together with the operand fields
// of Instruction it forms a closed tagged variant: adding an instruction
// means adding an Op, a decode table entry and a case in execute.
type Op uint8

const (
	OpNop Op = iota
	OpStop
	OpHalt
	OpDI
	OpEI

	OpLoad     // LD Target, Source
	OpLoad16   // LD Pair, d16
	OpLoadA    // LD A, (Indirect)
	OpStoreA   // LD (Indirect), A
	OpStoreSP  // LD (a16), SP
	OpLoadSPHL // LD SP, HL
	OpLoadHLSP // LD HL, SP+r8

	OpInc   // INC Target
	OpDec   // DEC Target
	OpInc16 // INC Pair
	OpDec16 // DEC Pair
	OpAdd   // ADD A, Source
	OpAdc   // ADC A, Source
	OpSub   // SUB Source
	OpSbc   // SBC A, Source
	OpAnd   // AND Source
	OpXor   // XOR Source
	OpOr    // OR Source
	OpCp    // CP Source
	OpAddHL // ADD HL, Pair
	OpAddSP // ADD SP, r8

	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF

	OpJR   // JR Cond, r8
	OpJP   // JP Cond, a16
	OpJPHL // JP HL
	OpCall // CALL Cond, a16
	OpRet  // RET Cond
	OpRetI // RETI
	OpRst  // RST Vector
	OpPush // PUSH Pair
	OpPop  // POP Pair

	// prefixed (0xCB) instructions, all operating on Target

	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSwap
	OpSRL
	OpBit // BIT Bit, Target
	OpRes // RES Bit, Target
	OpSet // SET Bit, Target
)

var opNames = [...]string{
	OpNop: "NOP", OpStop: "STOP", OpHalt: "HALT", OpDI: "DI", OpEI: "EI",
	OpLoad: "LD", OpLoad16: "LD", OpLoadA: "LD", OpStoreA: "LD", OpStoreSP: "LD",
	OpLoadSPHL: "LD", OpLoadHLSP: "LD",
	OpInc: "INC", OpDec: "DEC", OpInc16: "INC", OpDec16: "DEC",
	OpAdd: "ADD", OpAdc: "ADC", OpSub: "SUB", OpSbc: "SBC",
	OpAnd: "AND", OpXor: "XOR", OpOr: "OR", OpCp: "CP",
	OpAddHL: "ADD", OpAddSP: "ADD",
	OpRLCA: "RLCA", OpRRCA: "RRCA", OpRLA: "RLA", OpRRA: "RRA",
	OpDAA: "DAA", OpCPL: "CPL", OpSCF: "SCF", OpCCF: "CCF",
	OpJR: "JR", OpJP: "JP", OpJPHL: "JP", OpCall: "CALL", OpRet: "RET", OpRetI: "RETI",
	OpRst: "RST", OpPush: "PUSH", OpPop: "POP",
	OpRLC: "RLC", OpRRC: "RRC", OpRL: "RL", OpRR: "RR",
	OpSLA: "SLA", OpSRA: "SRA", OpSwap: "SWAP", OpSRL: "SRL",
	OpBit: "BIT", OpRes: "RES", OpSet: "SET",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Target selects an 8-bit operand. The first eight values follow the
// order used by the opcode encoding, so the register field of an opcode
// can be converted directly.
type Target uint8

const (
	TargetB Target = iota
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetHLI // memory at the address held in HL
	TargetA
	TargetD8 // the immediate byte following the opcode
)

var targetNames = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A", "d8"}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return fmt.Sprintf("Target(%d)", uint8(t))
}

// Pair selects a 16-bit operand. BC, DE, HL and SP follow the opcode
// encoding of the 16-bit arithmetic and load instructions; PUSH and POP
// substitute AF for SP.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Condition is the condition under which a jump, call or return is taken.
type Condition uint8

const (
	CondAlways Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

var condNames = [...]string{"", "NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// Indirect selects the memory operand of the accumulator loads.
type Indirect uint8

const (
	IndirectBC    Indirect = iota // (BC)
	IndirectDE                    // (DE)
	IndirectHLInc                 // (HL), then HL++
	IndirectHLDec                 // (HL), then HL--
	IndirectA16                   // (a16)
	IndirectA8                    // (0xFF00 + a8)
	IndirectC                     // (0xFF00 + C)
)

var indirectNames = [...]string{"(BC)", "(DE)", "(HL+)", "(HL-)", "(a16)", "(a8)", "(C)"}

func (i Indirect) String() string {
	if int(i) < len(indirectNames) {
		return indirectNames[i]
	}
	return fmt.Sprintf("Indirect(%d)", uint8(i))
}

// Instruction is a decoded instruction. Op determines which of the
// operand fields are meaningful; the others are left at their zero
// value. Instructions are plain values and never mutated after decoding.
type Instruction struct {
	Op       Op
	Target   Target
	Source   Target
	Pair     Pair
	Cond     Condition
	Indirect Indirect
	Bit      uint8
	Vector   uint8

	// Prefixed is set for instructions decoded from the 0xCB table.
	Prefixed bool
}

// String returns the mnemonic of the instruction, e.g. "LD B, (HL)".
func (i Instruction) String() string {
	name := i.Op.String()
	switch i.Op {
	case OpLoad:
		return fmt.Sprintf("LD %s, %s", i.Target, i.Source)
	case OpLoad16:
		return fmt.Sprintf("LD %s, d16", i.Pair)
	case OpLoadA:
		if i.Indirect == IndirectA8 {
			return "LDH A, (a8)"
		}
		return fmt.Sprintf("LD A, %s", i.Indirect)
	case OpStoreA:
		if i.Indirect == IndirectA8 {
			return "LDH (a8), A"
		}
		return fmt.Sprintf("LD %s, A", i.Indirect)
	case OpStoreSP:
		return "LD (a16), SP"
	case OpLoadSPHL:
		return "LD SP, HL"
	case OpLoadHLSP:
		return "LD HL, SP+r8"
	case OpInc, OpDec, OpSub, OpAnd, OpXor, OpOr, OpCp,
		OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSwap, OpSRL:
		return fmt.Sprintf("%s %s", name, i.operand())
	case OpAdd, OpAdc, OpSbc:
		return fmt.Sprintf("%s A, %s", name, i.Source)
	case OpInc16, OpDec16, OpPush, OpPop:
		return fmt.Sprintf("%s %s", name, i.Pair)
	case OpAddHL:
		return fmt.Sprintf("ADD HL, %s", i.Pair)
	case OpAddSP:
		return "ADD SP, r8"
	case OpJR:
		return conditional(name, i.Cond, "r8")
	case OpJP, OpCall:
		return conditional(name, i.Cond, "a16")
	case OpJPHL:
		return "JP HL"
	case OpRet:
		if i.Cond == CondAlways {
			return name
		}
		return fmt.Sprintf("%s %s", name, i.Cond)
	case OpRst:
		return fmt.Sprintf("RST %02XH", i.Vector)
	case OpBit, OpRes, OpSet:
		return fmt.Sprintf("%s %d, %s", name, i.Bit, i.Target)
	}
	return name
}

// operand returns the single 8-bit operand of unary and logic instructions.
func (i Instruction) operand() Target {
	switch i.Op {
	case OpSub, OpAnd, OpXor, OpOr, OpCp:
		return i.Source
	}
	return i.Target
}

func conditional(name string, c Condition, arg string) string {
	if c == CondAlways {
		return fmt.Sprintf("%s %s", name, arg)
	}
	return fmt.Sprintf("%s %s, %s", name, c, arg)
}
