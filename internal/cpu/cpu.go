// Package cpu implements the fetch-decode-execute core of the emulator:
// the register file and flags, the instruction decoder and the
// execution of every instruction against a memory bus.
package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
)

// Bus is the memory the CPU reads instructions and data from.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the flags.
	Registers

	// Debug enables the LD B, B software breakpoint and instruction tracing.
	Debug           bool
	DebugBreakpoint bool

	bus   Bus
	mode  mode
	ime   bool
	fault error

	strict bool
	log    log.Logger
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// StrictOpcodes makes Step report opcodes without an instruction as an
// *UnknownOpcodeError, instead of treating them as an inert step.
func StrictOpcodes() Opt {
	return func(c *CPU) {
		c.strict = true
	}
}

// Debug enables debugging.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// NewCPU creates a new CPU instance with the given bus.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step fetches, decodes and executes a single instruction.
//
// A halted or stopped CPU does nothing. An opcode without an instruction
// leaves the CPU untouched, unless StrictOpcodes is set. Accessing memory
// that is not mapped is fatal: the error is returned and every following
// call to Step returns it again without making progress.
func (c *CPU) Step() (err error) {
	if c.fault != nil {
		return c.fault
	}
	if c.mode != ModeNormal {
		return nil
	}
	defer c.recoverFault(&err)

	instruction, ok := c.fetch()
	if !ok {
		opcode := c.bus.Read(c.PC)
		c.log.Debugf("no instruction for opcode %02X at %04X", opcode, c.PC)
		if c.strict {
			return &UnknownOpcodeError{Opcode: opcode, Address: c.PC}
		}
		return nil
	}

	c.PC = c.execute(instruction)
	return nil
}

// Execute executes an already decoded instruction at the current program
// counter, and returns the new program counter.
func (c *CPU) Execute(instruction Instruction) (pc uint16, err error) {
	if c.fault != nil {
		return c.PC, c.fault
	}
	defer func() {
		if err != nil {
			pc = c.PC
		}
	}()
	defer c.recoverFault(&err)

	c.PC = c.execute(instruction)
	return c.PC, nil
}

// fetch reads the opcode at PC and decodes it, consulting the prefixed
// table when the opcode is PrefixByte.
func (c *CPU) fetch() (Instruction, bool) {
	opcode := c.bus.Read(c.PC)
	if opcode == PrefixByte {
		return DecodePrefixed(c.bus.Read(c.PC + 1))
	}
	return Decode(opcode)
}

// recoverFault turns an unmapped bus access into a latched fault.
func (c *CPU) recoverFault(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*mmu.UnmappedAccessError)
	if !ok {
		panic(r)
	}
	c.log.Errorf("fatal: %s (PC=%04X)", fault, c.PC)
	c.fault = fault
	*err = fault
}

// Halted reports whether the CPU is halted or stopped.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Mode returns the current CPU mode.
func (c *CPU) Mode() uint8 {
	return c.mode
}

// Resume returns a halted or stopped CPU to normal execution.
func (c *CPU) Resume() {
	c.mode = ModeNormal
}

// IME reports whether interrupts are enabled.
func (c *CPU) IME() bool {
	return c.ime
}

// Fault returns the fatal error that stopped the CPU, if any.
func (c *CPU) Fault() error {
	return c.fault
}

// readOperand reads the byte following the opcode.
func (c *CPU) readOperand() uint8 {
	return c.bus.Read(c.PC + 1)
}

// readOperand16 reads the little-endian word following the opcode.
func (c *CPU) readOperand16() uint16 {
	return types.Word(c.bus.Read(c.PC+2), c.bus.Read(c.PC+1))
}

// read returns the value of an 8-bit operand.
func (c *CPU) read(t Target) uint8 {
	switch t {
	case TargetHLI:
		return c.bus.Read(c.Pair(PairHL))
	case TargetD8:
		return c.readOperand()
	}
	return c.Get(t)
}

// write stores value in an 8-bit operand.
func (c *CPU) write(t Target, value uint8) {
	if t == TargetHLI {
		c.bus.Write(c.Pair(PairHL), value)
		return
	}
	c.Set(t, value)
}

// readPair returns the value of a register pair, or SP.
func (c *CPU) readPair(p Pair) uint16 {
	if p == PairSP {
		return c.SP
	}
	return c.Pair(p)
}

// writePair sets the value of a register pair, or SP.
func (c *CPU) writePair(p Pair, value uint16) {
	if p == PairSP {
		c.SP = value
		return
	}
	c.SetPair(p, value)
}
