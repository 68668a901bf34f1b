package gameboy

import (
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables the CPU's instruction trace and LD B, B breakpoint.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.cpuOpts = append(gb.cpuOpts, cpu.Debug())
	}
}

// StrictOpcodes makes opcodes without an instruction stop Run with an
// error, instead of being skipped over as inert.
func StrictOpcodes() Opt {
	return func(gb *GameBoy) {
		gb.cpuOpts = append(gb.cpuOpts, cpu.StrictOpcodes())
	}
}

// WithLogger sets the logger shared by the GameBoy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithProgram loads the given image into the program region,
// starting at address 0x0000.
func WithProgram(image []byte) Opt {
	return func(gb *GameBoy) {
		gb.program = image
	}
}

// WithEntryPoint sets the address execution starts at, instead of 0x0100.
func WithEntryPoint(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.entryPoint = pc
	}
}
