// Package gameboy assembles the emulator core into a single machine: the
// CPU, the memory bus, the video device and the RAM regions owned by the
// host.
package gameboy

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// ErrHalted is returned by Run when the CPU halted before the requested
// number of steps was reached.
var ErrHalted = errors.New("cpu halted")

// GameBoy represents a Game Boy. It contains all the components of the
// emulator core, each exclusively owned by this instance.
type GameBoy struct {
	CPU   *cpu.CPU
	MMU   *mmu.MMU
	Video *ppu.Video

	ROM  *ram.RAM
	WRAM *ram.RAM
	HRAM *ram.RAM

	log.Logger

	program    []byte
	entryPoint uint16
	cpuOpts    []cpu.Opt
}

// NewGameBoy returns a new GameBoy, with the registers set to the values
// they hold once the boot ROM has finished.
func NewGameBoy(opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:     log.NewNullLogger(),
		entryPoint: types.EntryPoint,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Video = ppu.NewVideo()
	g.MMU = mmu.NewMMU(g.Video, mmu.WithLogger(g.Logger))
	g.ROM = ram.NewRAM(uint32(types.ROMEnd-types.ROMStart) + 1)
	g.WRAM = ram.NewRAM(uint32(types.WRAMEnd-types.WRAMStart) + 1)
	g.HRAM = ram.NewRAM(uint32(types.HRAMEnd-types.HRAMStart) + 1)

	for _, r := range []struct {
		name       string
		start, end uint16
		device     mmu.Device
	}{
		{"ROM", types.ROMStart, types.ROMEnd, g.ROM},
		{"WRAM", types.WRAMStart, types.WRAMEnd, g.WRAM},
		{"HRAM", types.HRAMStart, types.HRAMEnd, g.HRAM},
	} {
		if err := g.MMU.Map(r.name, r.start, r.end, r.device); err != nil {
			return nil, err
		}
	}

	if g.program != nil {
		if err := g.ROM.Load(0, g.program); err != nil {
			return nil, fmt.Errorf("loading program: %w", err)
		}
		g.Infof("loaded %d byte program", len(g.program))
	}

	g.CPU = cpu.NewCPU(g.MMU, append([]cpu.Opt{cpu.WithLogger(g.Logger)}, g.cpuOpts...)...)
	g.reset()

	return g, nil
}

// reset sets the registers to their post boot ROM values.
func (g *GameBoy) reset() {
	g.CPU.PC = g.entryPoint
	g.CPU.SP = types.StackTop
	g.CPU.SetPair(cpu.PairAF, 0x01B0)
	g.CPU.SetPair(cpu.PairBC, 0x0013)
	g.CPU.SetPair(cpu.PairDE, 0x00D8)
	g.CPU.SetPair(cpu.PairHL, 0x014D)
}

// Run steps the CPU up to steps times and returns the number of steps
// taken. It stops early when the CPU halts, hits the debug breakpoint or
// reports an error.
func (g *GameBoy) Run(steps int) (int, error) {
	for i := 0; i < steps; i++ {
		if g.CPU.Halted() {
			return i, ErrHalted
		}
		if err := g.CPU.Step(); err != nil {
			return i, err
		}
		if g.CPU.DebugBreakpoint {
			g.Debugf("breakpoint at %04X", g.CPU.PC)
			return i + 1, nil
		}
	}
	return steps, nil
}
