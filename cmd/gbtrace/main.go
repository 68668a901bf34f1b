// Command gbtrace loads a program image into the emulator core, runs it
// for a number of steps and prints the resulting register state.
// Optionally the tile set in video RAM is written out as an image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	imageFile := flag.String("image", "", "The program image to load (raw, .gz, .zip or .7z)")
	steps := flag.Int("steps", 1000000, "The maximum number of instructions to execute")
	entry := flag.String("entry", "0x0100", "The address execution starts at")
	strict := flag.Bool("strict", false, "Stop on opcodes without an instruction")
	debug := flag.Bool("debug", false, "Trace every instruction and honour the LD B, B breakpoint")
	tiles := flag.String("tiles", "", "Write the tile set to this file (.bmp or .png)")
	scale := flag.Int("scale", 4, "The scale factor of the tile set image")
	pal := flag.Int("palette", 0, "The palette used for the tile set image")
	flag.Parse()

	level := logrus.InfoLevel
	if *debug {
		level = logrus.DebugLevel
	}
	logger := log.NewWithOutput(os.Stderr, level)

	if *imageFile == "" {
		fatal(logger, errors.New("no image given, use -image"))
	}
	program, err := utils.LoadFile(*imageFile)
	if err != nil {
		fatal(logger, err)
	}
	pc, err := strconv.ParseUint(*entry, 0, 16)
	if err != nil {
		fatal(logger, fmt.Errorf("invalid entry point %q: %w", *entry, err))
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithProgram(program),
		gameboy.WithEntryPoint(uint16(pc)),
	}
	if *strict {
		opts = append(opts, gameboy.StrictOpcodes())
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.NewGameBoy(opts...)
	if err != nil {
		fatal(logger, err)
	}

	n, err := gb.Run(*steps)
	switch {
	case errors.Is(err, gameboy.ErrHalted):
		logger.Infof("halted after %d steps", n)
	case err != nil:
		printState(gb.CPU)
		fatal(logger, err)
	case gb.CPU.DebugBreakpoint:
		logger.Infof("breakpoint after %d steps", n)
	default:
		logger.Infof("ran %d steps", n)
	}
	printState(gb.CPU)

	if *tiles != "" {
		sheet := ppu.NewTileSheet(gb.Video, palette.Get(*pal))
		sheet.Render()
		if err := utils.SaveImage(sheet.Scaled(*scale), *tiles); err != nil {
			fatal(logger, err)
		}
		logger.Infof("wrote tile set to %s", *tiles)
	}
}

func printState(c *cpu.CPU) {
	fmt.Printf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IME=%t\n",
		c.PC, c.SP, c.Pair(cpu.PairAF), c.Pair(cpu.PairBC), c.Pair(cpu.PairDE), c.Pair(cpu.PairHL), c.IME())
}

func fatal(logger log.Logger, err error) {
	logger.Errorf("%v", err)
	os.Exit(1)
}
