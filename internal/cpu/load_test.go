package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstruction_LoadRegister(t *testing.T) {
	c, _ := newTestCPU(t)
	targets := []Target{TargetB, TargetC, TargetD, TargetE, TargetH, TargetL, TargetA}

	for _, target := range targets {
		for _, source := range targets {
			c.Registers = Registers{}
			c.Set(source, 0x5A)
			c.PC = 0x0100

			pc, err := c.Execute(Instruction{Op: OpLoad, Target: target, Source: source})
			require.NoError(t, err)
			assert.Equal(t, uint16(0x0101), pc)
			assert.Equalf(t, uint8(0x5A), c.Get(target), "LD %s, %s", target, source)
		}
	}
}

func TestInstruction_LoadImmediate(t *testing.T) {
	c, m := newTestCPU(t)
	program(m, 0x0100,
		0x3E, 0x99, // LD A, 0x99
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0x36, 0x77, // LD (HL), 0x77
		0x31, 0xF0, 0xDF, // LD SP, 0xDFF0
	)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0102), c.PC, "immediate loads are 2 bytes")
	assert.Equal(t, uint8(0x99), c.A)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0105), c.PC)
	assert.Equal(t, uint16(0xC000), c.Pair(PairHL))

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0107), c.PC)
	assert.Equal(t, uint8(0x77), m.Read(0xC000))

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x010A), c.PC)
	assert.Equal(t, uint16(0xDFF0), c.SP)
}

func TestInstruction_LoadMemory(t *testing.T) {
	c, m := newTestCPU(t)
	c.SetPair(PairHL, 0xC010)
	m.Write(0xC010, 0x3C)

	pc, err := c.Execute(Instruction{Op: OpLoad, Target: TargetD, Source: TargetHLI})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0101), pc)
	assert.Equal(t, uint8(0x3C), c.D)

	c.E = 0xE0
	_, err = c.Execute(Instruction{Op: OpLoad, Target: TargetHLI, Source: TargetE})
	require.NoError(t, err)
	assert.Equal(t, uint8(0xE0), m.Read(0xC010))
}

func TestInstruction_LoadIndirect(t *testing.T) {
	c, m := newTestCPU(t)

	t.Run("(BC) and (DE)", func(t *testing.T) {
		c.SetPair(PairBC, 0xC100)
		c.SetPair(PairDE, 0xC200)
		c.A = 0x11
		_, err := c.Execute(Instruction{Op: OpStoreA, Indirect: IndirectBC})
		require.NoError(t, err)
		assert.Equal(t, uint8(0x11), m.Read(0xC100))

		m.Write(0xC200, 0x22)
		_, err = c.Execute(Instruction{Op: OpLoadA, Indirect: IndirectDE})
		require.NoError(t, err)
		assert.Equal(t, uint8(0x22), c.A)
	})
	t.Run("(HL+) and (HL-)", func(t *testing.T) {
		c.SetPair(PairHL, 0xC300)
		c.A = 0x33
		_, err := c.Execute(Instruction{Op: OpStoreA, Indirect: IndirectHLInc})
		require.NoError(t, err)
		assert.Equal(t, uint8(0x33), m.Read(0xC300))
		assert.Equal(t, uint16(0xC301), c.Pair(PairHL))

		m.Write(0xC301, 0x44)
		_, err = c.Execute(Instruction{Op: OpLoadA, Indirect: IndirectHLDec})
		require.NoError(t, err)
		assert.Equal(t, uint8(0x44), c.A)
		assert.Equal(t, uint16(0xC300), c.Pair(PairHL))
	})
	t.Run("(a16)", func(t *testing.T) {
		program(m, 0x0100, 0xEA, 0x00, 0xD0) // LD (0xD000), A
		c.PC, c.A = 0x0100, 0x55

		require.NoError(t, c.Step())
		assert.Equal(t, uint16(0x0103), c.PC)
		assert.Equal(t, uint8(0x55), m.Read(0xD000))
	})
	t.Run("high page", func(t *testing.T) {
		program(m, 0x0100, 0xE0, 0x80, 0xF2) // LDH (0x80), A; LD A, (C)
		c.PC, c.A, c.C = 0x0100, 0x66, 0x80

		require.NoError(t, c.Step())
		assert.Equal(t, uint16(0x0102), c.PC)
		assert.Equal(t, uint8(0x66), m.Read(0xFF80))

		c.A = 0
		require.NoError(t, c.Step())
		assert.Equal(t, uint16(0x0103), c.PC)
		assert.Equal(t, uint8(0x66), c.A)
	})
}

func TestInstruction_LoadVideo(t *testing.T) {
	c, m := newTestCPU(t)
	c.SetPair(PairHL, 0x8000)
	c.A = 0xFF

	_, err := c.Execute(Instruction{Op: OpStoreA, Indirect: IndirectHLInc})
	require.NoError(t, err)
	_, err = c.Execute(Instruction{Op: OpStoreA, Indirect: IndirectHLInc})
	require.NoError(t, err)

	assert.Equal(t, uint8(0xFF), m.Read(0x8001))
	assert.Equal(t, uint16(0x8002), c.Pair(PairHL))
}

func TestInstruction_StackPointerLoads(t *testing.T) {
	c, m := newTestCPU(t)
	program(m, 0x0100, 0x08, 0x00, 0xC0) // LD (0xC000), SP
	c.SP = 0xBEEF

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, uint8(0xEF), m.Read(0xC000))
	assert.Equal(t, uint8(0xBE), m.Read(0xC001))

	c.SetPair(PairHL, 0xD000)
	_, err := c.Execute(Instruction{Op: OpLoadSPHL})
	require.NoError(t, err)
	assert.Equal(t, uint16(0xD000), c.SP)
}
