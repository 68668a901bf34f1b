package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// Bit positions of the flags in the F register.
const (
	FlagZero      uint8 = 7
	FlagSubtract  uint8 = 6
	FlagHalfCarry uint8 = 5
	FlagCarry     uint8 = 4
)

// Flags holds the four status flags. The byte form, as seen through the
// F half of AF, is produced by Byte and read back by FlagsFromByte.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte encodes the flags, leaving the lower nibble clear.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b = types.SetBit(b, FlagZero)
	}
	if f.Subtract {
		b = types.SetBit(b, FlagSubtract)
	}
	if f.HalfCarry {
		b = types.SetBit(b, FlagHalfCarry)
	}
	if f.Carry {
		b = types.SetBit(b, FlagCarry)
	}
	return b
}

// FlagsFromByte decodes the upper nibble of b into Flags. The lower
// nibble is ignored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      types.TestBit(b, FlagZero),
		Subtract:  types.TestBit(b, FlagSubtract),
		HalfCarry: types.TestBit(b, FlagHalfCarry),
		Carry:     types.TestBit(b, FlagCarry),
	}
}

// test evaluates a branch condition against the flags.
func (f Flags) test(c Condition) bool {
	switch c {
	case CondNZ:
		return !f.Zero
	case CondZ:
		return f.Zero
	case CondNC:
		return !f.Carry
	case CondC:
		return f.Carry
	}
	return true
}
