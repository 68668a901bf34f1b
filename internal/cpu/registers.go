package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Registers represents the 8-bit registers of the CPU and the flags.
// The 16-bit pairs BC, DE, HL and AF are not stored; they are composed
// from, and decomposed into, the 8-bit registers on every access.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags
}

// Get returns the value of an 8-bit register.
func (r *Registers) Get(t Target) uint8 {
	switch t {
	case TargetA:
		return r.A
	case TargetB:
		return r.B
	case TargetC:
		return r.C
	case TargetD:
		return r.D
	case TargetE:
		return r.E
	case TargetH:
		return r.H
	case TargetL:
		return r.L
	}
	panic(fmt.Sprintf("invalid register: %s", t))
}

// Set sets the value of an 8-bit register.
func (r *Registers) Set(t Target, value uint8) {
	switch t {
	case TargetA:
		r.A = value
	case TargetB:
		r.B = value
	case TargetC:
		r.C = value
	case TargetD:
		r.D = value
	case TargetE:
		r.E = value
	case TargetH:
		r.H = value
	case TargetL:
		r.L = value
	default:
		panic(fmt.Sprintf("invalid register: %s", t))
	}
}

// Pair returns the value of a register pair, high register first. The
// low byte of AF is the encoded flags.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return types.Word(r.B, r.C)
	case PairDE:
		return types.Word(r.D, r.E)
	case PairHL:
		return types.Word(r.H, r.L)
	case PairAF:
		return types.Word(r.A, r.F.Byte())
	}
	panic(fmt.Sprintf("invalid register pair: %s", p))
}

// SetPair splits value over the two registers of a pair. Writing AF
// decodes the low byte into the flags.
func (r *Registers) SetPair(p Pair, value uint16) {
	high, low := types.High(value), types.Low(value)
	switch p {
	case PairBC:
		r.B, r.C = high, low
	case PairDE:
		r.D, r.E = high, low
	case PairHL:
		r.H, r.L = high, low
	case PairAF:
		r.A, r.F = high, FlagsFromByte(low)
	default:
		panic(fmt.Sprintf("invalid register pair: %s", p))
	}
}
