// Package types holds the memory map and the bit helpers shared by the
// emulator packages.
package types

// Bit returns the mask for the bit at index i (0-7).
func Bit(i uint8) uint8 {
	return 1 << (i & 0x7)
}

// TestBit reports whether bit i of b is set.
func TestBit(b, i uint8) bool {
	return b&Bit(i) != 0
}

// SetBit returns b with bit i set.
func SetBit(b, i uint8) uint8 {
	return b | Bit(i)
}

// ResetBit returns b with bit i cleared.
func ResetBit(b, i uint8) uint8 {
	return b &^ Bit(i)
}

// Low returns the least significant byte of a 16-bit word.
func Low(v uint16) uint8 {
	return uint8(v)
}

// High returns the most significant byte of a 16-bit word.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Word assembles a 16-bit word from its high and low bytes.
func Word(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
