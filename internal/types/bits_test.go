package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		assert.True(t, TestBit(SetBit(0, i), i))
		assert.False(t, TestBit(ResetBit(0xFF, i), i))
		assert.Equal(t, uint8(0xFF)&^Bit(i), ResetBit(0xFF, i))
	}
	assert.Equal(t, uint8(0x80), Bit(7))
}

func TestWord(t *testing.T) {
	w := Word(0xBE, 0xEF)
	assert.Equal(t, uint16(0xBEEF), w)
	assert.Equal(t, uint8(0xBE), High(w))
	assert.Equal(t, uint8(0xEF), Low(w))
}
