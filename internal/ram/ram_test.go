package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAM(t *testing.T) {
	r := NewRAM(0x2000)
	assert.Equal(t, 0x2000, r.Size())

	t.Run("zeroed", func(t *testing.T) {
		for i := 0; i < r.Size(); i++ {
			require.Zero(t, r.Read(uint16(i)))
		}
	})
	t.Run("read write", func(t *testing.T) {
		r.Write(0x1FFF, 0x42)
		assert.Equal(t, uint8(0x42), r.Read(0x1FFF))
	})
	t.Run("load", func(t *testing.T) {
		require.NoError(t, r.Load(0x0100, []byte{0x00, 0xC3, 0x50, 0x01}))
		assert.Equal(t, uint8(0xC3), r.Read(0x0101))
		assert.Equal(t, uint8(0x01), r.Read(0x0103))
	})
	t.Run("load overflow", func(t *testing.T) {
		err := r.Load(0x1FFF, []byte{0x01, 0x02})
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})
}
