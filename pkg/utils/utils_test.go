package utils

import (
	"archive/zip"
	"compress/gzip"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var program = []byte{0x00, 0xC3, 0x50, 0x01, 0x76}

func TestLoadFile_Raw(t *testing.T) {
	name := filepath.Join(t.TempDir(), "program.gb")
	require.NoError(t, os.WriteFile(name, program, 0o644))

	b, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, program, b)
}

func TestLoadFile_Gzip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "program.gb.gz")
	f, err := os.Create(name)
	require.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write(program)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	b, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, program, b)
}

func TestLoadFile_Zip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "program.zip")
	f, err := os.Create(name)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	entry, err := w.Create("program.gb")
	require.NoError(t, err)
	_, err = entry.Write(program)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	b, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, program, b)

	t.Run("empty", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "empty.zip")
		f, err := os.Create(name)
		require.NoError(t, err)
		require.NoError(t, zip.NewWriter(f).Close())
		require.NoError(t, f.Close())

		_, err = LoadFile(name)
		assert.ErrorIs(t, err, ErrEmptyArchive)
	})
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 2, color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xFF})

	name := filepath.Join(t.TempDir(), "tiles.bmp")
	require.NoError(t, SaveImage(img, name))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := bmp.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(1, 2).RGBA()
	assert.Equal(t, []uint32{0x7777, 0x7777, 0x7777}, []uint32{r, g, b})

	assert.Error(t, SaveImage(img, filepath.Join(t.TempDir(), "tiles.gif")))
}
