package utils

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// SaveImage encodes img to filename, choosing the format from the
// extension (.png or .bmp).
func SaveImage(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		err = png.Encode(file, img)
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = fmt.Errorf("unsupported image format %q", ext)
	}
	if err != nil {
		return err
	}
	return file.Close()
}
