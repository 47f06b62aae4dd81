package imageio

import (
	"path/filepath"
	"strings"
)

// Format identifies an output encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// FormatForPath picks the encoding from the file extension; anything but .png is PPM
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}

// Save writes fb to path in the format implied by its extension.
// upscale applies to PNG only; the P3 text output always matches fb's dimensions.
func Save(path string, fb *Framebuffer, tone ToneMapping, upscale int) error {
	switch FormatForPath(path) {
	case FormatPNG:
		return SavePNG(path, Upsample(ToImage(fb, tone), upscale))
	default:
		return SavePPM(path, fb, tone)
	}
}
