package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// ToImage tone-maps and quantizes fb into an 8-bit image, top row first
func ToImage(fb *Framebuffer, tone ToneMapping) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := quantizeColor(fb.At(x, y), tone)
			img.SetRGBA(x, fb.Height()-1-y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// Upsample enlarges img by an integer factor with a Catmull-Rom cubic filter.
// Factors below 2 return img unchanged.
func Upsample(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}

	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

// SavePNG encodes img to path
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}
