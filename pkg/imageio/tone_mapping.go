package imageio

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// MaxValue is the largest channel value written to 8-bit outputs
const MaxValue = 255

// ToneMapping transforms a linear channel value before quantization
type ToneMapping func(float64) float64

// Identity leaves values unchanged
func Identity(v float64) float64 { return v }

// Gamma returns pow(v, 1/gamma)
func Gamma(gamma float64) ToneMapping {
	scale := 1.0 / gamma
	return func(v float64) float64 {
		return math.Pow(v, scale)
	}
}

// Quantize maps a tone-mapped value to [0, MaxValue].
// Values are clamped to [0, 0.999] first so 1.0 and above land on MaxValue.
func Quantize(v float64) int {
	// gamma of a negative value from numerical noise is NaN
	if math.IsNaN(v) {
		return 0
	}
	return int((MaxValue + 1) * core.Clamp(v, 0, 0.999))
}

// quantizeColor tone-maps and quantizes each channel of c
func quantizeColor(c core.Color, tone ToneMapping) (r, g, b int) {
	if tone == nil {
		tone = Identity
	}
	return Quantize(tone(c.X)), Quantize(tone(c.Y)), Quantize(tone(c.Z))
}
