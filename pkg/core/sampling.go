package core

import (
	"math"
	"math/bits"
	"math/rand"
)

// Sampler provides real numbers in [0, 1) for the stochastic parts of rendering.
// Each render worker owns its own Sampler; implementations are not safe for concurrent use.
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a RandomSampler with its own source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// VanDerCorputSampler yields the base-2 radical inverse of an incrementing index.
// The sequence is low-discrepancy, not random; it suits pixel jitter better than
// material sampling where successive dimensions must be independent.
type VanDerCorputSampler struct {
	index uint64
}

// NewVanDerCorputSampler starts the sequence at the given index
func NewVanDerCorputSampler(start uint64) *VanDerCorputSampler {
	return &VanDerCorputSampler{index: start}
}

// Get1D returns the next value of the sequence
func (s *VanDerCorputSampler) Get1D() float64 {
	v := RadicalInverse2(s.index)
	s.index++
	return v
}

// RadicalInverse2 mirrors the bits of n around the binary point
func RadicalInverse2(n uint64) float64 {
	// keep the top 53 bits so the conversion is exact and stays below 1
	return float64(bits.Reverse64(n)>>11) * 0x1p-53
}

// RandomRange returns a value in [min, max)
func RandomRange(s Sampler, min, max float64) float64 {
	return min + (max-min)*s.Get1D()
}

// RandomVec3 samples each component in [0, 1)
func RandomVec3(s Sampler) Vec3 {
	return Vec3{s.Get1D(), s.Get1D(), s.Get1D()}
}

// RandomVec3Range samples each component in [min, max)
func RandomVec3Range(s Sampler, min, max float64) Vec3 {
	return Vec3{RandomRange(s, min, max), RandomRange(s, min, max), RandomRange(s, min, max)}
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit ball.
// The loop has no attempt bound; it accepts with probability pi/6 per draw.
func RandomInUnitSphere(s Sampler) Vec3 {
	for {
		p := RandomVec3Range(s, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector samples the unit sphere surface uniformly in closed form
func RandomUnitVector(s Sampler) Vec3 {
	a := RandomRange(s, 0, 2*math.Pi)
	z := RandomRange(s, -1, 1)
	r := math.Sqrt(1 - z*z)
	return Vec3{r * math.Cos(a), r * math.Sin(a), z}
}

// RandomInHemisphere returns a point in the unit ball on the side of normal.
// Samples closer than Precision to the tangent plane are flipped as well.
func RandomInHemisphere(s Sampler, normal Vec3) Vec3 {
	p := RandomInUnitSphere(s)
	if p.Dot(normal) > Precision {
		return p
	}
	return p.Negate()
}

// Reflect calculates the reflection of v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
