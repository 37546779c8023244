package probe

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AmbientCoefficients builds SH coefficients whose irradiance evaluates to
// the given color for every normal. Only the DC band is populated, divided
// out by its convolution constant.
func AmbientCoefficients(color mgl32.Vec3) [9]mgl32.Vec3 {
	var c [9]mgl32.Vec3
	c[0] = color.Mul(1.0 / shC4)
	return c
}

// HemisphereCoefficients builds SH coefficients for classic two-color
// hemisphere lighting: irradiance blends from ground at normal (0,-1,0) to
// sky at (0,1,0). Uses the DC band plus the linear Y band.
func HemisphereCoefficients(sky, ground mgl32.Vec3) [9]mgl32.Vec3 {
	var c [9]mgl32.Vec3
	mean := sky.Add(ground).Mul(0.5)
	half := sky.Sub(ground).Mul(0.5)
	c[0] = mean.Mul(1.0 / shC4)
	c[1] = half.Mul(1.0 / (2.0 * shC2))
	return c
}
