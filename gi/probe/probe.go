package probe

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Irradiance convolution constants for second-order spherical harmonics
// (Ramamoorthi-Hanrahan). They fold the cosine lobe into the basis so a
// single dot against the stored coefficients yields diffuse irradiance.
const (
	shC1 = 0.429043
	shC2 = 0.511664
	shC3 = 0.743125
	shC4 = 0.886227
	shC5 = 0.247708
)

// LightProbe holds a precomputed incident-light field at one point as nine
// RGB spherical-harmonics coefficients. An un-baked probe has all-zero
// coefficients and evaluates to black, which is valid, not an error.
type LightProbe struct {
	Position     mgl32.Vec3
	Coefficients [9]mgl32.Vec3
	Radius       float32
	Baked        bool
}

// NewLightProbe creates an un-baked probe at a position with an influence
// radius.
func NewLightProbe(position mgl32.Vec3, radius float32) LightProbe {
	return LightProbe{
		Position: position,
		Radius:   radius,
	}
}

// SetCoefficients installs baked SH coefficients and marks the probe baked.
func (p *LightProbe) SetCoefficients(coefficients [9]mgl32.Vec3) {
	p.Coefficients = coefficients
	p.Baked = true
}

// SampleIrradiance evaluates the L2 SH basis at the given unit normal,
// weighted by the irradiance convolution constants.
func (p *LightProbe) SampleIrradiance(normal mgl32.Vec3) mgl32.Vec3 {
	sh := &p.Coefficients
	nx, ny, nz := normal.X(), normal.Y(), normal.Z()

	result := sh[0].Mul(shC4)
	result = result.Add(sh[1].Mul(2.0 * shC2 * ny))
	result = result.Add(sh[2].Mul(2.0 * shC2 * nz))
	result = result.Add(sh[3].Mul(2.0 * shC2 * nx))
	result = result.Add(sh[4].Mul(2.0 * shC1 * nx * ny))
	result = result.Add(sh[5].Mul(2.0 * shC1 * ny * nz))
	result = result.Add(sh[6].Mul(shC3*nz*nz - shC5))
	result = result.Add(sh[7].Mul(2.0 * shC1 * nx * nz))
	result = result.Add(sh[8].Mul(shC1 * (nx*nx - ny*ny)))
	return result
}
