package probe

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightProbeGrid is a uniform lattice of light probes placed at the centers
// of a subdivided bounding box. The probe for cell (x,y,z) lives at flat
// index z*resY*resX + y*resX + x.
type LightProbeGrid struct {
	BoundsMin  mgl32.Vec3
	BoundsMax  mgl32.Vec3
	Resolution [3]int

	probes []LightProbe
}

// NewLightProbeGrid lays out resolution.x*y*z un-baked probes across the
// bounds. Resolution components are clamped to at least one.
func NewLightProbeGrid(boundsMin, boundsMax mgl32.Vec3, resolution [3]int) *LightProbeGrid {
	for i := range resolution {
		if resolution[i] < 1 {
			resolution[i] = 1
		}
	}

	size := boundsMax.Sub(boundsMin)
	step := mgl32.Vec3{
		size.X() / float32(resolution[0]),
		size.Y() / float32(resolution[1]),
		size.Z() / float32(resolution[2]),
	}

	probes := make([]LightProbe, 0, resolution[0]*resolution[1]*resolution[2])
	for z := 0; z < resolution[2]; z++ {
		for y := 0; y < resolution[1]; y++ {
			for x := 0; x < resolution[0]; x++ {
				pos := boundsMin.Add(mgl32.Vec3{
					(float32(x) + 0.5) * step.X(),
					(float32(y) + 0.5) * step.Y(),
					(float32(z) + 0.5) * step.Z(),
				})
				probes = append(probes, NewLightProbe(pos, step.Len()))
			}
		}
	}

	return &LightProbeGrid{
		BoundsMin:  boundsMin,
		BoundsMax:  boundsMax,
		Resolution: resolution,
		probes:     probes,
	}
}

// ProbeCount returns the number of probes in the lattice.
func (g *LightProbeGrid) ProbeCount() int {
	return len(g.probes)
}

// ProbeAt returns the probe for a cell, or nil when the cell is out of
// range. The pointer stays valid for the lifetime of the grid, so bake
// passes can write coefficients through it.
func (g *LightProbeGrid) ProbeAt(x, y, z int) *LightProbe {
	if x < 0 || x >= g.Resolution[0] || y < 0 || y >= g.Resolution[1] || z < 0 || z >= g.Resolution[2] {
		return nil
	}
	return &g.probes[z*g.Resolution[1]*g.Resolution[0]+y*g.Resolution[0]+x]
}

// Sample evaluates the irradiance for a surface normal at the probe nearest
// to the position. Positions outside the bounds clamp onto the lattice, so
// the lookup is total for any input.
func (g *LightProbeGrid) Sample(position, normal mgl32.Vec3) mgl32.Vec3 {
	gx, gy, gz := g.gridCoords(position)

	x0 := clampi(int(math.Floor(float64(gx))), 0, g.Resolution[0]-1)
	y0 := clampi(int(math.Floor(float64(gy))), 0, g.Resolution[1]-1)
	z0 := clampi(int(math.Floor(float64(gz))), 0, g.Resolution[2]-1)

	return g.probes[z0*g.Resolution[1]*g.Resolution[0]+y0*g.Resolution[0]+x0].SampleIrradiance(normal)
}

// SampleInterpolated blends the eight probes surrounding the position with
// trilinear weights. Nearest-cell Sample stays the primary lookup; this is
// the smooth variant for integrators that can afford eight evaluations.
func (g *LightProbeGrid) SampleInterpolated(position, normal mgl32.Vec3) mgl32.Vec3 {
	gx, gy, gz := g.gridCoords(position)

	// Probe centers sit at cell+0.5, so shift before splitting into the
	// integer cell and the blend fraction.
	fx, fy, fz := gx-0.5, gy-0.5, gz-0.5

	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	z0 := int(math.Floor(float64(fz)))

	tx := clampf32(fx-float32(x0), 0, 1)
	ty := clampf32(fy-float32(y0), 0, 1)
	tz := clampf32(fz-float32(z0), 0, 1)

	var result mgl32.Vec3
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				x := clampi(x0+dx, 0, g.Resolution[0]-1)
				y := clampi(y0+dy, 0, g.Resolution[1]-1)
				z := clampi(z0+dz, 0, g.Resolution[2]-1)

				w := lerpWeight(tx, dx) * lerpWeight(ty, dy) * lerpWeight(tz, dz)
				if w == 0 {
					continue
				}

				p := &g.probes[z*g.Resolution[1]*g.Resolution[0]+y*g.Resolution[0]+x]
				result = result.Add(p.SampleIrradiance(normal).Mul(w))
			}
		}
	}
	return result
}

// gridCoords maps a world position to continuous lattice coordinates in
// [0, resolution] per axis. Degenerate bounds collapse onto coordinate zero.
func (g *LightProbeGrid) gridCoords(position mgl32.Vec3) (float32, float32, float32) {
	size := g.BoundsMax.Sub(g.BoundsMin)
	local := position.Sub(g.BoundsMin)

	coords := [3]float32{}
	for i := 0; i < 3; i++ {
		if size[i] > 0 {
			coords[i] = local[i] / size[i] * float32(g.Resolution[i])
		}
	}
	return coords[0], coords[1], coords[2]
}

func lerpWeight(t float32, hi int) float32 {
	if hi == 1 {
		return t
	}
	return 1 - t
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
