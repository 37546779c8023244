package sdfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the result of a successful sphere-tracing march.
type Hit struct {
	Position mgl32.Vec3
	Distance float32
}

// RayMarch sphere-traces through the field. Each step samples the distance
// at the current point; a sample below half a voxel counts as a hit, and the
// march otherwise advances by the sampled distance with a one-voxel floor so
// it always makes forward progress. The march reports no hit once it leaves
// the grid, runs out of steps, or exceeds maxDist.
func (f *SignedDistanceField) RayMarch(origin, direction mgl32.Vec3, maxSteps int, maxDist float32) (Hit, bool) {
	t := float32(0)

	for i := 0; i < maxSteps; i++ {
		pos := origin.Add(direction.Mul(t))

		cx, cy, cz, ok := f.cellOf(pos)
		if !ok {
			return Hit{}, false
		}

		dist := f.DistanceAt(cx, cy, cz)
		if dist < f.VoxelSize*0.5 {
			return Hit{Position: pos, Distance: t}, true
		}

		step := dist
		if step < f.VoxelSize {
			step = f.VoxelSize
		}
		t += step
		if t > maxDist {
			return Hit{}, false
		}
	}

	return Hit{}, false
}

// Normal estimates the surface normal at a world-space position by central
// differences over the stored field. Far from any surface the gradient
// degenerates; the estimate then falls back to +Y.
func (f *SignedDistanceField) Normal(pos mgl32.Vec3) mgl32.Vec3 {
	eps := f.VoxelSize
	grad := mgl32.Vec3{
		f.sampleWorld(pos.Add(mgl32.Vec3{eps, 0, 0})) - f.sampleWorld(pos.Sub(mgl32.Vec3{eps, 0, 0})),
		f.sampleWorld(pos.Add(mgl32.Vec3{0, eps, 0})) - f.sampleWorld(pos.Sub(mgl32.Vec3{0, eps, 0})),
		f.sampleWorld(pos.Add(mgl32.Vec3{0, 0, eps})) - f.sampleWorld(pos.Sub(mgl32.Vec3{0, 0, eps})),
	}
	if grad.LenSqr() < 1e-12 || math.IsInf(float64(grad.LenSqr()), 0) {
		return mgl32.Vec3{0, 1, 0}
	}
	return grad.Normalize()
}

// SoftShadow marches from origin toward a light and returns an occlusion
// factor in [0,1]: 0 fully shadowed, 1 unoccluded. Softness controls the
// penumbra width, larger values giving harder shadows.
func (f *SignedDistanceField) SoftShadow(origin, direction mgl32.Vec3, maxDist, softness float32) float32 {
	res := float32(1.0)
	t := f.VoxelSize

	for t < maxDist {
		h := f.sampleWorld(origin.Add(direction.Mul(t)))
		if h < f.VoxelSize*0.5 {
			return 0
		}
		if s := softness * h / t; s < res {
			res = s
		}

		step := h
		if step < f.VoxelSize {
			step = f.VoxelSize
		}
		t += step
	}

	return clampf(res, 0, 1)
}

// AmbientOcclusion probes the field a few steps along the normal and darkens
// proportionally to how much nearer the surface is than the probe distance.
// Probe distances scale with the cell size so the result is resolution
// independent.
func (f *SignedDistanceField) AmbientOcclusion(pos, normal mgl32.Vec3, steps int) float32 {
	occ := float32(0)
	sca := float32(1.0)

	for i := 0; i < steps; i++ {
		h := (0.01 + 0.12*float32(i)) * f.VoxelSize
		d := f.sampleWorld(pos.Add(normal.Mul(h)))
		if d > h {
			d = h
		}
		occ += (h - d) * sca / f.VoxelSize
		sca *= 0.95
	}

	return clampf(1.0-3.0*occ, 0, 1)
}

// cellOf maps a world position to cell coordinates, reporting whether the
// position lies inside the grid.
func (f *SignedDistanceField) cellOf(pos mgl32.Vec3) (int, int, int, bool) {
	local := pos.Sub(f.Origin).Mul(1.0 / f.VoxelSize)
	x := int(math.Floor(float64(local.X())))
	y := int(math.Floor(float64(local.Y())))
	z := int(math.Floor(float64(local.Z())))
	if x < 0 || x >= f.Resolution || y < 0 || y >= f.Resolution || z < 0 || z >= f.Resolution {
		return 0, 0, 0, false
	}
	return x, y, z, true
}

// sampleWorld reads the stored distance for the cell containing pos,
// returning the empty-space value outside the grid.
func (f *SignedDistanceField) sampleWorld(pos mgl32.Vec3) float32 {
	x, y, z, ok := f.cellOf(pos)
	if !ok {
		return math.MaxFloat32
	}
	return f.DistanceAt(x, y, z)
}
