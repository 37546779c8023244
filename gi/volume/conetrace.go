package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Alpha compositing stops once the cone is effectively opaque.
const coneAlphaCutoff = 0.99

// ConeTrace marches a widening cone through the grid and accumulates
// radiance with front-to-back alpha compositing. The march starts one voxel
// out from the origin and advances by half the cone diameter at the current
// distance, never less than one voxel, so the step count stays bounded by
// maxDist/VoxelSize. It terminates when the accumulated alpha saturates or
// the distance budget runs out.
//
// Sampling always reads the base level; the cone footprint that would drive
// mip selection is computed from the same diameter but a filtered lookup is
// not wired in yet.
func (g *VoxelGrid) ConeTrace(origin, direction mgl32.Vec3, coneAngle, maxDist float32) mgl32.Vec4 {
	var accum mgl32.Vec4

	halfTan := float32(math.Tan(float64(coneAngle) * 0.5))
	t := g.VoxelSize

	for t < maxDist && accum.W() < coneAlphaCutoff {
		samplePos := origin.Add(direction.Mul(t))
		c := g.WorldToVoxel(samplePos)

		diameter := 2.0 * t * halfTan
		sample := g.RadianceAt(c[0], c[1], c[2])

		alpha := sample.W() * (1.0 - accum.W())
		accum = accum.Add(mgl32.Vec4{
			sample.X() * alpha,
			sample.Y() * alpha,
			sample.Z() * alpha,
			alpha,
		})

		step := diameter * 0.5
		if step < g.VoxelSize {
			step = g.VoxelSize
		}
		t += step
	}

	return accum
}
