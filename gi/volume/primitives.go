package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FillBox writes radiance into every voxel whose center lies inside the
// world-space box. Opacity follows the radiance alpha and the normal points
// out of the nearest face.
func FillBox(g *VoxelGrid, minB, maxB mgl32.Vec3, radiance mgl32.Vec4) {
	lo := g.WorldToVoxel(minB)
	hi := g.WorldToVoxel(maxB)
	center := minB.Add(maxB).Mul(0.5)
	half := maxB.Sub(minB).Mul(0.5)

	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				p := g.VoxelCenter(x, y, z)
				if p.X() < minB.X() || p.X() > maxB.X() ||
					p.Y() < minB.Y() || p.Y() > maxB.Y() ||
					p.Z() < minB.Z() || p.Z() > maxB.Z() {
					continue
				}

				g.SetVoxel(x, y, z, Voxel{
					Radiance: radiance,
					Normal:   boxFaceNormal(p.Sub(center), half),
					Opacity:  radiance.W(),
				})
			}
		}
	}
}

// FillSphere writes radiance into every voxel whose center lies inside the
// world-space sphere. Normals point outward from the sphere center.
func FillSphere(g *VoxelGrid, center mgl32.Vec3, radius float32, radiance mgl32.Vec4) {
	lo := g.WorldToVoxel(center.Sub(mgl32.Vec3{radius, radius, radius}))
	hi := g.WorldToVoxel(center.Add(mgl32.Vec3{radius, radius, radius}))
	r2 := radius * radius

	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				d := g.VoxelCenter(x, y, z).Sub(center)
				if d.LenSqr() > r2 {
					continue
				}

				normal := mgl32.Vec3{0, 1, 0}
				if d.LenSqr() > 1e-8 {
					normal = d.Normalize()
				}

				g.SetVoxel(x, y, z, Voxel{
					Radiance: radiance,
					Normal:   normal,
					Opacity:  radiance.W(),
				})
			}
		}
	}
}

// boxFaceNormal picks the axis along which the point is proportionally
// closest to a face.
func boxFaceNormal(local, half mgl32.Vec3) mgl32.Vec3 {
	best := 0
	bestRatio := float32(-1)
	for i := 0; i < 3; i++ {
		if half[i] <= 0 {
			continue
		}
		ratio := float32(math.Abs(float64(local[i]))) / half[i]
		if ratio > bestRatio {
			bestRatio = ratio
			best = i
		}
	}

	var n mgl32.Vec3
	if local[best] >= 0 {
		n[best] = 1
	} else {
		n[best] = -1
	}
	return n
}
