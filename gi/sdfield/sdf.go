package sdfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned occluder box in world space.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Contains reports whether a point lies inside the box, bounds inclusive.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// SignedDistanceField stores, per cell, the signed distance to the nearest
// occluder (negative inside a solid). An empty field holds MaxFloat32
// everywhere, meaning no occluder within reach. The per-cell surface cache
// carries radiance for surface hits and is not consulted by marching.
type SignedDistanceField struct {
	Resolution int
	VoxelSize  float32
	Origin     mgl32.Vec3

	distances []float32
	surface   []mgl32.Vec4
}

// NewSignedDistanceField allocates a resolution^3 field with no occluders.
func NewSignedDistanceField(resolution int, voxelSize float32, origin mgl32.Vec3) *SignedDistanceField {
	if resolution < 1 {
		resolution = 1
	}
	total := resolution * resolution * resolution
	f := &SignedDistanceField{
		Resolution: resolution,
		VoxelSize:  voxelSize,
		Origin:     origin,
		distances:  make([]float32, total),
		surface:    make([]mgl32.Vec4, total),
	}
	for i := range f.distances {
		f.distances[i] = math.MaxFloat32
	}
	return f
}

func (f *SignedDistanceField) index(x, y, z int) (int, bool) {
	if x < 0 || x >= f.Resolution || y < 0 || y >= f.Resolution || z < 0 || z >= f.Resolution {
		return 0, false
	}
	return z*f.Resolution*f.Resolution + y*f.Resolution + x, true
}

// CellCenter returns the world-space center of a cell.
func (f *SignedDistanceField) CellCenter(x, y, z int) mgl32.Vec3 {
	return f.Origin.Add(mgl32.Vec3{
		(float32(x) + 0.5) * f.VoxelSize,
		(float32(y) + 0.5) * f.VoxelSize,
		(float32(z) + 0.5) * f.VoxelSize,
	})
}

// DistanceAt reads the stored distance of a cell. Out-of-range reads return
// MaxFloat32, the empty-space value, so callers see "no occluder" rather
// than a phantom surface.
func (f *SignedDistanceField) DistanceAt(x, y, z int) float32 {
	if idx, ok := f.index(x, y, z); ok {
		return f.distances[idx]
	}
	return math.MaxFloat32
}

// SetDistance overwrites the stored distance of a cell. Out-of-range writes
// are no-ops.
func (f *SignedDistanceField) SetDistance(x, y, z int, dist float32) {
	if idx, ok := f.index(x, y, z); ok {
		f.distances[idx] = dist
	}
}

// SurfaceRadianceAt reads the cached surface radiance of a cell.
// Out-of-range reads return zero.
func (f *SignedDistanceField) SurfaceRadianceAt(x, y, z int) mgl32.Vec4 {
	if idx, ok := f.index(x, y, z); ok {
		return f.surface[idx]
	}
	return mgl32.Vec4{}
}

// SetSurfaceRadiance writes the cached surface radiance of a cell.
// Out-of-range writes are no-ops.
func (f *SignedDistanceField) SetSurfaceRadiance(x, y, z int, radiance mgl32.Vec4) {
	if idx, ok := f.index(x, y, z); ok {
		f.surface[idx] = radiance
	}
}

// GenerateFromAABBs rebuilds the whole field from a set of occluder boxes.
// Each cell center gets the signed Euclidean distance to the nearest box:
// positive outside, negative inside (distance to the nearest face).
func (f *SignedDistanceField) GenerateFromAABBs(boxes []AABB) {
	for z := 0; z < f.Resolution; z++ {
		f.GenerateSlice(z, boxes)
	}
}

// GenerateSlice rebuilds a single Z slice. Slices are independent, so bake
// passes may generate them concurrently as long as nothing reads the field
// meanwhile.
func (f *SignedDistanceField) GenerateSlice(z int, boxes []AABB) {
	if z < 0 || z >= f.Resolution {
		return
	}
	for y := 0; y < f.Resolution; y++ {
		for x := 0; x < f.Resolution; x++ {
			center := f.CellCenter(x, y, z)

			minDist := float32(math.MaxFloat32)
			for _, box := range boxes {
				d := signedBoxDistance(center, box)
				if d < minDist {
					minDist = d
				}
			}

			idx := z*f.Resolution*f.Resolution + y*f.Resolution + x
			f.distances[idx] = minDist
		}
	}
}

// signedBoxDistance is the exact signed Euclidean distance from a point to
// an axis-aligned box: outside, the distance to the clamped closest point;
// inside, the negated distance to the nearest face.
func signedBoxDistance(p mgl32.Vec3, box AABB) float32 {
	if !box.Contains(p) {
		closest := mgl32.Vec3{
			clampf(p.X(), box.Min.X(), box.Max.X()),
			clampf(p.Y(), box.Min.Y(), box.Max.Y()),
			clampf(p.Z(), box.Min.Z(), box.Max.Z()),
		}
		return p.Sub(closest).Len()
	}

	inner := float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		if d := p[i] - box.Min[i]; d < inner {
			inner = d
		}
		if d := box.Max[i] - p[i]; d < inner {
			inner = d
		}
	}
	return -inner
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
