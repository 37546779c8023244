package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VoxelGrid is a cubic grid of radiance voxels with an optional
// half-resolution mip pyramid. Reads outside the grid return zero values and
// writes outside it are dropped, so tracing loops never need to bounds-check.
type VoxelGrid struct {
	Resolution int
	VoxelSize  float32
	Origin     mgl32.Vec3

	voxels []Voxel
	mips   []mipLevel
}

type mipLevel struct {
	resolution int
	voxels     []Voxel
}

// NewVoxelGrid allocates a resolution^3 grid of empty voxels. The grid covers
// the world-space cube [origin, origin + resolution*voxelSize).
func NewVoxelGrid(resolution int, voxelSize float32, origin mgl32.Vec3) *VoxelGrid {
	if resolution < 1 {
		resolution = 1
	}
	total := resolution * resolution * resolution
	return &VoxelGrid{
		Resolution: resolution,
		VoxelSize:  voxelSize,
		Origin:     origin,
		voxels:     make([]Voxel, total),
	}
}

func (g *VoxelGrid) index(x, y, z int) (int, bool) {
	if x < 0 || x >= g.Resolution || y < 0 || y >= g.Resolution || z < 0 || z >= g.Resolution {
		return 0, false
	}
	return z*g.Resolution*g.Resolution + y*g.Resolution + x, true
}

// WorldToVoxel maps a world-space position to integer cell coordinates.
// The result is not clamped; callers index through the fail-soft accessors
// or bounds-check themselves.
func (g *VoxelGrid) WorldToVoxel(pos mgl32.Vec3) [3]int {
	local := pos.Sub(g.Origin).Mul(1.0 / g.VoxelSize)
	return [3]int{
		int(math.Floor(float64(local.X()))),
		int(math.Floor(float64(local.Y()))),
		int(math.Floor(float64(local.Z()))),
	}
}

// VoxelCenter returns the world-space center of a cell.
func (g *VoxelGrid) VoxelCenter(x, y, z int) mgl32.Vec3 {
	return g.Origin.Add(mgl32.Vec3{
		(float32(x) + 0.5) * g.VoxelSize,
		(float32(y) + 0.5) * g.VoxelSize,
		(float32(z) + 0.5) * g.VoxelSize,
	})
}

// SetRadiance writes the radiance of a cell. Out-of-range writes are no-ops.
func (g *VoxelGrid) SetRadiance(x, y, z int, radiance mgl32.Vec4) {
	if idx, ok := g.index(x, y, z); ok {
		g.voxels[idx].Radiance = radiance
	}
}

// RadianceAt reads the radiance of a cell. Out-of-range reads return zero.
func (g *VoxelGrid) RadianceAt(x, y, z int) mgl32.Vec4 {
	if idx, ok := g.index(x, y, z); ok {
		return g.voxels[idx].Radiance
	}
	return mgl32.Vec4{}
}

// SetVoxel writes a full voxel record. Out-of-range writes are no-ops.
func (g *VoxelGrid) SetVoxel(x, y, z int, v Voxel) {
	if idx, ok := g.index(x, y, z); ok {
		g.voxels[idx] = v
	}
}

// VoxelAt reads a full voxel record. Out-of-range reads return a zero voxel.
func (g *VoxelGrid) VoxelAt(x, y, z int) Voxel {
	if idx, ok := g.index(x, y, z); ok {
		return g.voxels[idx]
	}
	return Voxel{}
}

// VoxelCount returns the number of cells in the base level.
func (g *VoxelGrid) VoxelCount() int {
	return len(g.voxels)
}

// Clear resets every voxel in the base level and drops the mip pyramid.
func (g *VoxelGrid) Clear() {
	for i := range g.voxels {
		g.voxels[i] = Voxel{}
	}
	g.mips = nil
}

// GenerateMips rebuilds the half-resolution pyramid, box-filtering 2x2x2
// blocks of the level above. Generation stops early once a level would drop
// below one cell.
func (g *VoxelGrid) GenerateMips(levels int) {
	g.mips = g.mips[:0]

	srcRes := g.Resolution
	srcVoxels := g.voxels

	for l := 0; l < levels; l++ {
		res := srcRes / 2
		if res < 1 {
			break
		}

		mip := mipLevel{
			resolution: res,
			voxels:     make([]Voxel, res*res*res),
		}

		for z := 0; z < res; z++ {
			for y := 0; y < res; y++ {
				for x := 0; x < res; x++ {
					var radiance mgl32.Vec4
					var normal mgl32.Vec3
					var opacity float32

					for dz := 0; dz < 2; dz++ {
						for dy := 0; dy < 2; dy++ {
							for dx := 0; dx < 2; dx++ {
								sx, sy, sz := x*2+dx, y*2+dy, z*2+dz
								src := srcVoxels[sz*srcRes*srcRes+sy*srcRes+sx]
								radiance = radiance.Add(src.Radiance)
								normal = normal.Add(src.Normal)
								opacity += src.Opacity
							}
						}
					}

					mip.voxels[z*res*res+y*res+x] = Voxel{
						Radiance: radiance.Mul(1.0 / 8.0),
						Normal:   normal.Mul(1.0 / 8.0),
						Opacity:  opacity / 8.0,
					}
				}
			}
		}

		g.mips = append(g.mips, mip)
		srcRes = res
		srcVoxels = mip.voxels
	}
}

// MipCount returns the number of generated mip levels (level 0 excluded).
func (g *VoxelGrid) MipCount() int {
	return len(g.mips)
}

// MipResolution returns the cubic resolution of a mip level. Level 0 is the
// base grid. Unknown levels report zero.
func (g *VoxelGrid) MipResolution(level int) int {
	if level == 0 {
		return g.Resolution
	}
	if level < 1 || level > len(g.mips) {
		return 0
	}
	return g.mips[level-1].resolution
}

// MipRadianceAt reads a cell from a mip level, with the same fail-soft
// out-of-range behavior as RadianceAt. Level 0 reads the base grid.
func (g *VoxelGrid) MipRadianceAt(level, x, y, z int) mgl32.Vec4 {
	if level == 0 {
		return g.RadianceAt(x, y, z)
	}
	if level < 1 || level > len(g.mips) {
		return mgl32.Vec4{}
	}
	mip := g.mips[level-1]
	if x < 0 || x >= mip.resolution || y < 0 || y >= mip.resolution || z < 0 || z >= mip.resolution {
		return mgl32.Vec4{}
	}
	return mip.voxels[z*mip.resolution*mip.resolution+y*mip.resolution+x].Radiance
}
