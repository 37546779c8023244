package volume

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is one cell of the radiance volume. Radiance holds RGB plus an
// opacity-like alpha in W; Normal is an aggregated surface estimate for
// the geometry that was splatted into the cell.
type Voxel struct {
	Radiance mgl32.Vec4
	Normal   mgl32.Vec3
	Opacity  float32
}

// IsEmpty reports whether the cell carries no surface at all.
func (v Voxel) IsEmpty() bool {
	return v.Opacity == 0 && v.Radiance.W() == 0
}
