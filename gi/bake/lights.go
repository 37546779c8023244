package bake

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
	"github.com/gabrielima7/Lunaris-sub000/gi/volume"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeAmbient     LightType = 2
)

// Light is a direct light source injected into the voxel grid.
type Light struct {
	Type      LightType
	Position  mgl32.Vec3 // point lights
	Direction mgl32.Vec3 // directional lights, pointing away from the light
	Color     mgl32.Vec3
	Intensity float32
	Range     float32 // point lights
}

// Soft shadow hardness used for injection shadow rays.
const injectShadowSoftness = 8.0

// InjectLights adds direct lighting into every occupied voxel so later cone
// traces return it as bounced light. Lambert weighting uses the voxel's
// aggregated normal and, when a distance field is supplied, each
// contribution is attenuated by a soft shadow ray toward the light.
// Returns the number of voxels that received light.
func InjectLights(grid *volume.VoxelGrid, lights []Light, field *sdfield.SignedDistanceField) int {
	injected := 0

	for z := 0; z < grid.Resolution; z++ {
		for y := 0; y < grid.Resolution; y++ {
			for x := 0; x < grid.Resolution; x++ {
				v := grid.VoxelAt(x, y, z)
				if v.Opacity == 0 {
					continue
				}

				pos := grid.VoxelCenter(x, y, z)
				add := mgl32.Vec3{}
				for _, l := range lights {
					add = add.Add(lightContribution(l, pos, v.Normal, field))
				}
				if add == (mgl32.Vec3{}) {
					continue
				}

				r := v.Radiance
				grid.SetRadiance(x, y, z, mgl32.Vec4{
					r.X() + add.X(),
					r.Y() + add.Y(),
					r.Z() + add.Z(),
					r.W(),
				})
				injected++
			}
		}
	}

	return injected
}

func lightContribution(l Light, pos, normal mgl32.Vec3, field *sdfield.SignedDistanceField) mgl32.Vec3 {
	switch l.Type {
	case LightTypeAmbient:
		return l.Color.Mul(l.Intensity)

	case LightTypeDirectional:
		toLight := l.Direction.Mul(-1)
		if toLight.LenSqr() < 1e-12 {
			return mgl32.Vec3{}
		}
		toLight = toLight.Normalize()

		ndotl := normal.Dot(toLight)
		if ndotl <= 0 {
			return mgl32.Vec3{}
		}

		shadow := float32(1.0)
		if field != nil {
			reach := float32(field.Resolution) * field.VoxelSize
			shadow = field.SoftShadow(pos, toLight, reach, injectShadowSoftness)
		}
		return l.Color.Mul(l.Intensity * ndotl * shadow)

	case LightTypePoint:
		toLight := l.Position.Sub(pos)
		dist := toLight.Len()
		if l.Range <= 0 || dist > l.Range || dist < 1e-6 {
			return mgl32.Vec3{}
		}
		dir := toLight.Mul(1.0 / dist)

		ndotl := normal.Dot(dir)
		if ndotl <= 0 {
			return mgl32.Vec3{}
		}

		// Smooth falloff to zero at the range boundary.
		atten := 1.0 - dist/l.Range
		atten *= atten

		shadow := float32(1.0)
		if field != nil {
			shadow = field.SoftShadow(pos, dir, dist, injectShadowSoftness)
		}
		return l.Color.Mul(l.Intensity * ndotl * atten * shadow)

	default:
		return mgl32.Vec3{}
	}
}
