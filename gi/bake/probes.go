package bake

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gabrielima7/Lunaris-sub000/gi/probe"
)

// BakeAmbientProbes marks every probe baked with a flat ambient term, the
// cheapest useful bake when no offline pass has run yet.
func BakeAmbientProbes(grid *probe.LightProbeGrid, color mgl32.Vec3) {
	coeffs := probe.AmbientCoefficients(color)
	forEachProbe(grid, func(p *probe.LightProbe) {
		p.SetCoefficients(coeffs)
	})
}

// BakeHemisphereProbes marks every probe baked with two-color hemisphere
// lighting (sky above, ground below).
func BakeHemisphereProbes(grid *probe.LightProbeGrid, sky, ground mgl32.Vec3) {
	coeffs := probe.HemisphereCoefficients(sky, ground)
	forEachProbe(grid, func(p *probe.LightProbe) {
		p.SetCoefficients(coeffs)
	})
}

func forEachProbe(grid *probe.LightProbeGrid, fn func(p *probe.LightProbe)) {
	res := grid.Resolution
	for z := 0; z < res[2]; z++ {
		for y := 0; y < res[1]; y++ {
			for x := 0; x < res[0]; x++ {
				if p := grid.ProbeAt(x, y, z); p != nil {
					fn(p)
				}
			}
		}
	}
}
