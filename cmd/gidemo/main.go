// gidemo builds a small box scene, bakes the GI structures headlessly, runs
// a few frames, and reports what the sampler sees. With -out it also dumps
// slice visualizations as PNGs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gabrielima7/Lunaris-sub000/gi"
	"github.com/gabrielima7/Lunaris-sub000/gi/bake"
	"github.com/gabrielima7/Lunaris-sub000/gi/debugviz"
	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
	"github.com/gabrielima7/Lunaris-sub000/gi/volume"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	frames := flag.Int("frames", 8, "frames to simulate")
	out := flag.String("out", "", "directory for slice PNGs (empty = skip)")
	flag.Parse()

	cfg := gi.DefaultGIConfig()
	cfg.Method = gi.MethodVoxelGI
	cfg.VoxelResolution = 64
	cfg.SDFResolution = 64
	cfg.UpdateRate = 2
	cfg.MaxDistance = 32

	system := gi.NewGlobalIllumination(cfg)
	system.SetLogger(gi.NewDefaultLogger("gi", *debug))

	const worldSize = float32(32)
	origin := mgl32.Vec3{}
	system.InitVoxelGI(origin, worldSize)
	system.InitSDFGI(origin, worldSize)
	system.InitLightProbes(origin, mgl32.Vec3{worldSize, worldSize, worldSize}, [3]int{8, 4, 8})

	boxes := []sdfield.AABB{
		{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{32, 1, 32}}, // floor
		{Min: mgl32.Vec3{4, 1, 4}, Max: mgl32.Vec3{12, 9, 12}},
		{Min: mgl32.Vec3{20, 1, 18}, Max: mgl32.Vec3{26, 13, 24}},
	}
	bake.GenerateSDFParallel(system.SDF(), boxes, 0)

	lights := []bake.Light{
		{
			Type:      bake.LightTypeDirectional,
			Direction: mgl32.Vec3{-0.4, -0.8, -0.3}.Normalize(),
			Color:     mgl32.Vec3{1.0, 0.95, 0.85},
			Intensity: 2.0,
		},
		{
			Type:      bake.LightTypePoint,
			Position:  mgl32.Vec3{16, 10, 16},
			Color:     mgl32.Vec3{1.0, 0.4, 0.2},
			Intensity: 4.0,
			Range:     20,
		},
	}

	bake.BakeHemisphereProbes(system.ProbeGrid(),
		mgl32.Vec3{0.35, 0.45, 0.65}, mgl32.Vec3{0.2, 0.15, 0.1})

	grid := system.VoxelGrid()
	albedo := mgl32.Vec4{0.6, 0.55, 0.5, 1.0}
	system.SetRefreshFunc(func(frame uint64) {
		grid.Clear()
		for _, b := range boxes {
			volume.FillBox(grid, b.Min, b.Max, albedo)
		}
		lit := bake.InjectLights(grid, lights, system.SDF())
		grid.GenerateMips(3)
		system.Profiler().SetCount("lit voxels", lit)
	})

	for i := 0; i < *frames; i++ {
		system.Update()
	}

	for _, p := range []mgl32.Vec3{{16, 2, 16}, {8, 10, 8}, {24, 2, 10}} {
		c := system.SampleIndirect(p, mgl32.Vec3{0, 1, 0})
		fmt.Printf("indirect at %v -> %v\n", p, c)
	}

	if hit, ok := system.SDF().RayMarch(mgl32.Vec3{16, 20, 16}, mgl32.Vec3{0, -1, 0}, 128, worldSize); ok {
		fmt.Printf("downward ray hit %v after %.2f units\n", hit.Position, hit.Distance)
	} else {
		fmt.Println("downward ray missed")
	}

	fmt.Println(system.Stats())
	fmt.Print(system.Profiler().StatsString())

	if *out != "" {
		z := grid.Resolution / 8 // just above the floor
		writes := []struct {
			name string
			err  error
		}{
			{"voxel_slice.png", debugviz.WritePNG(filepath.Join(*out, "voxel_slice.png"),
				debugviz.Upscale(debugviz.GridSlice(grid, z), 4))},
			{"voxel_mip1.png", debugviz.WritePNG(filepath.Join(*out, "voxel_mip1.png"),
				debugviz.Upscale(debugviz.MipSlice(grid, 1, z/2), 8))},
			{"sdf_slice.png", debugviz.WritePNG(filepath.Join(*out, "sdf_slice.png"),
				debugviz.Upscale(debugviz.SDFSlice(system.SDF(), z), 4))},
		}
		for _, w := range writes {
			if w.err != nil {
				fmt.Fprintf(os.Stderr, "writing %s: %v\n", w.name, w.err)
				os.Exit(1)
			}
		}
		fmt.Printf("slice images written to %s\n", *out)
	}
}
