package gi

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gabrielima7/Lunaris-sub000/gi/probe"
	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
	"github.com/gabrielima7/Lunaris-sub000/gi/volume"
)

// Aperture of the single diffuse gather cone traced along the surface
// normal, in radians.
const voxelConeAngle = 0.5

// GlobalIllumination owns at most one instance each of the three indirect
// lighting substructures, throttles refresh work to a frame interval, and
// dispatches shading-time queries to whichever method the config selects.
//
// All methods are single-threaded; queries may run concurrently only while
// no mutating call (Update, any Init, grid writes) is in flight. The
// integrating renderer enforces that, typically with a frame barrier.
type GlobalIllumination struct {
	Config GIConfig

	voxelGrid *volume.VoxelGrid
	probeGrid *probe.LightProbeGrid
	sdf       *sdfield.SignedDistanceField

	frame       uint64
	refreshFunc func(frame uint64)

	logger   Logger
	profiler *Profiler
}

// NewGlobalIllumination builds an orchestrator with no substructures; call
// the Init methods to size them from world bounds. The config is clamped
// onto its invariants.
func NewGlobalIllumination(config GIConfig) *GlobalIllumination {
	return &GlobalIllumination{
		Config:   config.normalized(),
		logger:   NewNopLogger(),
		profiler: NewProfiler(),
	}
}

// SetLogger replaces the orchestrator's logger. A nil logger resets to the
// no-op logger.
func (g *GlobalIllumination) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	g.logger = l
}

// SetRefreshFunc installs the collaborator callback that performs actual
// refresh work (re-voxelizing, SDF rebuilds, probe re-bakes). It runs from
// Update on refresh frames only.
func (g *GlobalIllumination) SetRefreshFunc(fn func(frame uint64)) {
	g.refreshFunc = fn
}

// Profiler exposes the refresh-scope timings for HUD overlays.
func (g *GlobalIllumination) Profiler() *Profiler {
	return g.profiler
}

// InitVoxelGI sizes a fresh voxel grid so that VoxelResolution cells span
// the given world-space cube. Any previous grid, including its bake data,
// is discarded.
func (g *GlobalIllumination) InitVoxelGI(origin mgl32.Vec3, size float32) {
	voxelSize := size / float32(g.Config.VoxelResolution)
	g.voxelGrid = volume.NewVoxelGrid(g.Config.VoxelResolution, voxelSize, origin)
	g.logger.Infof("voxel GI grid: %d^3 cells, %.3f units/cell", g.Config.VoxelResolution, voxelSize)
}

// InitLightProbes lays out a fresh probe lattice across the bounds. Any
// previous lattice is discarded.
func (g *GlobalIllumination) InitLightProbes(boundsMin, boundsMax mgl32.Vec3, resolution [3]int) {
	g.probeGrid = probe.NewLightProbeGrid(boundsMin, boundsMax, resolution)
	g.logger.Infof("light probe grid: %d probes", g.probeGrid.ProbeCount())
}

// InitSDFGI sizes a fresh signed distance field so that SDFResolution cells
// span the given world-space cube. Any previous field is discarded.
func (g *GlobalIllumination) InitSDFGI(origin mgl32.Vec3, size float32) {
	voxelSize := size / float32(g.Config.SDFResolution)
	g.sdf = sdfield.NewSignedDistanceField(g.Config.SDFResolution, voxelSize, origin)
	g.logger.Infof("SDF GI field: %d^3 cells, %.3f units/cell", g.Config.SDFResolution, voxelSize)
}

// VoxelGrid returns the owned voxel grid, or nil before InitVoxelGI.
func (g *GlobalIllumination) VoxelGrid() *volume.VoxelGrid {
	return g.voxelGrid
}

// ProbeGrid returns the owned probe lattice, or nil before InitLightProbes.
func (g *GlobalIllumination) ProbeGrid() *probe.LightProbeGrid {
	return g.probeGrid
}

// SDF returns the owned distance field, or nil before InitSDFGI.
func (g *GlobalIllumination) SDF() *sdfield.SignedDistanceField {
	return g.sdf
}

// Update advances the frame counter; once every UpdateRate frames it runs
// the installed refresh callback under a profiler scope. Call once per
// rendered frame.
func (g *GlobalIllumination) Update() {
	g.frame++

	rate := uint64(g.Config.UpdateRate)
	if rate < 1 {
		rate = 1
	}
	if g.frame%rate != 0 {
		return
	}

	g.profiler.BeginScope("refresh")
	if g.refreshFunc != nil {
		g.refreshFunc(g.frame)
	}
	g.profiler.EndScope("refresh")
	g.logger.Debugf("refresh fired at frame %d (method=%s)", g.frame, g.Config.Method)
}

// SampleIndirect returns the indirect lighting estimate for a shaded point.
// It is total: a disabled system, an unwired method, or an uninitialized
// substructure all yield black rather than an error.
func (g *GlobalIllumination) SampleIndirect(position, normal mgl32.Vec3) mgl32.Vec3 {
	if !g.Config.Enabled {
		return mgl32.Vec3{}
	}

	switch g.Config.Method {
	case MethodLightProbes:
		if g.probeGrid == nil {
			return mgl32.Vec3{}
		}
		return g.probeGrid.Sample(position, normal).Mul(g.Config.Intensity)

	case MethodVoxelGI:
		if g.voxelGrid == nil {
			return mgl32.Vec3{}
		}
		r := g.voxelGrid.ConeTrace(position, normal, voxelConeAngle, g.Config.MaxDistance)
		return mgl32.Vec3{r.X(), r.Y(), r.Z()}.Mul(g.Config.Intensity)

	case MethodSSGI, MethodSDFGI, MethodRTGI, MethodHybrid:
		// Extension points; nothing wired into sampling yet.
		return mgl32.Vec3{}

	default:
		return mgl32.Vec3{}
	}
}

// Stats reports read-only diagnostics; it never touches any substructure
// state.
func (g *GlobalIllumination) Stats() GIStats {
	s := GIStats{
		Method:  g.Config.Method,
		Quality: g.Config.Quality,
		Frame:   g.frame,
	}
	if g.probeGrid != nil {
		s.ProbeCount = g.probeGrid.ProbeCount()
	}
	if g.voxelGrid != nil {
		s.VoxelCount = g.voxelGrid.VoxelCount()
	}
	return s
}
