package gi

import "fmt"

// GIStats is a read-only snapshot of the orchestrator for diagnostics and
// HUD overlays.
type GIStats struct {
	Method     GIMethod
	Quality    GIQuality
	ProbeCount int
	VoxelCount int
	Frame      uint64
}

func (s GIStats) String() string {
	return fmt.Sprintf("method=%s quality=%s probes=%d voxels=%d frame=%d",
		s.Method, s.Quality, s.ProbeCount, s.VoxelCount, s.Frame)
}
