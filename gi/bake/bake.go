// Package bake holds the integrator-side population passes for the GI core:
// distance field generation, direct light injection into the voxel grid, and
// the bookkeeping caches that schedule incremental re-bakes. The core
// structures stay lock-free; everything here partitions work into disjoint
// regions and must run with exclusive access to the structures it fills.
package bake

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
)

// GenerateSDFParallel rebuilds the field from occluder boxes, fanning
// per-slice generation out over a worker pool. Slices touch disjoint cells,
// so no synchronization beyond the final wait is needed. workers <= 0 uses
// one worker per CPU.
func GenerateSDFParallel(field *sdfield.SignedDistanceField, boxes []sdfield.AABB, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for z := 0; z < field.Resolution; z++ {
		wg.Add(1)
		slice := z
		pool.Submit(func() {
			defer wg.Done()
			field.GenerateSlice(slice, boxes)
		})
	}
	wg.Wait()
}
