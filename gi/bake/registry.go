package bake

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// MeshSDF is a registration record for a per-mesh distance field: extent,
// derived resolution, and whether the field has been built yet. The actual
// voxel data lives in a sdfield.SignedDistanceField owned by the builder.
type MeshSDF struct {
	ID        uuid.UUID
	BoundsMin mgl32.Vec3
	BoundsMax mgl32.Vec3

	Resolution [3]int
	MipLevels  int
	Built      bool
}

// MeshRegistry tracks which meshes want a distance field bake.
type MeshRegistry struct {
	meshes map[uuid.UUID]*MeshSDF
	order  []uuid.UUID
}

func NewMeshRegistry() *MeshRegistry {
	return &MeshRegistry{
		meshes: make(map[uuid.UUID]*MeshSDF),
	}
}

// Register enrolls a mesh extent for baking and returns its record. The SDF
// resolution targets roughly one cell per half unit of the largest
// dimension, clamped to [8, 128].
func (r *MeshRegistry) Register(boundsMin, boundsMax mgl32.Vec3) *MeshSDF {
	size := boundsMax.Sub(boundsMin)
	maxDim := size.X()
	if size.Y() > maxDim {
		maxDim = size.Y()
	}
	if size.Z() > maxDim {
		maxDim = size.Z()
	}

	res := int(maxDim / 0.5)
	if res < 8 {
		res = 8
	}
	if res > 128 {
		res = 128
	}

	m := &MeshSDF{
		ID:         uuid.New(),
		BoundsMin:  boundsMin,
		BoundsMax:  boundsMax,
		Resolution: [3]int{res, res, res},
		MipLevels:  4,
	}
	r.meshes[m.ID] = m
	r.order = append(r.order, m.ID)
	return m
}

// Lookup returns the record for an ID.
func (r *MeshRegistry) Lookup(id uuid.UUID) (*MeshSDF, bool) {
	m, ok := r.meshes[id]
	return m, ok
}

// MarkBuilt flags a registered mesh as baked. Unknown IDs are ignored and
// reported false.
func (r *MeshRegistry) MarkBuilt(id uuid.UUID) bool {
	m, ok := r.meshes[id]
	if !ok {
		return false
	}
	m.Built = true
	return true
}

// Pending returns the registered meshes that still need a build, in
// registration order.
func (r *MeshRegistry) Pending() []*MeshSDF {
	var out []*MeshSDF
	for _, id := range r.order {
		if m := r.meshes[id]; !m.Built {
			out = append(out, m)
		}
	}
	return out
}

// Count returns the number of registered meshes.
func (r *MeshRegistry) Count() int {
	return len(r.meshes)
}
