package bake

import (
	"github.com/google/uuid"
)

// SurfaceCachePage is one atlas allocation holding cached surface lighting
// for an object.
type SurfaceCachePage struct {
	ObjectID   uuid.UUID
	UVOffset   [2]float32
	UVScale    [2]float32
	Resolution int
	LastUpdate uint64
	Valid      bool
}

// SurfaceCache schedules incremental re-lighting of cached object surfaces:
// pages age by frame and come up for update every UpdateFrames frames, or
// immediately while still invalid. It only does bookkeeping; the lighting
// itself is a collaborator pass.
type SurfaceCache struct {
	AtlasResolution int
	UpdateFrames    uint64

	pages []SurfaceCachePage
	frame uint64
}

func NewSurfaceCache(atlasResolution int) *SurfaceCache {
	return &SurfaceCache{
		AtlasResolution: atlasResolution,
		UpdateFrames:    8,
	}
}

// AllocatePage adds a page for an object and returns its index.
func (c *SurfaceCache) AllocatePage(objectID uuid.UUID, resolution int) int {
	c.pages = append(c.pages, SurfaceCachePage{
		ObjectID:   objectID,
		UVScale:    [2]float32{1, 1},
		Resolution: resolution,
	})
	return len(c.pages) - 1
}

// Advance moves the cache one frame forward.
func (c *SurfaceCache) Advance() {
	c.frame++
}

// Frame returns the cache's current frame.
func (c *SurfaceCache) Frame() uint64 {
	return c.frame
}

// PageCount returns the number of allocated pages.
func (c *SurfaceCache) PageCount() int {
	return len(c.pages)
}

// Page returns a page by index, or nil when out of range.
func (c *SurfaceCache) Page(idx int) *SurfaceCachePage {
	if idx < 0 || idx >= len(c.pages) {
		return nil
	}
	return &c.pages[idx]
}

// PagesNeedingUpdate lists the indices of pages due for re-lighting this
// frame: never-lit pages first come up immediately, lit pages once their age
// reaches UpdateFrames.
func (c *SurfaceCache) PagesNeedingUpdate() []int {
	var due []int
	for i := range c.pages {
		p := &c.pages[i]
		if !p.Valid || c.frame-p.LastUpdate >= c.UpdateFrames {
			due = append(due, i)
		}
	}
	return due
}

// Touch marks a page as freshly lit at the current frame. Out-of-range
// indices are ignored.
func (c *SurfaceCache) Touch(idx int) {
	if idx < 0 || idx >= len(c.pages) {
		return
	}
	c.pages[idx].LastUpdate = c.frame
	c.pages[idx].Valid = true
}
