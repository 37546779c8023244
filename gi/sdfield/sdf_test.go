package sdfield

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEmptyFieldIsOpenSpace(t *testing.T) {
	f := NewSignedDistanceField(4, 1.0, mgl32.Vec3{})

	if got := f.DistanceAt(2, 2, 2); got != math.MaxFloat32 {
		t.Errorf("Fresh field should hold MaxFloat32, got %g", got)
	}
	if got := f.DistanceAt(-1, 0, 0); got != math.MaxFloat32 {
		t.Errorf("Out-of-range read should report open space, got %g", got)
	}
}

func TestGenerateFromSingleBox(t *testing.T) {
	f := NewSignedDistanceField(8, 1.0, mgl32.Vec3{})
	box := AABB{Min: mgl32.Vec3{2, 2, 2}, Max: mgl32.Vec3{6, 6, 6}}
	f.GenerateFromAABBs([]AABB{box})

	// Cell (4,4,4) center (4.5,4.5,4.5) is inside; nearest face is 1.5 away
	if got := f.DistanceAt(4, 4, 4); !near(got, -1.5, 1e-4) {
		t.Errorf("Inside distance: expected -1.5, got %g", got)
	}

	// Cell (0,4,4) center (0.5,4.5,4.5) is outside; clamped closest point is
	// (2,4.5,4.5), 1.5 away
	if got := f.DistanceAt(0, 4, 4); !near(got, 1.5, 1e-4) {
		t.Errorf("Outside distance: expected 1.5, got %g", got)
	}

	// Cell (0,0,0) center (0.5,0.5,0.5): closest corner (2,2,2), sqrt(3)*1.5
	want := float32(math.Sqrt(3)) * 1.5
	if got := f.DistanceAt(0, 0, 0); !near(got, want, 1e-4) {
		t.Errorf("Corner distance: expected %g, got %g", want, got)
	}

	// Every inside center is strictly negative
	for _, c := range [][3]int{{3, 3, 3}, {4, 3, 4}, {5, 5, 5}} {
		if got := f.DistanceAt(c[0], c[1], c[2]); got >= 0 {
			t.Errorf("Center of %v lies inside the box, expected negative distance, got %g", c, got)
		}
	}
}

func TestGenerateNearestOfSeveralBoxes(t *testing.T) {
	f := NewSignedDistanceField(8, 1.0, mgl32.Vec3{})
	boxes := []AABB{
		{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 8, 8}},
		{Min: mgl32.Vec3{7, 0, 0}, Max: mgl32.Vec3{8, 8, 8}},
	}
	f.GenerateFromAABBs(boxes)

	// Cell (3,4,4) center x=3.5: 2.5 from the left slab, 3.5 from the right
	if got := f.DistanceAt(3, 4, 4); !near(got, 2.5, 1e-4) {
		t.Errorf("Expected distance to nearer slab 2.5, got %g", got)
	}
}

func TestGenerateSliceMatchesFullBuild(t *testing.T) {
	boxes := []AABB{{Min: mgl32.Vec3{1, 1, 1}, Max: mgl32.Vec3{5, 3, 6}}}

	full := NewSignedDistanceField(8, 1.0, mgl32.Vec3{})
	full.GenerateFromAABBs(boxes)

	sliced := NewSignedDistanceField(8, 1.0, mgl32.Vec3{})
	for z := 0; z < sliced.Resolution; z++ {
		sliced.GenerateSlice(z, boxes)
	}

	for z := 0; z < 8; z++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if full.DistanceAt(x, y, z) != sliced.DistanceAt(x, y, z) {
					t.Fatalf("Slice build diverges at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}

func TestGenerateSliceOutOfRange(t *testing.T) {
	f := NewSignedDistanceField(4, 1.0, mgl32.Vec3{})
	f.GenerateSlice(-1, nil)
	f.GenerateSlice(4, nil)

	if got := f.DistanceAt(0, 0, 0); got != math.MaxFloat32 {
		t.Errorf("Out-of-range slice build should not touch the field, got %g", got)
	}
}

func TestSurfaceCacheRoundTrip(t *testing.T) {
	f := NewSignedDistanceField(4, 1.0, mgl32.Vec3{})

	want := mgl32.Vec4{0.1, 0.2, 0.3, 1.0}
	f.SetSurfaceRadiance(1, 2, 3, want)

	if got := f.SurfaceRadianceAt(1, 2, 3); got != want {
		t.Errorf("Surface cache roundtrip: expected %v, got %v", want, got)
	}
	if got := f.SurfaceRadianceAt(9, 9, 9); got != (mgl32.Vec4{}) {
		t.Errorf("Out-of-range surface read should be zero, got %v", got)
	}

	// Out-of-range writes change nothing
	f.SetSurfaceRadiance(-1, 0, 0, want)
	if got := f.SurfaceRadianceAt(0, 0, 0); got != (mgl32.Vec4{}) {
		t.Errorf("Out-of-range surface write mutated cell (0,0,0): %v", got)
	}
}

func near(got, want, eps float32) bool {
	d := got - want
	return d >= -eps && d <= eps
}
