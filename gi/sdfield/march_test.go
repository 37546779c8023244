package sdfield

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func boxField(t *testing.T) *SignedDistanceField {
	t.Helper()
	f := NewSignedDistanceField(16, 1.0, mgl32.Vec3{})
	f.GenerateFromAABBs([]AABB{{Min: mgl32.Vec3{6, 6, 6}, Max: mgl32.Vec3{10, 10, 10}}})
	return f
}

func TestRayMarchHitsBox(t *testing.T) {
	f := boxField(t)

	origin := mgl32.Vec3{8, 8, 0.5}
	hit, ok := f.RayMarch(origin, mgl32.Vec3{0, 0, 1}, 64, 20.0)
	if !ok {
		t.Fatal("Expected a hit marching into the box")
	}

	// Analytic distance to the z=6 face is 5.5; sphere tracing lands within
	// one cell of it
	if hit.Distance < 4.5 || hit.Distance > 6.5 {
		t.Errorf("Hit distance %f not within one cell of analytic 5.5", hit.Distance)
	}

	wantPos := origin.Add(mgl32.Vec3{0, 0, 1}.Mul(hit.Distance))
	if hit.Position != wantPos {
		t.Errorf("Hit position %v inconsistent with traveled distance", hit.Position)
	}
}

func TestRayMarchEmptyField(t *testing.T) {
	f := NewSignedDistanceField(16, 1.0, mgl32.Vec3{})

	if _, ok := f.RayMarch(mgl32.Vec3{8, 8, 1}, mgl32.Vec3{0, 0, 1}, 32, 1000.0); ok {
		t.Error("Empty field should never report a hit")
	}
}

func TestRayMarchLeavesGrid(t *testing.T) {
	f := boxField(t)

	// Firing away from the box exits the domain without a hit
	if _, ok := f.RayMarch(mgl32.Vec3{8, 8, 2}, mgl32.Vec3{0, 0, -1}, 64, 100.0); ok {
		t.Error("March exiting the grid should report no hit")
	}

	// Starting outside the grid reports no hit immediately
	if _, ok := f.RayMarch(mgl32.Vec3{-5, 8, 8}, mgl32.Vec3{1, 0, 0}, 64, 100.0); ok {
		t.Error("March starting outside the grid should report no hit")
	}
}

func TestRayMarchRespectsMaxDistance(t *testing.T) {
	f := boxField(t)

	if _, ok := f.RayMarch(mgl32.Vec3{8, 8, 0.5}, mgl32.Vec3{0, 0, 1}, 64, 2.0); ok {
		t.Error("March capped at 2 units should not reach the box at 5.5")
	}
}

func TestRayMarchRespectsMaxSteps(t *testing.T) {
	f := NewSignedDistanceField(16, 1.0, mgl32.Vec3{})
	// Distances just above the hit threshold force one-cell steps without
	// ever hitting
	for z := 0; z < 16; z++ {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				f.SetDistance(x, y, z, 0.6)
			}
		}
	}

	if _, ok := f.RayMarch(mgl32.Vec3{0.5, 8, 8}, mgl32.Vec3{1, 0, 0}, 4, 1000.0); ok {
		t.Error("March should give up after maxSteps")
	}
}

func TestNormalPointsAwayFromSurface(t *testing.T) {
	f := boxField(t)

	n := f.Normal(mgl32.Vec3{8, 8, 11.5})
	if n.Z() < 0.7 {
		t.Errorf("Normal above the +Z face should point up, got %v", n)
	}

	n = f.Normal(mgl32.Vec3{4.5, 8, 8})
	if n.X() > -0.7 {
		t.Errorf("Normal left of the -X face should point -X, got %v", n)
	}
}

func TestSoftShadowBlockedAndOpen(t *testing.T) {
	f := boxField(t)

	// Straight into the box: fully shadowed
	if got := f.SoftShadow(mgl32.Vec3{8, 8, 1}, mgl32.Vec3{0, 0, 1}, 14.0, 8.0); got != 0 {
		t.Errorf("Occluded shadow ray should return 0, got %f", got)
	}

	// Empty field: fully open
	empty := NewSignedDistanceField(16, 1.0, mgl32.Vec3{})
	if got := empty.SoftShadow(mgl32.Vec3{8, 8, 1}, mgl32.Vec3{0, 0, 1}, 14.0, 8.0); got != 1 {
		t.Errorf("Unoccluded shadow ray should return 1, got %f", got)
	}
}

func TestAmbientOcclusionRange(t *testing.T) {
	empty := NewSignedDistanceField(16, 1.0, mgl32.Vec3{})
	if got := empty.AmbientOcclusion(mgl32.Vec3{8, 8, 8}, mgl32.Vec3{0, 1, 0}, 5); got != 1 {
		t.Errorf("Open space AO should be 1, got %f", got)
	}

	f := boxField(t)
	// Probing into the solid darkens
	got := f.AmbientOcclusion(mgl32.Vec3{8, 8, 10.2}, mgl32.Vec3{0, 0, -1}, 5)
	if got < 0 || got > 1 {
		t.Fatalf("AO out of range: %f", got)
	}
	if got >= 1 {
		t.Errorf("AO probing into a solid should darken, got %f", got)
	}
}

func TestRayMarchNeverLeavesGridIndexRange(t *testing.T) {
	f := boxField(t)
	// A diagonal grazing ray; the march must terminate cleanly regardless
	dir := mgl32.Vec3{1, 0.3, 0.3}.Normalize()
	_, _ = f.RayMarch(mgl32.Vec3{0.1, 0.1, 0.1}, dir, 256, float32(math.Inf(1)))
}
