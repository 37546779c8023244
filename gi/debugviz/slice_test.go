package debugviz

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
	"github.com/gabrielima7/Lunaris-sub000/gi/volume"
)

func TestGridSlicePixels(t *testing.T) {
	g := volume.NewVoxelGrid(4, 1.0, mgl32.Vec3{})
	g.SetRadiance(1, 0, 2, mgl32.Vec4{1, 0, 0, 1})

	img := GridSlice(g, 2)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("Expected a 4x4 slice, got %v", img.Bounds())
	}

	// Voxel y=0 lands on the bottom image row
	got := img.RGBAAt(1, 3)
	if got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected red at (1,3), got %v", got)
	}
	if img.RGBAAt(0, 0) != (color.RGBA{A: 255}) {
		t.Errorf("Untouched voxel should render black, got %v", img.RGBAAt(0, 0))
	}
}

func TestMipSliceUnknownLevel(t *testing.T) {
	g := volume.NewVoxelGrid(4, 1.0, mgl32.Vec3{})

	img := MipSlice(g, 5, 0)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("Unknown level should render a 1x1 placeholder, got %v", img.Bounds())
	}
}

func TestSDFSliceRamp(t *testing.T) {
	f := sdfield.NewSignedDistanceField(8, 1.0, mgl32.Vec3{})
	f.GenerateFromAABBs([]sdfield.AABB{{Min: mgl32.Vec3{2, 2, 2}, Max: mgl32.Vec3{6, 6, 6}}})

	img := SDFSlice(f, 4)

	// Inside the box: red channel dominates
	inside := img.RGBAAt(4, 3)
	if inside.R == 0 || inside.B != 0 {
		t.Errorf("Interior cell should render red, got %v", inside)
	}

	// Outside: blue ramp
	outside := img.RGBAAt(0, 3)
	if outside.B == 0 || outside.R != 0 {
		t.Errorf("Exterior cell should render blue, got %v", outside)
	}

	// An untouched field renders white
	empty := sdfield.NewSignedDistanceField(4, 1.0, mgl32.Vec3{})
	white := SDFSlice(empty, 0).RGBAAt(0, 0)
	if white != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Open space should render white, got %v", white)
	}
}

func TestUpscale(t *testing.T) {
	g := volume.NewVoxelGrid(4, 1.0, mgl32.Vec3{})
	img := GridSlice(g, 0)

	big := Upscale(img, 8)
	if big.Bounds().Dx() != 32 || big.Bounds().Dy() != 32 {
		t.Errorf("Expected 32x32 after 8x upscale, got %v", big.Bounds())
	}

	same := Upscale(img, 0)
	if same.Bounds().Dx() != 4 {
		t.Errorf("Scale below one should clamp to one, got %v", same.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	g := volume.NewVoxelGrid(4, 1.0, mgl32.Vec3{})
	g.SetRadiance(0, 0, 0, mgl32.Vec4{0, 1, 0, 1})

	path := filepath.Join(t.TempDir(), "slice.png")
	if err := WritePNG(path, GridSlice(g, 0)); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer fh.Close()

	decoded, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("Round-tripped image has bounds %v", decoded.Bounds())
	}
}
