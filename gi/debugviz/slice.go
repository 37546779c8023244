// Package debugviz renders CPU-side slice images of the GI data structures
// for diagnostics. Nothing here is consulted by sampling.
package debugviz

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gabrielima7/Lunaris-sub000/gi/sdfield"
	"github.com/gabrielima7/Lunaris-sub000/gi/volume"
)

// GridSlice renders one Z slice of the voxel grid's base level, radiance
// clamped to [0,1] per channel.
func GridSlice(g *volume.VoxelGrid, z int) *image.RGBA {
	return MipSlice(g, 0, z)
}

// MipSlice renders one Z slice of a mip level (level 0 is the base grid).
// Unknown levels produce a 1x1 black image rather than failing.
func MipSlice(g *volume.VoxelGrid, level, z int) *image.RGBA {
	res := g.MipResolution(level)
	if res < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	img := image.NewRGBA(image.Rect(0, 0, res, res))
	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			r := g.MipRadianceAt(level, x, y, z)
			img.SetRGBA(x, res-1-y, color.RGBA{
				R: toByte(r.X()),
				G: toByte(r.Y()),
				B: toByte(r.Z()),
				A: 255,
			})
		}
	}
	return img
}

// SDFSlice renders one Z slice of the distance field as a diverging ramp:
// red inside surfaces, blue fading with distance outside, white where no
// occluder is in reach.
func SDFSlice(f *sdfield.SignedDistanceField, z int) *image.RGBA {
	res := f.Resolution
	img := image.NewRGBA(image.Rect(0, 0, res, res))

	// Normalize against the field's world extent.
	extent := float32(res) * f.VoxelSize
	if extent <= 0 {
		extent = 1
	}

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			d := f.DistanceAt(x, y, z)

			var c color.RGBA
			switch {
			case d >= math.MaxFloat32:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			case d < 0:
				v := toByte(-d / extent * 4)
				c = color.RGBA{R: 128 + v/2, A: 255}
			default:
				v := toByte(1 - d/extent)
				c = color.RGBA{B: v, A: 255}
			}
			img.SetRGBA(x, res-1-y, c)
		}
	}
	return img
}

// Upscale resizes a slice image by an integer factor with bilinear
// filtering, for HUD display of coarse grids.
func Upscale(src image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// WritePNG encodes an image to a file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
