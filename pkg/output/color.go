package output

import (
	"image"
	"image/color"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// MaxValue is the largest channel value written to 8-bit images
const MaxValue = 255

// ToRGBA converts a linear color to 8-bit: clamp to [0,1], gamma 2, scale by 255
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(MaxValue * c.X),
		G: uint8(MaxValue * c.Y),
		B: uint8(MaxValue * c.Z),
		A: 255,
	}
}

// ToImage converts a rendered image into an 8-bit RGBA image
func ToImage(img *renderer.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, ToRGBA(img.At(x, y)))
		}
	}
	return out
}
