package termimgview

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rec.601 luma coefficients, shared by the grayscale adjustment and the
// ramp intensity so a grayscaled pixel and its intensity always agree.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// luminance returns the perceptual luminance of p in [0,255]
func luminance(p pixel) float64 {
	return lumaR*float64(p.r) + lumaG*float64(p.g) + lumaB*float64(p.b)
}

// intensity normalizes luminance to [0,1] for ramp lookup
func intensity(p pixel) float64 {
	return luminance(p) / 255.0
}

// transform applies the configured color adjustments to one cell sample.
// The stage order is fixed: grayscale, hue rotation, brightness, invert.
// Each stage feeds the next, so reordering changes output whenever more
// than one adjustment is active.
func (i *Image) transform(p pixel) pixel {
	if i.grayscale {
		p = grayscalePixel(p)
	}
	if i.hueRotation != 0 {
		p = hueRotate(p, i.hueRotation)
	}
	p = brighten(p, i.brightness)
	if i.invert {
		p = invertPixel(p)
	}
	return p
}

func grayscalePixel(p pixel) pixel {
	y := uint8(math.Round(luminance(p)))
	return pixel{r: y, g: y, b: y}
}

// hueRotate shifts the hue by deg degrees through HSV space. Achromatic
// pixels (S=0) round-trip unchanged, hue being undefined for them.
func hueRotate(p pixel, deg float64) pixel {
	c := colorful.Color{
		R: float64(p.r) / 255.0,
		G: float64(p.g) / 255.0,
		B: float64(p.b) / 255.0,
	}
	h, s, v := c.Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return pixel{r: r, g: g, b: b}
}

// brighten multiplies each channel by factor, saturating per channel.
// Channels may clip at different points; that lossy behavior is intended.
func brighten(p pixel, factor float64) pixel {
	return pixel{
		r: clampChannel(float64(p.r) * factor),
		g: clampChannel(float64(p.g) * factor),
		b: clampChannel(float64(p.b) * factor),
	}
}

func invertPixel(p pixel) pixel {
	return pixel{r: 255 - p.r, g: 255 - p.g, b: 255 - p.b}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
