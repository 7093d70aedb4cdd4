package termimgview

import (
	"image"
	"math"
)

// pixel is an 8-bit RGB sample. Alpha is folded in at read time:
// color.Color.RGBA returns premultiplied channels, so transparent
// regions average toward black the same way the display path treats them.
type pixel struct {
	r, g, b uint8
}

// outputDims returns the character grid size for a source image.
// Both dimensions are clamped to 1 so output is never empty.
func outputDims(srcW, srcH int, scale, aspectRatio float64) (int, int) {
	outW := int(math.Round(float64(srcW) * scale))
	outH := int(math.Round(float64(srcH) * scale * aspectRatio))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// resample maps the source pixel grid onto an outW x outH cell grid,
// row-major. Each cell takes the box-filter mean of its source region;
// when the region collapses below one source pixel (upscaling), the
// nearest source pixel to the region center is used instead.
func resample(src image.Image, outW, outH int) [][]pixel {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	scaleX := float64(outW) / float64(srcW)
	scaleY := float64(outH) / float64(srcH)

	grid := make([][]pixel, outH)
	for oy := 0; oy < outH; oy++ {
		row := make([]pixel, outW)

		y0 := int(math.Floor(float64(oy) / scaleY))
		y1 := int(math.Floor(float64(oy+1) / scaleY))
		if y1 > srcH {
			y1 = srcH
		}

		for ox := 0; ox < outW; ox++ {
			x0 := int(math.Floor(float64(ox) / scaleX))
			x1 := int(math.Floor(float64(ox+1) / scaleX))
			if x1 > srcW {
				x1 = srcW
			}

			if x1 <= x0 || y1 <= y0 {
				row[ox] = nearestAt(src, bounds, ox, oy, scaleX, scaleY)
				continue
			}

			var sumR, sumG, sumB, n uint64
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					r, g, b, _ := src.At(bounds.Min.X+sx, bounds.Min.Y+sy).RGBA()
					sumR += uint64(r >> 8)
					sumG += uint64(g >> 8)
					sumB += uint64(b >> 8)
					n++
				}
			}
			row[ox] = pixel{
				r: uint8(sumR / n),
				g: uint8(sumG / n),
				b: uint8(sumB / n),
			}
		}
		grid[oy] = row
	}
	return grid
}

// nearestAt samples the source pixel closest to the cell's center
func nearestAt(src image.Image, bounds image.Rectangle, ox, oy int, scaleX, scaleY float64) pixel {
	sx := int(math.Floor((float64(ox) + 0.5) / scaleX))
	sy := int(math.Floor((float64(oy) + 0.5) / scaleY))
	if sx > bounds.Dx()-1 {
		sx = bounds.Dx() - 1
	}
	if sy > bounds.Dy()-1 {
		sy = bounds.Dy() - 1
	}
	r, g, b, _ := src.At(bounds.Min.X+sx, bounds.Min.Y+sy).RGBA()
	return pixel{r: uint8(r >> 8), g: uint8(g >> 8), b: uint8(b >> 8)}
}
