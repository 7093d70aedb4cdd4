package termimgview

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputDims(t *testing.T) {
	tests := []struct {
		name        string
		srcW, srcH  int
		scale       float64
		aspectRatio float64
		expW, expH  int
	}{
		{
			name: "Unit scale and aspect",
			srcW: 100, srcH: 50,
			scale: 1, aspectRatio: 1,
			expW: 100, expH: 50,
		},
		{
			name: "Default aspect squashes rows",
			srcW: 100, srcH: 100,
			scale: 1, aspectRatio: DefaultAspectRatio,
			expW: 100, expH: 47,
		},
		{
			name: "Half scale rounds to nearest",
			srcW: 101, srcH: 51,
			scale: 0.5, aspectRatio: 1,
			expW: 51, expH: 26,
		},
		{
			name: "Tiny scale clamps to one cell",
			srcW: 10, srcH: 10,
			scale: 0.01, aspectRatio: 1,
			expW: 1, expH: 1,
		},
		{
			name: "Aspect can zero out rows before clamping",
			srcW: 100, srcH: 1,
			scale: 1, aspectRatio: DefaultAspectRatio,
			expW: 100, expH: 1,
		},
		{
			name: "Upscale",
			srcW: 4, srcH: 4,
			scale: 2.5, aspectRatio: 1,
			expW: 10, expH: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := outputDims(tt.srcW, tt.srcH, tt.scale, tt.aspectRatio)
			assert.Equal(t, tt.expW, w, "width mismatch")
			assert.Equal(t, tt.expH, h, "height mismatch")
		})
	}
}

func TestOutputDimsProperty(t *testing.T) {
	// every cell grid is rectangular and non-empty for any positive scale
	for _, scale := range []float64{0.001, 0.1, 0.33, 0.5, 1, 1.7, 3} {
		t.Run(fmt.Sprintf("scale=%g", scale), func(t *testing.T) {
			w, h := outputDims(37, 23, scale, DefaultAspectRatio)
			assert.GreaterOrEqual(t, w, 1)
			assert.GreaterOrEqual(t, h, 1)

			grid := resample(createTestImage(37, 23), w, h)
			require.Len(t, grid, h)
			for _, row := range grid {
				assert.Len(t, row, w)
			}
		})
	}
}

func TestResampleBoxFilterAverages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 255, 255, 255})
	img.Set(0, 1, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})

	grid := resample(img, 1, 1)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)

	// arithmetic mean of the four samples
	assert.Equal(t, pixel{127, 63, 127}, grid[0][0])
}

func TestResampleIdentity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	colors := []color.RGBA{
		{10, 20, 30, 255}, {40, 50, 60, 255}, {70, 80, 90, 255},
		{100, 110, 120, 255}, {130, 140, 150, 255}, {160, 170, 180, 255},
	}
	for i, c := range colors {
		img.Set(i%3, i/3, c)
	}

	grid := resample(img, 3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := colors[y*3+x]
			assert.Equal(t, pixel{c.R, c.G, c.B}, grid[y][x], "cell (%d,%d)", x, y)
		}
	}
}

func TestResampleUpscaleUsesNearestPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	// 2x upscale: each source pixel covers a 2x2 quadrant of cells
	grid := resample(img, 4, 4)
	quadrant := func(x, y int) pixel { return grid[y][x] }

	assert.Equal(t, pixel{255, 0, 0}, quadrant(0, 0))
	assert.Equal(t, pixel{255, 0, 0}, quadrant(1, 1))
	assert.Equal(t, pixel{0, 255, 0}, quadrant(3, 0))
	assert.Equal(t, pixel{0, 0, 255}, quadrant(0, 3))
	assert.Equal(t, pixel{255, 255, 255}, quadrant(3, 3))
}

func TestResampleOffsetBounds(t *testing.T) {
	// images whose bounds do not start at the origin still sample correctly
	img := image.NewRGBA(image.Rect(5, 7, 7, 9))
	for y := 7; y < 9; y++ {
		for x := 5; x < 7; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	grid := resample(img, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, pixel{200, 100, 50}, grid[y][x])
		}
	}
}
