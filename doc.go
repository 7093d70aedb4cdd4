/*
Package termimgview renders raster images as colored text in any terminal.

Unlike graphics-protocol viewers, termimgview needs nothing from the
terminal beyond ANSI colors: each region of the image is resampled to one
character cell and drawn as a glyph from an ordered ramp, with the cell's
color as the foreground. It supports all image formats that Go's standard
image package supports (PNG, JPEG, GIF) plus BMP, TIFF, and WebP via
golang.org/x/image.

The pipeline per cell is: box-filter resample, color adjustments
(grayscale, hue rotation, brightness, then inversion), glyph
selection by luminance, and styled emission. Output colors degrade
automatically to the terminal's color profile (truecolor, 256, or 16).

Basic Usage:

	// Simple one-liner
	img, _ := termimgview.Open("image.png")
	img.Print()

	// With configuration
	img, err := termimgview.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}
	err = img.Scale(0.5).Grayscale(true).Print()
	if err != nil {
	    log.Fatal(err)
	}

Fluent API:

	// Chain configuration methods
	img, err := termimgview.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}
	rendered, err := img.
	    Shade(termimgview.AsciiRamp).
	    Scale(0.25).
	    Brightness(1.2).
	    HueRotation(90).
	    Render()

Glyph Ramps:

	// Built-in ramps
	termimgview.AsciiRamp  // " .-:=+*#%@"
	termimgview.BlocksRamp // " ░▒▓█"

	// Or any ordered string, sparsest to densest
	ramp, _ := termimgview.ParseRamp(" -:!|#@")
	img.Shade(ramp)

Because terminal cells are taller than wide, rows are scaled by an
aspect-ratio correction (default 8/17) so images keep their proportions;
override it with AspectRatio if your font differs.
*/
package termimgview
