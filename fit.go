package termimgview

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when terminal size detection fails
const (
	fallbackCols = 80
	fallbackRows = 24
)

// fitScale returns the scale factor that fits a srcW x srcH image within
// the current terminal, keeping one row free for the prompt. The row
// budget is compared against the aspect-corrected height so the fitted
// frame honors the same proportions as a fixed-scale render.
func fitScale(srcW, srcH int, aspectRatio float64) float64 {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = fallbackCols, fallbackRows
	}
	if rows > 1 {
		rows--
	}

	ratioW := float64(cols) / float64(srcW)
	ratioH := float64(rows) / (float64(srcH) * aspectRatio)
	return min(ratioW, ratioH)
}
