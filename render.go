package termimgview

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/muesli/termenv"
)

// Render produces the full styled frame as a single string: rows
// top-to-bottom, cells left-to-right, an SGR reset and newline after each
// row. All validation happens up front so nothing is emitted on error.
func (i *Image) Render() (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}

	src, err := i.loadImage()
	if err != nil {
		return "", err
	}
	if src.Bounds().Dx() == 0 || src.Bounds().Dy() == 0 {
		return "", fmt.Errorf("image is empty")
	}

	scale := i.scale
	if i.fit {
		scale = fitScale(src.Bounds().Dx(), src.Bounds().Dy(), i.aspectRatio)
	}

	outW, outH := outputDims(src.Bounds().Dx(), src.Bounds().Dy(), scale, i.aspectRatio)
	grid := resample(src, outW, outH)

	lw := newLineWriter(i.colorProfile(), outW, outH)
	for _, row := range grid {
		for _, sample := range row {
			p := i.transform(sample)
			lw.cell(i.ramp.Glyph(intensity(p)), p)
		}
		lw.endLine()
	}
	return lw.String(), nil
}

// lineWriter accumulates styled cells for a frame. The foreground SGR is
// only re-emitted when the profile-converted color changes, which keeps
// frames for images with flat regions far smaller than one escape per cell.
type lineWriter struct {
	sb      strings.Builder
	profile termenv.Profile
	lastSeq string
}

func newLineWriter(profile termenv.Profile, outW, outH int) *lineWriter {
	lw := &lineWriter{profile: profile}
	// worst case is ~20 bytes of escapes per cell plus the glyph
	lw.sb.Grow(outW * outH * 24)
	return lw
}

func (lw *lineWriter) cell(glyph rune, p pixel) {
	c := lw.profile.FromColor(color.RGBA{R: p.r, G: p.g, B: p.b, A: 0xff})
	seq := c.Sequence(false)
	if seq != lw.lastSeq {
		if seq == "" {
			lw.sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		} else {
			lw.sb.WriteString(termenv.CSI + seq + "m")
		}
		lw.lastSeq = seq
	}
	lw.sb.WriteRune(glyph)
}

func (lw *lineWriter) endLine() {
	if lw.lastSeq != "" {
		lw.sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		lw.lastSeq = ""
	}
	lw.sb.WriteByte('\n')
}

func (lw *lineWriter) String() string {
	return lw.sb.String()
}
