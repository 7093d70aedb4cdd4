package termimgview

import (
	"fmt"
	"math"
	"strings"
)

// Ramp is an ordered sequence of glyphs from visually sparsest to densest,
// used to approximate cell intensity with text.
type Ramp []rune

// Built-in glyph ramps
var (
	AsciiRamp  = Ramp(" .-:=+*#%@")
	BlocksRamp = Ramp(" ░▒▓█")
)

// ParseRamp resolves a shade-method string: the named built-ins "ascii"
// and "blocks" (case-insensitive), or any non-empty string used verbatim
// as a custom ramp.
func ParseRamp(s string) (Ramp, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return AsciiRamp, nil
	case "blocks":
		return BlocksRamp, nil
	case "":
		return nil, fmt.Errorf("shade method cannot be empty")
	default:
		return Ramp(s), nil
	}
}

// Glyph picks the ramp entry whose position best matches the given
// intensity in [0,1]. The lookup is a linear quantization over len-1
// steps, so 0.0 always maps to the first glyph and 1.0 to the last.
// A single-glyph ramp returns that glyph for every intensity.
func (r Ramp) Glyph(intensity float64) rune {
	idx := int(math.Round(intensity * float64(len(r)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(r)-1 {
		idx = len(r) - 1
	}
	return r[idx]
}

func (r Ramp) String() string {
	return string(r)
}
