package termimgview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/muesli/termenv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultAspectRatio compensates for terminal character cells being taller
// than they are wide: rows are scaled down by this factor so the rendered
// image keeps its proportions. 8/17 matches a common monospace cell shape
// and is a tunable default, not a constraint.
const DefaultAspectRatio = 8.0 / 17.0

// Image represents a terminal text rendering of a raster image, with a
// fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	ramp        Ramp
	scale       float64
	aspectRatio float64
	grayscale   bool
	invert      bool
	brightness  float64
	hueRotation float64
	fit         bool

	profile    termenv.Profile
	profileSet bool
}

// ConfigError reports an invalid option value, named by its CLI flag.
// It is always detected before any output is written.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Option, e.Reason)
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	i := defaults()
	i.source = img
	return i
}

// Open creates a new Image from a file path
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	i := defaults()
	i.path = path
	return i, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	i := defaults()
	i.reader = r
	return i
}

func defaults() *Image {
	return &Image{
		ramp:        BlocksRamp,
		scale:       1.0,
		aspectRatio: DefaultAspectRatio,
		brightness:  1.0,
	}
}

// Shade sets the glyph ramp used to approximate cell intensity
func (i *Image) Shade(r Ramp) *Image {
	i.ramp = r
	return i
}

// Scale sets the output scale factor (1.0 = one column per source pixel)
func (i *Image) Scale(s float64) *Image {
	i.scale = s
	return i
}

// AspectRatio sets the row correction factor (see DefaultAspectRatio)
func (i *Image) AspectRatio(a float64) *Image {
	i.aspectRatio = a
	return i
}

// Grayscale enables the grayscale adjustment
func (i *Image) Grayscale(g bool) *Image {
	i.grayscale = g
	return i
}

// Invert enables color inversion
func (i *Image) Invert(v bool) *Image {
	i.invert = v
	return i
}

// Brightness sets the channel multiplier (1.0 = unchanged)
func (i *Image) Brightness(b float64) *Image {
	i.brightness = b
	return i
}

// HueRotation sets the hue rotation in degrees, interpreted mod 360
func (i *Image) HueRotation(deg float64) *Image {
	i.hueRotation = deg
	return i
}

// Fit scales the image to fit the current terminal, overriding Scale
func (i *Image) Fit(f bool) *Image {
	i.fit = f
	return i
}

// Profile forces a termenv color profile instead of auto-detecting one
func (i *Image) Profile(p termenv.Profile) *Image {
	i.profile = p
	i.profileSet = true
	return i
}

// Validate checks the configuration eagerly so the render loop cannot
// fail once entered. Render calls it before emitting anything.
func (i *Image) Validate() error {
	if i.scale <= 0 {
		return &ConfigError{Option: "--scale", Reason: "must be positive"}
	}
	if i.aspectRatio <= 0 {
		return &ConfigError{Option: "--adjust-aspect-ratio", Reason: "must be positive"}
	}
	if i.brightness < 0 {
		return &ConfigError{Option: "--brightness", Reason: "must not be negative"}
	}
	if len(i.ramp) == 0 {
		return &ConfigError{Option: "--shade-method", Reason: "glyph ramp cannot be empty"}
	}
	return nil
}

// Print renders the image and writes it to stdout in a single flush
func (i *Image) Print() error {
	out, err := i.Render()
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	return nil, fmt.Errorf("no image source configured")
}

// colorProfile returns the forced profile, or auto-detects one
func (i *Image) colorProfile() termenv.Profile {
	if i.profileSet {
		return i.profile
	}
	return termenv.ColorProfile()
}
