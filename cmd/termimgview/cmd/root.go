package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/termimgview"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	shadeMethod string
	scale       float64
	grayscale   bool
	invert      bool
	aspectRatio float64
	brightness  float64
	hueRotation float64
	fit         bool
	colorMode   string
	configPath  string
	verbose     bool
)

func init() {
	log.SetHandler(clihander.Default)

	rootCmd.Flags().StringVarP(&shadeMethod, "shade-method", "m", "blocks", "Shading method: blocks, ascii, or a custom glyph ramp")
	rootCmd.Flags().Float64VarP(&scale, "scale", "s", 1, "The scale of the image")
	rootCmd.Flags().BoolVarP(&grayscale, "grayscale", "g", false, "Grayscale image?")
	rootCmd.Flags().BoolVarP(&invert, "invert", "i", false, "Invert image?")
	rootCmd.Flags().Float64VarP(&aspectRatio, "adjust-aspect-ratio", "a", termimgview.DefaultAspectRatio, "Adjust aspect ratio")
	rootCmd.Flags().Float64VarP(&brightness, "brightness", "b", 1, "Brightness of the image")
	rootCmd.Flags().Float64VarP(&hueRotation, "hue-rotation", "r", 0, "Rotate the hue of the image (degrees)")
	rootCmd.Flags().BoolVarP(&fit, "fit", "f", false, "Scale the image to fit the terminal")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color output: auto, ansi, 256, or truecolor")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.Flags().BoolP("version", "V", false, "Print the version and exit")

	rootCmd.Version = Version
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termimgview [flags] <FILE>",
	Short: "Display images in your terminal as colored text.",
	Long: fmt.Sprintf(`Display images in your terminal as colored text.

Shade maps:
  blocks: '%s'
  ascii:  '%s'
  custom: any ordered string, sparsest to densest

Example usage:
  termimgview photo.png -s 0.15 -m " -:!|#@@@@@@@@"
  termimgview photo.jpg -s 1 -i -m ascii`,
		termimgview.BlocksRamp, termimgview.AsciiRamp),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)

		ramp, err := termimgview.ParseRamp(shadeMethod)
		if err != nil {
			return &termimgview.ConfigError{Option: "--shade-method", Reason: err.Error()}
		}

		img, err := termimgview.Open(args[0])
		if err != nil {
			return err
		}

		img.Shade(ramp).
			Scale(scale).
			AspectRatio(aspectRatio).
			Grayscale(grayscale).
			Invert(invert).
			Brightness(brightness).
			HueRotation(hueRotation).
			Fit(fit)

		if profile, ok := parseColorMode(colorMode); ok {
			img.Profile(profile)
		} else if colorMode != "auto" {
			return &termimgview.ConfigError{Option: "--color", Reason: fmt.Sprintf("%q (want auto, ansi, 256, or truecolor)", colorMode)}
		}

		log.Debugf("rendering %s (scale=%g aspect=%g ramp=%q)", args[0], scale, aspectRatio, ramp)

		return img.Print()
	},
}

// parseColorMode maps the --color flag to a termenv profile; "auto"
// returns false so detection is left to the library.
func parseColorMode(mode string) (termenv.Profile, bool) {
	switch mode {
	case "ansi":
		return termenv.ANSI, true
	case "256":
		return termenv.ANSI256, true
	case "truecolor":
		return termenv.TrueColor, true
	default:
		return 0, false
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
