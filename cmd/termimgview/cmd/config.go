package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig holds user defaults read from the config file. Any field
// left unset in the file keeps the flag default; any flag given
// explicitly on the command line wins over the file.
type fileConfig struct {
	ShadeMethod *string  `toml:"shade_method"`
	Scale       *float64 `toml:"scale"`
	AspectRatio *float64 `toml:"adjust_aspect_ratio"`
	Brightness  *float64 `toml:"brightness"`
	HueRotation *float64 `toml:"hue_rotation"`
	Grayscale   *bool    `toml:"grayscale"`
	Invert      *bool    `toml:"invert"`
	Color       *string  `toml:"color"`
}

// loadConfig reads the config file at path, or searches the standard
// locations when path is empty:
//  1. $XDG_CONFIG_HOME/termimgview/config.toml
//  2. ~/.config/termimgview/config.toml
//
// A missing file is not an error; it just means no defaults.
func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		for _, p := range configSearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return &fileConfig{}, nil
		}
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "termimgview", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "termimgview", "config.toml"))
	}
	return paths
}

// applyConfig overlays file values onto flag variables, but only for
// flags the user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *fileConfig) {
	if cfg.ShadeMethod != nil && !cmd.Flags().Changed("shade-method") {
		shadeMethod = *cfg.ShadeMethod
	}
	if cfg.Scale != nil && !cmd.Flags().Changed("scale") {
		scale = *cfg.Scale
	}
	if cfg.AspectRatio != nil && !cmd.Flags().Changed("adjust-aspect-ratio") {
		aspectRatio = *cfg.AspectRatio
	}
	if cfg.Brightness != nil && !cmd.Flags().Changed("brightness") {
		brightness = *cfg.Brightness
	}
	if cfg.HueRotation != nil && !cmd.Flags().Changed("hue-rotation") {
		hueRotation = *cfg.HueRotation
	}
	if cfg.Grayscale != nil && !cmd.Flags().Changed("grayscale") {
		grayscale = *cfg.Grayscale
	}
	if cfg.Invert != nil && !cmd.Flags().Changed("invert") {
		invert = *cfg.Invert
	}
	if cfg.Color != nil && !cmd.Flags().Changed("color") {
		colorMode = *cfg.Color
	}
}
