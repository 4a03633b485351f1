// Package config reads the optional settings file of the command line tool.
//
// The file uses the ini format:
//
//	[canvas]
//	WIDTH = 500
//	HEIGHT = 500
//	BACKGROUND = white
//
//	[output]
//	PATH = output.png
//
//	[log]
//	MODE = warn
package config

import (
	"image/color"
	"strings"

	"github.com/benoitkugler/svgpng/svgattr"
	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const DefaultOutput = "output.png"

// Log modes
const (
	ModeWarn   = "warn"
	ModeIgnore = "ignore"
)

type Config struct {
	Width, Height int
	Background    string // color, in the syntax of the fill attribute
	Output        string
	Mode          string // ModeWarn or ModeIgnore
}

// Default returns the settings used without a configuration file.
func Default() Config {
	return Config{
		Width:      svgdraw.DefaultWidth,
		Height:     svgdraw.DefaultHeight,
		Background: "white",
		Output:     DefaultOutput,
		Mode:       ModeWarn,
	}
}

// Load reads `source`, either a file path or the content as []byte.
// Missing keys keep their default values.
// Inline comments must be preceded by a space, so that
// hexadecimal colors like #00f are kept.
func Load(source interface{}) (Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{SpaceBeforeInlineComment: true}, source)
	if err != nil {
		return Config{}, errors.Wrap(err, "can't load configuration")
	}
	return fromFile(cfg)
}

func fromFile(cfg *ini.File) (Config, error) {
	def := Default()
	var c Config

	sec := cfg.Section("canvas")
	c.Width = sec.Key("WIDTH").MustInt(def.Width)
	c.Height = sec.Key("HEIGHT").MustInt(def.Height)
	c.Background = sec.Key("BACKGROUND").MustString(def.Background)

	c.Output = cfg.Section("output").Key("PATH").MustString(def.Output)
	c.Mode = strings.ToLower(cfg.Section("log").Key("MODE").MustString(def.Mode))

	return c, c.Validate()
}

// Validate checks the settings values.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if err := svgdraw.CheckSize(c.Width, c.Height); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.ErrorMode(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the Background field.
// "none" gives a transparent canvas.
func (c Config) BackgroundColor() (color.Color, error) {
	if c.Background == svgattr.None {
		return color.Transparent, nil
	}
	col, err := svgattr.ParseColor(c.Background)
	if err != nil {
		return nil, errors.Wrap(err, "invalid background")
	}
	return col, nil
}

func (c Config) ErrorMode() (svgdraw.ErrorMode, error) {
	switch c.Mode {
	case ModeWarn:
		return svgdraw.WarnErrorMode, nil
	case ModeIgnore:
		return svgdraw.IgnoreErrorMode, nil
	default:
		return 0, errors.Errorf("invalid log mode %q", c.Mode)
	}
}
