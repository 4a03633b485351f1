package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benoitkugler/svgpng/internal/config"
	"github.com/benoitkugler/svgpng/internal/console"
	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/benoitkugler/svgpng/svgout"
	"github.com/benoitkugler/svgpng/svgpdf"
	"github.com/benoitkugler/svgpng/svgraster"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(console.DecorateText(err.Error(), console.ErrorMessage))
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "svgpng"
	app.Usage = "Draw the basic shapes of an SVG file into an image"
	app.Version = version
	app.ArgsUsage = "<file.svg>"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   config.DefaultOutput,
			Usage:   "Destination file (png, jpg, bmp, tiff or pdf), or - for the standard output",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: svgdraw.DefaultWidth,
			Usage: "Canvas width",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: svgdraw.DefaultHeight,
			Usage: "Canvas height",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Settings file, in ini format",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not log the problems found while drawing",
		},
	}
	app.Action = run
	return app
}

// settings merges the configuration file and the flags explicitly set.
func settings(c *cli.Context) (config.Config, error) {
	conf := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		conf, err = config.Load(path)
		if err != nil {
			return conf, err
		}
	}
	if c.IsSet("out") || conf.Output == "" {
		conf.Output = c.String("out")
	}
	if c.IsSet("width") {
		conf.Width = c.Int("width")
	}
	if c.IsSet("height") {
		conf.Height = c.Int("height")
	}
	if c.Bool("quiet") {
		conf.Mode = config.ModeIgnore
	}
	return conf, conf.Validate()
}

func newConverter(conf config.Config) (svgdraw.Converter, error) {
	bg, err := conf.BackgroundColor()
	if err != nil {
		return nil, err
	}
	mode, err := conf.ErrorMode()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(conf.Output), ".pdf") {
		return svgpdf.Converter{
			Width: conf.Width, Height: conf.Height, Background: bg,
			Output: conf.Output, ErrorMode: mode,
		}, nil
	}
	enc, err := svgout.ForPath(conf.Output)
	if err != nil {
		return nil, err
	}
	return svgraster.Converter{
		Width: conf.Width, Height: conf.Height, Background: bg,
		Output: conf.Output, Encoder: enc, ErrorMode: mode,
	}, nil
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}
	start := time.Now()

	conf, err := settings(c)
	if err != nil {
		return cli.Exit(console.DecorateText(err.Error(), console.ErrorMessage), 1)
	}
	if conf.Output == svgout.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Exit(console.DecorateText("`-` should be used with a pipe for stdout", console.ErrorMessage), 1)
	}
	conv, err := newConverter(conf)
	if err != nil {
		return cli.Exit(console.DecorateText(err.Error(), console.ErrorMessage), 1)
	}

	source := svgelem.FileDeserializer{Path: c.Args().First()}
	elements, err := source.Deserialize()
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s\n\t%s",
			console.DecorateText("Invalid source file", console.ErrorMessage),
			console.DecorateText(err.Error(), console.DefaultMessage),
		), 1)
	}

	diags, err := conv.Convert(elements)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s\n\t%s",
			console.DecorateText("Error drawing the image", console.ErrorMessage),
			console.DecorateText(err.Error(), console.DefaultMessage),
		), 1)
	}

	// the standard output may hold the image
	if conf.Output != svgout.Stdout {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			console.DecorateText("saved as", console.StatusMessage),
			console.DecorateText(conf.Output, console.SuccessMessage))
	}
	fmt.Fprintf(os.Stderr, "%s (%s)\n", diags, console.FormatTime(time.Since(start)))
	return nil
}
