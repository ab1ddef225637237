package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/rv42/go-ray-caster/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-ray-caster"
	app.Usage = "render scenes of geometric primitives by ray casting"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image",
			Description: `
Cast one ray per pixel through a built-in scene and write the image as
plain PPM (P3) or PNG. With no --output the image goes to stdout.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "scene",
					Value: 1,
					Usage: "built-in scene id (see the scenes command)",
				},
				cli.Float64Flag{
					Name:  "brightness",
					Value: 1.0,
					Usage: "light intensity multiplier",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 45.0,
					Usage: "vertical field of view in degrees",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "image filename, stdout if empty",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "output format: ppm or png (inferred from --output if empty)",
				},
				cli.IntFlag{
					Name:  "aa",
					Usage: "anti-aliasing sample count (accepted, not applied)",
				},
				cli.BoolFlag{
					Name:  "reflect",
					Usage: "enable mirror reflection (accepted, not applied)",
				},
				cli.BoolFlag{
					Name:  "mt",
					Usage: "enable multithreaded rendering (accepted, not applied)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in demo scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve an interactive render view over http",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
