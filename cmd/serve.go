package cmd

import (
	"github.com/urfave/cli"

	"github.com/rv42/go-ray-caster/web/server"
)

// Serve starts the live render view web server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.New(ctx.Int("port"))
	logger.Noticef("visit http://localhost:%d to render scenes", ctx.Int("port"))
	return srv.Start()
}
