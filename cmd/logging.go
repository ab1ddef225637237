package cmd

import (
	"github.com/urfave/cli"

	"github.com/rv42/go-ray-caster/log"
)

var logger = log.New("raycaster")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
