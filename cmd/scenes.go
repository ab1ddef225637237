package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/rv42/go-ray-caster/pkg/scene"
)

// ListScenes prints a table of the built-in demo scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Objects", "Lights", "Description"})
	for _, info := range scene.Builtins() {
		table.Append([]string{
			fmt.Sprintf("%d", info.ID),
			info.Name,
			fmt.Sprintf("%d", info.Objects),
			fmt.Sprintf("%d", info.Lights),
			info.Description,
		})
	}
	table.Render()

	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
