package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/settrie/pkg/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c, cli.Options()...)

	logger, err := cli.NewLogger(c.Verbose)
	ctx.FatalIfErrorf(err)
	defer logger.Sync()

	ctx.FatalIfErrorf(ctx.Run(&cli.Context{Logger: logger, Out: os.Stdout}))
}
