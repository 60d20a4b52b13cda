package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/broady/dyngen/cmd/dyngen/internal/check"
	"github.com/broady/dyngen/cmd/dyngen/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate Go conversion code from a schema descriptor file."`
	Check   check.Cmd  `cmd:"" help:"Validate a schema descriptor file without generating code."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("dyngen"),
		kong.Description("Generate Go code that converts IDL-typed values into dynamic objects."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
