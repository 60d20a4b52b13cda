package gen

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/broady/dyngen/cmd/dyngen/internal/config"
	"github.com/broady/dyngen/gogen"
	"github.com/broady/dyngen/idl"
	"github.com/broady/dyngen/sink"
)

type Cmd struct {
	Schema     string `arg:"" help:"Schema descriptor file (.json, .yaml or .yml)." type:"existingfile"`
	Out        string `help:"Output directory, or - to write to stdout." short:"o" default:"."`
	Package    string `help:"Go package name of the generated file." short:"p"`
	File       string `help:"Generated file name (default: dyngen_gen.go)."`
	Naming     string `help:"Go naming mode: scoped or local."`
	Runtime    string `help:"Import path of the dyngen runtime package."`
	NoTypes    bool   `help:"Do not emit Go type declarations."`
	NoComments bool   `help:"Do not emit comments."`
	Param      string `help:"Generator parameters as key=value pairs joined by &."`
	Config     string `help:"TOML config file." short:"c" type:"existingfile"`
	Verbose    bool   `help:"Log every generated conversion." short:"v"`
}

func (c *Cmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.run(ctx, os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Resolve(c.Config, c.Param, config.Flags{
		Package:    c.Package,
		File:       c.File,
		Naming:     c.Naming,
		Runtime:    c.Runtime,
		NoTypes:    c.NoTypes,
		NoComments: c.NoComments,
	})
	if err != nil {
		return err
	}

	schema, err := idl.LoadSchema(c.Schema)
	if err != nil {
		return err
	}

	var out sink.OutputSink
	if c.Out == "-" {
		out = sink.NewWriterSink(stdout)
	} else {
		out = sink.NewFilesystemSink(c.Out)
	}

	result, err := (&gogen.GoGenerator{}).Generate(ctx, schema, gogen.GenerateOptions{
		Sink:   out,
		Config: cfg,
		Logger: config.NewLogger(stderr, c.Verbose),
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s: %s\n", w.Code, w.Message)
	}
	if c.Out != "-" {
		for _, f := range result.Files {
			fmt.Fprintln(stdout, filepath.Join(c.Out, f.Path))
		}
	}
	return nil
}
