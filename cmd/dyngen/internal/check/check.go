package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/broady/dyngen/gogen"
	"github.com/broady/dyngen/idl"
)

type Cmd struct {
	Schema string `arg:"" help:"Schema descriptor file (.json, .yaml or .yml)." type:"existingfile"`
	Naming string `help:"Go naming mode to check names against: scoped or local." default:"scoped" enum:"scoped,local"`
}

func (c *Cmd) Run() error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *Cmd) run(stdout, stderr io.Writer) error {
	schema, err := idl.LoadSchema(c.Schema)
	if err != nil {
		return err
	}

	if errs := schema.Validate(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(stderr, "✗ %v\n", err)
		}
		return fmt.Errorf("%s: %d validation errors", schema.Module, len(errs))
	}

	var structs, unions, enums, typedefs int
	var topLevel []string
	for _, td := range schema.Types {
		switch d := td.(type) {
		case *idl.StructDescriptor:
			structs++
			if d.TopLevel {
				topLevel = append(topLevel, d.Name.Qualified())
			}
		case *idl.UnionDescriptor:
			unions++
			if d.TopLevel {
				topLevel = append(topLevel, d.Name.Qualified())
			}
		case *idl.EnumDescriptor:
			enums++
		case *idl.TypedefDescriptor:
			typedefs++
		}
	}
	fmt.Fprintf(stdout, "✓ %s: %d structs, %d unions, %d enums, %d typedefs\n",
		schema.Module, structs, unions, enums, typedefs)

	// A dry run catches Go name collisions the schema itself allows.
	cfg := gogen.DefaultConfig("check")
	cfg.Naming = gogen.NamingMode(c.Naming)
	_, result, err := gogen.GenerateSource(context.Background(), schema, cfg)
	if err != nil {
		return errors.Join(errors.New("generation would fail"), err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s: %s\n", w.Code, w.Message)
	}

	fmt.Fprintf(stdout, "✓ %d conversion functions\n", result.TypesGenerated)
	if len(topLevel) > 0 {
		fmt.Fprintf(stdout, "✓ top-level: %s\n", strings.Join(topLevel, ", "))
	}
	fmt.Fprintln(stdout, "✓ All types resolvable")
	return nil
}
