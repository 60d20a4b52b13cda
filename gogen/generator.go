package gogen

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"golang.org/x/tools/imports"

	"github.com/broady/dyngen/idl"
)

// GoGenerator emits Go conversion code. It is stateless and safe to reuse.
type GoGenerator struct{}

var _ Generator = (*GoGenerator)(nil)

// Name returns "go".
func (*GoGenerator) Name() string { return "go" }

// Generate validates the schema, emits one Go file for it and writes the
// file to opts.Sink.
func (*GoGenerator) Generate(ctx context.Context, schema *idl.Schema, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Sink == nil {
		return nil, errors.New("GenerateOptions.Sink is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	src, result, err := generate(ctx, schema, opts.Config, logger)
	if err != nil {
		return nil, err
	}

	name := opts.Config.withDefaults().FileName
	if err := opts.Sink.WriteFile(ctx, name, src); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}
	result.Files = append(result.Files, OutputFile{Path: name, Size: int64(len(src))})

	logger.Info("generation complete",
		slog.String("module", schema.Module),
		slog.String("file", name),
		slog.Int("types", result.TypesGenerated),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

// GenerateSource returns the generated file content without writing it.
func GenerateSource(ctx context.Context, schema *idl.Schema, cfg GeneratorConfig) ([]byte, *GenerateResult, error) {
	return generate(ctx, schema, cfg, slog.Default())
}

// fileGenerator holds the state of one generation pass.
type fileGenerator struct {
	schema *idl.Schema
	cfg    GeneratorConfig
	logger *slog.Logger

	decls bytes.Buffer
	defs  bytes.Buffer

	topLevel []idl.TypeDescriptor
	units    int
}

func generate(ctx context.Context, schema *idl.Schema, cfg GeneratorConfig, logger *slog.Logger) ([]byte, *GenerateResult, error) {
	if schema == nil {
		return nil, nil, errors.New("schema is nil")
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if errs := schema.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("invalid schema %s: %w", schema.Module, errors.Join(errs...))
	}

	g := &fileGenerator{schema: schema, cfg: cfg, logger: logger}
	if err := g.checkNames(); err != nil {
		return nil, nil, err
	}

	for _, td := range schema.Types {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if err := g.generateType(td); err != nil {
			return nil, nil, err
		}
	}
	if cfg.EmitTypes {
		if err := g.declareBuiltins(); err != nil {
			return nil, nil, err
		}
	}

	raw := g.assemble()
	// assemble already wrote the only import.
	src, err := imports.Process(cfg.FileName, raw, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("format generated code: %w", err)
	}

	result := &GenerateResult{
		TypesGenerated: g.units,
		Warnings:       append(slices.Clone(schema.Warnings), g.warnings()...),
	}
	for _, td := range g.topLevel {
		result.TopLevel = append(result.TopLevel, td.TypeName().Qualified())
	}
	return src, result, nil
}

// generateType runs the declaration emitter and the matching unit
// generator for one declared type.
func (g *fileGenerator) generateType(td idl.TypeDescriptor) error {
	c := g.newContext(td.TypeName())
	if err := c.emitDecl(td); err != nil {
		return err
	}

	var err error
	switch d := td.(type) {
	case *idl.StructDescriptor:
		err = c.generateStruct(d)
	case *idl.UnionDescriptor:
		err = c.generateUnion(d)
	case *idl.TypedefDescriptor:
		err = c.generateTypedef(d)
	case *idl.EnumDescriptor:
		// Enumerations convert inline through their name table.
		return nil
	default:
		return fmt.Errorf("unsupported declared type kind: %s", td.Kind())
	}
	if err != nil {
		return err
	}
	if hasUnit(g.schema, td) {
		g.units++
		g.logger.Debug("generated conversion",
			slog.String("type", td.TypeName().Qualified()),
			slog.String("func", g.unitFunc(td)))
	}
	return nil
}

// register records a top-level type for RegisterConverters.
func (g *fileGenerator) register(td idl.TypeDescriptor) {
	g.topLevel = append(g.topLevel, td)
}

// checkNames rejects schemas in which two declared types map to the same
// Go identifier, as can happen under local naming, or in which a type
// takes the name of the runtime import or of RegisterConverters.
func (g *fileGenerator) checkNames() error {
	owners := make(map[string]string)
	var errs []error
	claim := func(goName, q string) {
		if prev, ok := owners[goName]; ok && prev != q {
			errs = append(errs, fmt.Errorf("%s and %s both map to Go name %s", prev, q, goName))
			return
		}
		owners[goName] = q
	}
	for _, td := range g.schema.Types {
		goName := g.goName(td.TypeName())
		q := td.TypeName().Qualified()
		claim(goName, q)
		switch d := td.(type) {
		case *idl.EnumDescriptor:
			claim(g.enumTable(d), q)
			for _, m := range d.Members {
				claim(g.enumConst(d, m.Name), q)
			}
		}
		if hasUnit(g.schema, td) {
			claim(g.unitFunc(td), q)
		}
	}
	if g.cfg.EmitTypes {
		for _, b := range g.referencedBuiltins() {
			claim(g.goName(b.Name), b.Name.Qualified())
		}
	}
	claim("RegisterConverters", "the generated registration function")
	claim(rt, "the runtime package import")
	return errors.Join(errs...)
}

// referencedBuiltins returns the built-in sequence typedefs used by the
// schema but not declared in it, sorted by name.
func (g *fileGenerator) referencedBuiltins() []*idl.TypedefDescriptor {
	found := make(map[string]*idl.TypedefDescriptor)
	var walk func(td idl.TypeDescriptor)
	walk = func(td idl.TypeDescriptor) {
		switch d := td.(type) {
		case *idl.ReferenceDescriptor:
			q := d.Target.Qualified()
			if !idl.IsBuiltinSequenceName(q) || found[q] != nil {
				return
			}
			if declared := g.declared(q); declared {
				return
			}
			if t, ok := g.schema.FindType(d.Target).(*idl.TypedefDescriptor); ok {
				found[q] = t
			}
		case *idl.ArrayDescriptor:
			walk(d.Element)
		case *idl.SequenceDescriptor:
			walk(d.Element)
		}
	}
	for _, td := range g.schema.Types {
		switch d := td.(type) {
		case *idl.StructDescriptor:
			for _, f := range d.Fields {
				walk(f.Type)
			}
		case *idl.UnionDescriptor:
			walk(d.Discriminator)
			for _, b := range d.Branches {
				walk(b.Type)
			}
		case *idl.TypedefDescriptor:
			walk(d.Underlying)
		}
	}

	out := make([]*idl.TypedefDescriptor, 0, len(found))
	for _, t := range found {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *idl.TypedefDescriptor) int {
		return cmp.Compare(a.Name.Qualified(), b.Name.Qualified())
	})
	return out
}

func (g *fileGenerator) declared(qualified string) bool {
	for _, td := range g.schema.Types {
		if td.TypeName().Qualified() == qualified {
			return true
		}
	}
	return false
}

// declareBuiltins emits type declarations for referenced built-in
// sequences the schema does not declare itself.
func (g *fileGenerator) declareBuiltins() error {
	for _, b := range g.referencedBuiltins() {
		if err := g.newContext(b.Name).emitTypedefType(b); err != nil {
			return err
		}
	}
	return nil
}

// warnings reports generation-time observations about the schema.
func (g *fileGenerator) warnings() []idl.Warning {
	var out []idl.Warning
	composite := false
	for _, td := range g.schema.Types {
		switch td.(type) {
		case *idl.StructDescriptor, *idl.UnionDescriptor:
			composite = true
		}
	}
	if composite && len(g.topLevel) == 0 {
		out = append(out, idl.Warning{
			Code:    "no_top_level_types",
			Message: "no structure or union is marked top-level; RegisterConverters registers nothing",
		})
	}
	return out
}

// assemble concatenates the header, the declarations, the conversion
// functions and RegisterConverters into one unformatted Go file.
func (g *fileGenerator) assemble() []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by dyngen. DO NOT EDIT.\n")
	if g.schema.Module != "" {
		fmt.Fprintf(&buf, "// source: %s\n", g.schema.Module)
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.cfg.Package)
	if g.cfg.RuntimePath == DefaultRuntimePath {
		fmt.Fprintf(&buf, "import %s\n\n", strconv.Quote(g.cfg.RuntimePath))
	} else {
		fmt.Fprintf(&buf, "import %s %s\n\n", rt, strconv.Quote(g.cfg.RuntimePath))
	}

	buf.Write(g.decls.Bytes())
	buf.Write(g.defs.Bytes())
	g.emitRegistration(&buf)
	return buf.Bytes()
}

// emitRegistration writes RegisterConverters, which registers a
// converter for every top-level type under its IDL qualified name.
func (g *fileGenerator) emitRegistration(buf *bytes.Buffer) {
	if g.cfg.EmitComments {
		buf.WriteString("// RegisterConverters registers a converter for each top-level type.\n")
		buf.WriteString("// It stops at the first name that is already registered.\n")
	}
	fmt.Fprintf(buf, "func RegisterConverters(r *%s.Registry) error {\n", rt)
	for _, td := range g.topLevel {
		fmt.Fprintf(buf, "\tif err := r.Register(%s, %s.ConverterFor(%s)); err != nil {\n",
			strconv.Quote(td.TypeName().Qualified()), rt, g.unitFunc(td))
		buf.WriteString("\t\treturn err\n\t}\n")
	}
	buf.WriteString("\treturn nil\n}\n")
}
