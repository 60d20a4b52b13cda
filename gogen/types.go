// Package gogen generates Go conversion code from IDL type descriptors.
//
// For every structure, union and typedef'd sequence or array in a schema
// it emits a function that copies a Go value of that type into the
// dyngen object model, plus an optional set of Go type declarations that
// follow the IDL-to-Go mapping and a RegisterConverters function for the
// top-level types.
package gogen

import (
	"context"
	"log/slog"

	"github.com/broady/dyngen/idl"
	"github.com/broady/dyngen/sink"
)

// Generator transforms IDL type descriptors into Go source code.
type Generator interface {
	// Name returns the generator's identifier.
	Name() string

	// Generate produces source code for the given schema.
	Generate(ctx context.Context, schema *idl.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains generator configuration.
	Config GeneratorConfig

	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// TypesGenerated is the number of conversion functions emitted.
	TypesGenerated int

	// TopLevel lists the qualified names registered by RegisterConverters.
	TopLevel []string

	// Warnings contains non-fatal issues encountered.
	Warnings []idl.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}
