// Package config assembles the generator configuration from a TOML file,
// a parameter string and command-line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/schema"

	"github.com/broady/dyngen/gogen"
)

// Flags are the generator options that can be given on the command line.
// Zero values leave the configured value alone.
type Flags struct {
	Package    string
	File       string
	Naming     string
	Runtime    string
	NoTypes    bool
	NoComments bool
}

// Resolve builds a validated GeneratorConfig. Later sources override
// earlier ones: defaults, then the TOML file at path (if any), then the
// "key=value&..." parameter string, then flags.
func Resolve(path, param string, flags Flags) (gogen.GeneratorConfig, error) {
	cfg := gogen.DefaultConfig("")

	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if param != "" {
		if err := DecodeParam(param, &cfg); err != nil {
			return cfg, err
		}
	}
	flags.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML config file into cfg. Keys not present in the
// file keep their current value; unknown keys are an error.
func LoadFile(path string, cfg *gogen.GeneratorConfig) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// DecodeParam decodes a parameter string such as
// "package=demo&naming=local&types=false" into cfg.
func DecodeParam(param string, cfg *gogen.GeneratorConfig) error {
	values, err := url.ParseQuery(param)
	if err != nil {
		return fmt.Errorf("param %q: %w", param, err)
	}
	if err := decoder.Decode(cfg, values); err != nil {
		return fmt.Errorf("param %q: %w", param, err)
	}
	return nil
}

func (f Flags) apply(cfg *gogen.GeneratorConfig) {
	if f.Package != "" {
		cfg.Package = f.Package
	}
	if f.File != "" {
		cfg.FileName = f.File
	}
	if f.Naming != "" {
		cfg.Naming = gogen.NamingMode(f.Naming)
	}
	if f.Runtime != "" {
		cfg.RuntimePath = f.Runtime
	}
	if f.NoTypes {
		cfg.EmitTypes = false
	}
	if f.NoComments {
		cfg.EmitComments = false
	}
}

// NewLogger returns a text logger on w at info level, or debug level when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
