package gogen

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NamingMode selects how IDL scoped names become Go identifiers.
type NamingMode string

const (
	// NamingScoped joins the scope and the local name with underscores:
	// Messenger::Message becomes Messenger_Message.
	NamingScoped NamingMode = "scoped"

	// NamingLocal uses the local name only: Messenger::Message becomes
	// Message. Distinct IDL types with the same local name then collide
	// and generation fails.
	NamingLocal NamingMode = "local"
)

// DefaultRuntimePath is the import path of the runtime package that
// generated code links against.
const DefaultRuntimePath = "github.com/broady/dyngen"

// DefaultFileName is the name of the generated file.
const DefaultFileName = "dyngen_gen.go"

// GeneratorConfig controls code generation. The struct tags let the same
// type be filled from a TOML file and from a "key=value&..." parameter
// string.
type GeneratorConfig struct {
	// Package is the Go package name of the generated file.
	Package string `toml:"package" schema:"package" validate:"required,goident"`

	// FileName is the generated file name (default: dyngen_gen.go).
	FileName string `toml:"file" schema:"file" validate:"omitempty,endswith=.go,excludesall=/\\"`

	// Naming selects the Go naming mode (default: scoped).
	Naming NamingMode `toml:"naming" schema:"naming" validate:"omitempty,oneof=scoped local"`

	// EmitTypes emits Go type declarations for the schema. When false
	// the types must be provided by hand and follow the same mapping.
	EmitTypes bool `toml:"types" schema:"types"`

	// EmitComments carries IDL documentation into the generated code.
	EmitComments bool `toml:"comments" schema:"comments"`

	// RuntimePath is the import path of the runtime package
	// (default: github.com/broady/dyngen).
	RuntimePath string `toml:"runtime" schema:"runtime"`
}

// DefaultConfig returns the configuration used when no options are given:
// scoped naming with type declarations and comments.
func DefaultConfig(pkg string) GeneratorConfig {
	return GeneratorConfig{
		Package:      pkg,
		FileName:     DefaultFileName,
		Naming:       NamingScoped,
		EmitTypes:    true,
		EmitComments: true,
		RuntimePath:  DefaultRuntimePath,
	}
}

// withDefaults fills empty fields. Boolean fields are left as given.
func (c GeneratorConfig) withDefaults() GeneratorConfig {
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.Naming == "" {
		c.Naming = NamingScoped
	}
	if c.RuntimePath == "" {
		c.RuntimePath = DefaultRuntimePath
	}
	return c
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return token.IsIdentifier(s) && s != "_"
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration and reports every invalid field.
func (c GeneratorConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msgs = append(msgs, ve.Field()+": "+describe(ve))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "goident":
		return fmt.Sprintf("%q is not a valid Go package name", ve.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "endswith":
		return fmt.Sprintf("must end with %s", ve.Param())
	case "excludesall":
		return "contains invalid characters"
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
