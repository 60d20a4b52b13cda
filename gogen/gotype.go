package gogen

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/broady/dyngen/idl"
)

// primitiveGoTypes is the Go type of each IDL primitive.
var primitiveGoTypes = [...]string{
	idl.PrimitiveBoolean:    "bool",
	idl.PrimitiveOctet:      "uint8",
	idl.PrimitiveShort:      "int16",
	idl.PrimitiveUShort:     "uint16",
	idl.PrimitiveLong:       "int32",
	idl.PrimitiveULong:      "uint32",
	idl.PrimitiveLongLong:   "int64",
	idl.PrimitiveULongLong:  "uint64",
	idl.PrimitiveFloat:      "float32",
	idl.PrimitiveDouble:     "float64",
	idl.PrimitiveLongDouble: "float64",
	idl.PrimitiveChar:       "byte",
	idl.PrimitiveWChar:      "rune",
}

// goName returns the Go identifier of a declared type.
func (g *fileGenerator) goName(id idl.Identifier) string {
	return goTypeName(id, g.cfg.Naming)
}

// goType returns the Go type expression for a type descriptor.
func (g *fileGenerator) goType(td idl.TypeDescriptor) (string, error) {
	switch d := td.(type) {
	case *idl.PrimitiveDescriptor:
		if k := d.PrimitiveKind; k >= 0 && int(k) < len(primitiveGoTypes) {
			return primitiveGoTypes[k], nil
		}
		return "", fmt.Errorf("unknown primitive kind %d", d.PrimitiveKind)
	case *idl.StringDescriptor:
		if d.Wide {
			return "[]rune", nil
		}
		return "string", nil
	case *idl.ArrayDescriptor:
		elem, err := g.goType(d.Element)
		if err != nil {
			return "", err
		}
		return "[" + strconv.Itoa(d.Length) + "]" + elem, nil
	case *idl.SequenceDescriptor:
		elem, err := g.goType(d.Element)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case *idl.ReferenceDescriptor:
		if g.schema.FindType(d.Target) == nil {
			return "", fmt.Errorf("unknown type %s", d.Target.Qualified())
		}
		return g.goName(d.Target), nil
	case nil:
		return "", fmt.Errorf("missing type")
	default:
		return "", fmt.Errorf("%s cannot be used as a type expression", td.Kind())
	}
}

// labelLiteral renders a union case label as a Go constant expression of
// the discriminator type.
func (g *fileGenerator) labelLiteral(disc idl.TypeDescriptor, label any) (string, error) {
	switch d := g.schema.Resolve(disc).(type) {
	case *idl.EnumDescriptor:
		name, ok := label.(string)
		if !ok || d.Ordinal(name) < 0 {
			return "", fmt.Errorf("label %v is not an enumerator of %s", label, d.Name.Qualified())
		}
		return g.enumConst(d, name), nil
	case *idl.PrimitiveDescriptor:
		switch v := label.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case string:
			if r, size := utf8.DecodeRuneInString(v); d.PrimitiveKind.IsChar() && size == len(v) && size > 0 {
				return strconv.QuoteRune(r), nil
			}
		}
	}
	return "", fmt.Errorf("label %v does not fit discriminator", label)
}

// enumConst is the Go constant name of one enumerator.
func (g *fileGenerator) enumConst(e *idl.EnumDescriptor, member string) string {
	return g.goName(e.Name) + "_" + member
}

// enumTable is the name of the enumerator name table of e.
func (g *fileGenerator) enumTable(e *idl.EnumDescriptor) string {
	return g.goName(e.Name) + "Names"
}
