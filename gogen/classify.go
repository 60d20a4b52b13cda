package gogen

import "github.com/broady/dyngen/idl"

// Category is the conversion strategy for a type descriptor.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPrimitive
	CategoryEnum
	CategoryNarrowString
	CategoryWideString
	CategoryArray
	CategorySequence
	CategoryBuiltinSequence
	CategoryStruct
	CategoryUnion
)

var categoryNames = [...]string{
	CategoryUnknown:         "unknown",
	CategoryPrimitive:       "primitive",
	CategoryEnum:            "enum",
	CategoryNarrowString:    "string",
	CategoryWideString:      "wstring",
	CategoryArray:           "array",
	CategorySequence:        "sequence",
	CategoryBuiltinSequence: "builtin sequence",
	CategoryStruct:          "struct",
	CategoryUnion:           "union",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// IsScalar reports whether values of the category convert to a single leaf.
func (c Category) IsScalar() bool {
	switch c {
	case CategoryPrimitive, CategoryEnum, CategoryNarrowString, CategoryWideString:
		return true
	}
	return false
}

// Classify determines the conversion category of td. References and
// typedefs are followed to the actual type, except that a reference to a
// typedef named like CORBA::LongSeq classifies as a built-in sequence.
// Dangling references and typedef cycles yield CategoryUnknown.
func Classify(schema *idl.Schema, td idl.TypeDescriptor) Category {
	if isBuiltinSequence(schema, td) {
		return CategoryBuiltinSequence
	}
	switch d := schema.Resolve(td).(type) {
	case *idl.PrimitiveDescriptor:
		return CategoryPrimitive
	case *idl.EnumDescriptor:
		return CategoryEnum
	case *idl.StringDescriptor:
		if d.Wide {
			return CategoryWideString
		}
		return CategoryNarrowString
	case *idl.ArrayDescriptor:
		return CategoryArray
	case *idl.SequenceDescriptor:
		return CategorySequence
	case *idl.StructDescriptor:
		return CategoryStruct
	case *idl.UnionDescriptor:
		return CategoryUnion
	default:
		return CategoryUnknown
	}
}

// isBuiltinSequence reports whether td names a built-in bounded sequence
// typedef, either directly or through a reference.
func isBuiltinSequence(schema *idl.Schema, td idl.TypeDescriptor) bool {
	if ref, ok := td.(*idl.ReferenceDescriptor); ok {
		td = schema.FindType(ref.Target)
	}
	tdef, ok := td.(*idl.TypedefDescriptor)
	if !ok || !idl.IsBuiltinSequenceName(tdef.Name.Qualified()) {
		return false
	}
	_, ok = schema.Resolve(tdef).(*idl.SequenceDescriptor)
	return ok
}

// conversionUnit returns the declared type whose generated Convert
// function handles values of td, or nil when td is converted inline.
// Structures, unions and user typedef'd sequences and arrays have units.
// Typedefs of any other type are Go aliases and are looked through.
func conversionUnit(schema *idl.Schema, td idl.TypeDescriptor) idl.TypeDescriptor {
	seen := make(map[string]bool)
	for {
		ref, ok := td.(*idl.ReferenceDescriptor)
		if !ok {
			return nil
		}
		q := ref.Target.Qualified()
		if seen[q] {
			return nil
		}
		seen[q] = true

		switch d := schema.FindType(ref.Target).(type) {
		case *idl.StructDescriptor, *idl.UnionDescriptor:
			return d
		case *idl.TypedefDescriptor:
			if isBuiltinSequence(schema, d) {
				return nil
			}
			switch d.Underlying.(type) {
			case *idl.SequenceDescriptor, *idl.ArrayDescriptor:
				return d
			}
			td = d.Underlying
		default:
			return nil
		}
	}
}

// hasUnit reports whether a declared type gets its own Convert function.
func hasUnit(schema *idl.Schema, td idl.TypeDescriptor) bool {
	switch d := td.(type) {
	case *idl.StructDescriptor, *idl.UnionDescriptor:
		return true
	case *idl.TypedefDescriptor:
		if isBuiltinSequence(schema, d) {
			return false
		}
		switch d.Underlying.(type) {
		case *idl.SequenceDescriptor, *idl.ArrayDescriptor:
			return true
		}
	}
	return false
}
