package idl

import "strings"

// Reserved naming pattern for the predefined bounded sequences
// (CORBA::LongSeq, CORBA::StringSeq, ...).
const (
	BuiltinSequencePrefix = "CORBA" + ScopeSeparator
	BuiltinSequenceSuffix = "Seq"
)

// TypedefDescriptor represents an IDL typedef.
type TypedefDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Underlying is the aliased type.
	Underlying TypeDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source location in IDL.
	Source Source
}

// Kind returns KindTypedef.
func (d *TypedefDescriptor) Kind() DescriptorKind { return KindTypedef }

// TypeName returns the typedef's name.
func (d *TypedefDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the typedef's documentation.
func (d *TypedefDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the typedef's source location.
func (d *TypedefDescriptor) Src() Source { return d.Source }

func (*TypedefDescriptor) sealed() {}

// Typedef is a shorthand constructor for a TypedefDescriptor.
func Typedef(qualified string, underlying TypeDescriptor) *TypedefDescriptor {
	return &TypedefDescriptor{Name: Ident(qualified), Underlying: underlying}
}

// IsBuiltinSequenceName reports whether a qualified name follows the
// reserved built-in bounded sequence pattern.
func IsBuiltinSequenceName(qualified string) bool {
	return strings.HasPrefix(qualified, BuiltinSequencePrefix) &&
		strings.HasSuffix(qualified, BuiltinSequenceSuffix) &&
		len(qualified) > len(BuiltinSequencePrefix)+len(BuiltinSequenceSuffix)
}

// BuiltinSequences returns typedefs for the predefined sequences of
// primitive and string types. Schemas may reference them without
// declaring them; Schema.Resolve falls back to this set.
func BuiltinSequences() []*TypedefDescriptor {
	elems := []struct {
		name string
		typ  TypeDescriptor
	}{
		{"Boolean", Boolean()},
		{"Octet", Octet()},
		{"Short", Short()},
		{"UShort", UShort()},
		{"Long", Long()},
		{"ULong", ULong()},
		{"LongLong", LongLong()},
		{"ULongLong", ULongLong()},
		{"Float", Float()},
		{"Double", Double()},
		{"LongDouble", Prim(PrimitiveLongDouble)},
		{"Char", Char()},
		{"WChar", WChar()},
		{"String", String()},
		{"WString", WString()},
	}
	out := make([]*TypedefDescriptor, 0, len(elems))
	for _, e := range elems {
		out = append(out, Typedef(BuiltinSequencePrefix+e.name+BuiltinSequenceSuffix, Sequence(e.typ)))
	}
	return out
}
