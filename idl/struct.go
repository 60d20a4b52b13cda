package idl

// StructDescriptor represents an IDL structure.
type StructDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Fields contains all fields in declaration order.
	Fields []FieldDescriptor

	// TopLevel marks a distributable data type (a topic type). Converters
	// for top-level types are also registered by name at run time.
	TopLevel bool

	// Documentation for this type.
	Documentation Documentation

	// Source location in IDL.
	Source Source
}

// Kind returns KindStruct.
func (d *StructDescriptor) Kind() DescriptorKind { return KindStruct }

// TypeName returns the struct's name.
func (d *StructDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the struct's documentation.
func (d *StructDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the struct's source location.
func (d *StructDescriptor) Src() Source { return d.Source }

func (*StructDescriptor) sealed() {}

// FieldDescriptor represents a single structure member.
type FieldDescriptor struct {
	// Name is the IDL member name. It is also the property key in the
	// converted object.
	Name string

	// Type is the member's type descriptor.
	Type TypeDescriptor

	// Documentation for this field.
	Documentation Documentation
}

// Field is a shorthand constructor for FieldDescriptor.
func Field(name string, typ TypeDescriptor) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: typ}
}
