package idl

// EnumDescriptor represents an IDL enumeration. Enumerator ordinals are
// implicit: the i-th member has ordinal i.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Members contains all enumerators in declaration order.
	Members []EnumMember

	// Documentation for this type.
	Documentation Documentation

	// Source location in IDL.
	Source Source
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() DescriptorKind { return KindEnum }

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the enum's source location.
func (d *EnumDescriptor) Src() Source { return d.Source }

func (*EnumDescriptor) sealed() {}

// Ordinal returns the position of the named enumerator, or -1.
func (d *EnumDescriptor) Ordinal(name string) int {
	for i, m := range d.Members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// EnumMember represents a single enumerator.
type EnumMember struct {
	// Name is the enumerator name.
	Name string

	// Documentation for this member.
	Documentation Documentation
}

// Enum is a shorthand constructor for an EnumDescriptor.
func Enum(qualified string, members ...string) *EnumDescriptor {
	d := &EnumDescriptor{Name: Ident(qualified)}
	for _, m := range members {
		d.Members = append(d.Members, EnumMember{Name: m})
	}
	return d
}
