package idl

// UnionDescriptor represents an IDL discriminated union.
type UnionDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Discriminator is the switch type: an integer, boolean or char
	// primitive, or a reference to an enum (possibly through typedefs).
	Discriminator TypeDescriptor

	// Branches in declaration order.
	Branches []BranchDescriptor

	// TopLevel marks a distributable data type, as for structures.
	TopLevel bool

	// Documentation for this type.
	Documentation Documentation

	// Source location in IDL.
	Source Source
}

// Kind returns KindUnion.
func (d *UnionDescriptor) Kind() DescriptorKind { return KindUnion }

// TypeName returns the union's name.
func (d *UnionDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the union's documentation.
func (d *UnionDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the union's source location.
func (d *UnionDescriptor) Src() Source { return d.Source }

func (*UnionDescriptor) sealed() {}

// DefaultBranch returns the branch marked default, or nil.
func (d *UnionDescriptor) DefaultBranch() *BranchDescriptor {
	for i := range d.Branches {
		if d.Branches[i].Default {
			return &d.Branches[i]
		}
	}
	return nil
}

// BranchDescriptor represents one case of a union.
type BranchDescriptor struct {
	// Name is the branch member name, used as the property key.
	Name string

	// Labels are the case label values selecting this branch.
	// Providers normalize label values to exactly one of: int64 (integer
	// discriminators), bool, string (enumerator name for enum
	// discriminators, single character for char discriminators).
	Labels []any

	// Default is true for the branch selected when no label matches.
	// A default branch may also carry explicit labels.
	Default bool

	// Type is the branch payload type.
	Type TypeDescriptor

	// Documentation for this branch.
	Documentation Documentation
}

// Branch is a shorthand constructor for a labeled BranchDescriptor.
// Integer labels of any Go integer type are normalized to int64.
func Branch(name string, typ TypeDescriptor, labels ...any) BranchDescriptor {
	norm := make([]any, len(labels))
	for i, l := range labels {
		norm[i] = normalizeLabel(l)
	}
	return BranchDescriptor{Name: name, Type: typ, Labels: norm}
}

func normalizeLabel(l any) any {
	switch v := l.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	default:
		return l
	}
}

// DefaultCase is a shorthand constructor for a default BranchDescriptor.
func DefaultCase(name string, typ TypeDescriptor) BranchDescriptor {
	return BranchDescriptor{Name: name, Type: typ, Default: true}
}
