package idl

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	// Declared type descriptors (appear in Schema.Types)
	KindStruct  DescriptorKind = iota // Structure with ordered fields
	KindUnion                         // Discriminated union
	KindEnum                          // Enumeration
	KindTypedef                       // typedef T Name

	// Expression type descriptors (appear nested in fields/branches)
	KindPrimitive // Built-in scalar
	KindString    // Narrow or wide string
	KindArray     // Fixed-length array
	KindSequence  // Variable-length sequence
	KindReference // Reference to a declared type
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindUnion:
		return "Union"
	case KindEnum:
		return "Enum"
	case KindTypedef:
		return "Typedef"
	case KindPrimitive:
		return "Primitive"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindSequence:
		return "Sequence"
	case KindReference:
		return "Reference"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
// Descriptors are produced by an IDL front end and are never mutated
// afterwards.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// TypeName returns the scoped name of a declared type.
	// Returns zero value for expression types.
	TypeName() Identifier

	// Doc returns associated documentation comments.
	// Returns zero value for expression types.
	Doc() Documentation

	// Src returns the IDL source location.
	// Returns zero value for expression types.
	Src() Source

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// exprBase provides zero-value implementations of TypeDescriptor methods
// for expression type descriptors that don't have names, docs, or source.
type exprBase struct{}

func (exprBase) TypeName() Identifier { return Identifier{} }
func (exprBase) Doc() Documentation   { return Documentation{} }
func (exprBase) Src() Source          { return Source{} }
func (exprBase) sealed()              {}
