package idl

// ArrayDescriptor represents a fixed-length IDL array.
// Multi-dimensional arrays nest: long m[2][3] is Array(Array(Long(), 3), 2).
type ArrayDescriptor struct {
	exprBase

	// Element is the array element type.
	Element TypeDescriptor

	// Length is the number of elements; always > 0 in a valid schema.
	Length int
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

// Array returns an ArrayDescriptor for a fixed-length array.
func Array(element TypeDescriptor, length int) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element, Length: length}
}

// SequenceDescriptor represents a variable-length IDL sequence.
type SequenceDescriptor struct {
	exprBase

	// Element is the sequence element type.
	Element TypeDescriptor

	// Bound is the maximum length, or 0 for unbounded sequences.
	Bound int
}

// Kind returns KindSequence.
func (d *SequenceDescriptor) Kind() DescriptorKind { return KindSequence }

// Sequence returns a SequenceDescriptor for sequence<element>.
func Sequence(element TypeDescriptor) *SequenceDescriptor {
	return &SequenceDescriptor{Element: element}
}

// BoundedSequence returns a SequenceDescriptor for sequence<element, bound>.
func BoundedSequence(element TypeDescriptor, bound int) *SequenceDescriptor {
	return &SequenceDescriptor{Element: element, Bound: bound}
}

// ReferenceDescriptor represents a use of a declared type by name.
// Structures, unions, enums and typedefs referenced from fields or
// branches always appear as references.
type ReferenceDescriptor struct {
	exprBase

	// Target is the referenced type's scoped name.
	Target Identifier
}

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

// Ref returns a ReferenceDescriptor for a qualified name such as "A::B".
func Ref(qualified string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: Ident(qualified)}
}
