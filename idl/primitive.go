package idl

// PrimitiveKind identifies an IDL built-in scalar type.
type PrimitiveKind int

const (
	PrimitiveBoolean PrimitiveKind = iota
	PrimitiveOctet
	PrimitiveShort
	PrimitiveUShort
	PrimitiveLong
	PrimitiveULong
	PrimitiveLongLong
	PrimitiveULongLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveLongDouble
	PrimitiveChar
	PrimitiveWChar
)

var primitiveNames = [...]string{
	PrimitiveBoolean:    "boolean",
	PrimitiveOctet:      "octet",
	PrimitiveShort:      "short",
	PrimitiveUShort:     "unsigned short",
	PrimitiveLong:       "long",
	PrimitiveULong:      "unsigned long",
	PrimitiveLongLong:   "long long",
	PrimitiveULongLong:  "unsigned long long",
	PrimitiveFloat:      "float",
	PrimitiveDouble:     "double",
	PrimitiveLongDouble: "long double",
	PrimitiveChar:       "char",
	PrimitiveWChar:      "wchar",
}

// String returns the IDL spelling of the primitive kind.
func (k PrimitiveKind) String() string {
	if k < 0 || int(k) >= len(primitiveNames) {
		return "unknown"
	}
	return primitiveNames[k]
}

// ParsePrimitiveKind returns the kind for an IDL spelling such as
// "unsigned long".
func ParsePrimitiveKind(s string) (PrimitiveKind, bool) {
	for i, name := range primitiveNames {
		if name == s {
			return PrimitiveKind(i), true
		}
	}
	return 0, false
}

// IsInteger reports whether the kind is an integer type.
// Characters and booleans are not integers.
func (k PrimitiveKind) IsInteger() bool {
	switch k {
	case PrimitiveOctet, PrimitiveShort, PrimitiveUShort, PrimitiveLong,
		PrimitiveULong, PrimitiveLongLong, PrimitiveULongLong:
		return true
	}
	return false
}

// IsFloat reports whether the kind is a floating point type.
func (k PrimitiveKind) IsFloat() bool {
	return k == PrimitiveFloat || k == PrimitiveDouble || k == PrimitiveLongDouble
}

// IsChar reports whether the kind is a narrow or wide character.
func (k PrimitiveKind) IsChar() bool {
	return k == PrimitiveChar || k == PrimitiveWChar
}

// PrimitiveDescriptor represents an IDL built-in scalar.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

// Prim returns a PrimitiveDescriptor of the given kind.
func Prim(kind PrimitiveKind) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: kind}
}

// Convenience constructors for common primitives.

// Boolean returns a PrimitiveDescriptor for boolean.
func Boolean() *PrimitiveDescriptor { return Prim(PrimitiveBoolean) }

// Octet returns a PrimitiveDescriptor for octet.
func Octet() *PrimitiveDescriptor { return Prim(PrimitiveOctet) }

// Short returns a PrimitiveDescriptor for short.
func Short() *PrimitiveDescriptor { return Prim(PrimitiveShort) }

// UShort returns a PrimitiveDescriptor for unsigned short.
func UShort() *PrimitiveDescriptor { return Prim(PrimitiveUShort) }

// Long returns a PrimitiveDescriptor for long.
func Long() *PrimitiveDescriptor { return Prim(PrimitiveLong) }

// ULong returns a PrimitiveDescriptor for unsigned long.
func ULong() *PrimitiveDescriptor { return Prim(PrimitiveULong) }

// LongLong returns a PrimitiveDescriptor for long long.
func LongLong() *PrimitiveDescriptor { return Prim(PrimitiveLongLong) }

// ULongLong returns a PrimitiveDescriptor for unsigned long long.
func ULongLong() *PrimitiveDescriptor { return Prim(PrimitiveULongLong) }

// Float returns a PrimitiveDescriptor for float.
func Float() *PrimitiveDescriptor { return Prim(PrimitiveFloat) }

// Double returns a PrimitiveDescriptor for double.
func Double() *PrimitiveDescriptor { return Prim(PrimitiveDouble) }

// Char returns a PrimitiveDescriptor for char.
func Char() *PrimitiveDescriptor { return Prim(PrimitiveChar) }

// WChar returns a PrimitiveDescriptor for wchar.
func WChar() *PrimitiveDescriptor { return Prim(PrimitiveWChar) }

// StringDescriptor represents an IDL string or wstring.
type StringDescriptor struct {
	exprBase

	// Wide is true for wstring.
	Wide bool

	// Bound is the maximum length, or 0 for unbounded strings.
	// The bound is informational; conversion code does not enforce it.
	Bound int
}

// Kind returns KindString.
func (d *StringDescriptor) Kind() DescriptorKind { return KindString }

// String returns a StringDescriptor for an unbounded narrow string.
func String() *StringDescriptor {
	return &StringDescriptor{}
}

// WString returns a StringDescriptor for an unbounded wide string.
func WString() *StringDescriptor {
	return &StringDescriptor{Wide: true}
}

// BoundedString returns a StringDescriptor for string<bound>.
func BoundedString(bound int) *StringDescriptor {
	return &StringDescriptor{Bound: bound}
}
