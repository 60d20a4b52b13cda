// Package idl defines the type-descriptor tree for interface definition
// language data types. A front end produces these descriptors; generators
// read them to emit marshalling code.
package idl

import "strings"

// ScopeSeparator separates the components of an IDL scoped name.
const ScopeSeparator = "::"

// Identifier is the scoped name of a declared IDL type.
type Identifier struct {
	// Name is the local name, e.g. "Message".
	Name string

	// Scope is the enclosing module path, outermost first.
	// Example: []string{"Messenger"} for Messenger::Message.
	Scope []string
}

// Ident builds an Identifier from a qualified name such as "A::B::C".
func Ident(qualified string) Identifier {
	parts := strings.Split(strings.TrimPrefix(qualified, ScopeSeparator), ScopeSeparator)
	return Identifier{
		Name:  parts[len(parts)-1],
		Scope: parts[:len(parts)-1],
	}
}

// IsZero returns true if the identifier is empty.
func (id Identifier) IsZero() bool {
	return id.Name == "" && len(id.Scope) == 0
}

// Qualified returns the fully scoped name, e.g. "Messenger::Message".
func (id Identifier) Qualified() string {
	if len(id.Scope) == 0 {
		return id.Name
	}
	return strings.Join(id.Scope, ScopeSeparator) + ScopeSeparator + id.Name
}

// Equal reports whether two identifiers name the same type.
func (id Identifier) Equal(other Identifier) bool {
	return id.Qualified() == other.Qualified()
}

// String implements fmt.Stringer.
func (id Identifier) String() string {
	return id.Qualified()
}

// Documentation holds documentation comments attached to IDL declarations.
type Documentation struct {
	// Summary is the first sentence, suitable for one-line comments.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Source represents an IDL source location.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// Warning represents a non-fatal issue encountered while building or
// generating from a schema.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the qualified type that triggered the warning, if any.
	TypeName string
}
