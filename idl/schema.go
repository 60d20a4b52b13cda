package idl

import (
	"fmt"
	"math"
	"sync"
	"unicode/utf8"
)

// Schema represents the complete set of declared types handed over by a
// front end for one generation pass.
type Schema struct {
	// Module is a descriptive name of the compilation unit (usually the
	// IDL file name). Informational only.
	Module string

	// Types contains the declared type descriptors in declaration order.
	// Only Struct, Union, Enum and Typedef descriptors appear here.
	// Generators MUST NOT rely on this ordering: a type may reference a
	// type declared after it.
	Types []TypeDescriptor

	// Warnings contains non-fatal issues encountered by the front end.
	Warnings []Warning
}

// AddType adds a declared type descriptor to the schema.
func (s *Schema) AddType(t TypeDescriptor) {
	s.Types = append(s.Types, t)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindType looks up a declared type by name. Built-in bounded sequences
// are found even when the schema does not declare them.
// Returns nil if not found.
func (s *Schema) FindType(name Identifier) TypeDescriptor {
	q := name.Qualified()
	for _, t := range s.Types {
		if t.TypeName().Qualified() == q {
			return t
		}
	}
	if td, ok := builtinSequenceIndex()[q]; ok {
		return td
	}
	return nil
}

// Lookup looks up a declared type by qualified name.
func (s *Schema) Lookup(qualified string) TypeDescriptor {
	return s.FindType(Ident(qualified))
}

// Resolve follows references and typedefs until it reaches a descriptor
// that is neither. Returns nil for dangling references or typedef cycles.
func (s *Schema) Resolve(td TypeDescriptor) TypeDescriptor {
	seen := make(map[string]bool)
	for td != nil {
		switch d := td.(type) {
		case *ReferenceDescriptor:
			td = s.FindType(d.Target)
		case *TypedefDescriptor:
			q := d.Name.Qualified()
			if seen[q] && q != "" {
				return nil
			}
			seen[q] = true
			td = d.Underlying
		default:
			return td
		}
	}
	return nil
}

// ResolveNamed follows references (but not typedefs) to a declared type.
// Returns nil for expression types and dangling references.
func (s *Schema) ResolveNamed(td TypeDescriptor) TypeDescriptor {
	if ref, ok := td.(*ReferenceDescriptor); ok {
		return s.FindType(ref.Target)
	}
	if td != nil && !td.TypeName().IsZero() {
		return td
	}
	return nil
}

var builtinSequenceIndex = sync.OnceValue(func() map[string]TypeDescriptor {
	m := make(map[string]TypeDescriptor)
	for _, td := range BuiltinSequences() {
		m[td.Name.Qualified()] = td
	}
	return m
})

// ValidationError represents a schema validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the schema for structural issues.
// Returns all validation errors found (not just the first).
func (s *Schema) Validate() []error {
	var errs []*ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	typeNames := make(map[string]bool)
	for _, t := range s.Types {
		if t == nil {
			add("nil_type", "schema contains a nil type descriptor")
			continue
		}
		name := t.TypeName()
		if name.IsZero() {
			add("unnamed_type", "declared %s has no name", t.Kind())
			continue
		}
		q := name.Qualified()
		if typeNames[q] {
			add("duplicate_type", "duplicate type name: %s", q)
		}
		typeNames[q] = true
	}

	for _, t := range s.Types {
		switch d := t.(type) {
		case *StructDescriptor:
			ctx := "struct " + d.Name.Qualified()
			fields := make(map[string]bool)
			for _, f := range d.Fields {
				if f.Name == "" {
					add("unnamed_field", "%s has a field with no name", ctx)
				} else if fields[f.Name] {
					add("duplicate_field", "%s has duplicate field %s", ctx, f.Name)
				}
				fields[f.Name] = true
				errs = append(errs, s.validateExpr(f.Type, ctx+" field "+f.Name)...)
			}
		case *UnionDescriptor:
			errs = append(errs, s.validateUnion(d)...)
		case *EnumDescriptor:
			ctx := "enum " + d.Name.Qualified()
			if len(d.Members) == 0 {
				add("empty_enum", "%s has no enumerators", ctx)
			}
			members := make(map[string]bool)
			for _, m := range d.Members {
				if members[m.Name] {
					add("duplicate_enumerator", "%s has duplicate enumerator %s", ctx, m.Name)
				}
				members[m.Name] = true
			}
		case *TypedefDescriptor:
			ctx := "typedef " + d.Name.Qualified()
			exprErrs := s.validateExpr(d.Underlying, ctx)
			if len(exprErrs) == 0 && s.Resolve(d) == nil {
				add("typedef_cycle", "%s does not resolve to a concrete type", ctx)
			}
			errs = append(errs, exprErrs...)
		}
	}

	var result []error
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}

// validateExpr recursively walks a type expression and checks that all
// references resolve and all shapes are well formed.
func (s *Schema) validateExpr(td TypeDescriptor, context string) []*ValidationError {
	if td == nil {
		return []*ValidationError{{Code: "missing_type", Message: context + " has no type"}}
	}

	var errs []*ValidationError
	switch d := td.(type) {
	case *ReferenceDescriptor:
		if s.FindType(d.Target) == nil {
			errs = append(errs, &ValidationError{
				Code:    "missing_type_reference",
				Message: context + " references unknown type: " + d.Target.Qualified(),
			})
		}
	case *ArrayDescriptor:
		if d.Length <= 0 {
			errs = append(errs, &ValidationError{
				Code:    "invalid_array_length",
				Message: fmt.Sprintf("%s has non-positive array length %d", context, d.Length),
			})
		}
		errs = append(errs, s.validateExpr(d.Element, context)...)
	case *SequenceDescriptor:
		if d.Bound < 0 {
			errs = append(errs, &ValidationError{
				Code:    "invalid_bound",
				Message: fmt.Sprintf("%s has negative sequence bound %d", context, d.Bound),
			})
		}
		errs = append(errs, s.validateExpr(d.Element, context)...)
	case *PrimitiveDescriptor, *StringDescriptor:
		// Leaves
	default:
		errs = append(errs, &ValidationError{
			Code:    "inline_declaration",
			Message: fmt.Sprintf("%s declares a %s inline; use a reference", context, td.Kind()),
		})
	}
	return errs
}

// validateUnion checks the discriminator type and every case label.
func (s *Schema) validateUnion(u *UnionDescriptor) []*ValidationError {
	var errs []*ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}
	ctx := "union " + u.Name.Qualified()

	disc := s.Resolve(u.Discriminator)
	switch d := disc.(type) {
	case *PrimitiveDescriptor:
		if k := d.PrimitiveKind; !k.IsInteger() && !k.IsChar() && k != PrimitiveBoolean {
			add("invalid_discriminator", "%s has %s discriminator; expected integer, boolean, char or enum", ctx, k)
			disc = nil
		}
	case *EnumDescriptor:
	default:
		add("invalid_discriminator", "%s discriminator does not resolve to an integer, boolean, char or enum type", ctx)
		disc = nil
	}

	defaults := 0
	seenLabels := make(map[string]string)
	branches := make(map[string]bool)
	for _, b := range u.Branches {
		bctx := ctx + " branch " + b.Name
		if b.Name == "" {
			add("unnamed_branch", "%s has a branch with no name", ctx)
		} else if branches[b.Name] {
			add("duplicate_branch", "%s has duplicate branch %s", ctx, b.Name)
		}
		branches[b.Name] = true
		if b.Default {
			defaults++
		} else if len(b.Labels) == 0 {
			add("missing_labels", "%s has no case labels and is not the default", bctx)
		}
		for _, label := range b.Labels {
			if disc != nil {
				if err := checkLabel(disc, label); err != nil {
					add("invalid_label", "%s: %v", bctx, err)
					continue
				}
			}
			key := fmt.Sprintf("%T:%v", label, label)
			if prev, ok := seenLabels[key]; ok {
				add("duplicate_label", "%s: label %v already used by branch %s", bctx, label, prev)
				continue
			}
			seenLabels[key] = b.Name
		}
		errs = append(errs, s.validateExpr(b.Type, bctx)...)
	}
	if defaults > 1 {
		add("multiple_defaults", "%s has %d default branches", ctx, defaults)
	}
	return errs
}

// checkLabel verifies that a normalized label value fits the resolved
// discriminator type.
func checkLabel(disc TypeDescriptor, label any) error {
	switch d := disc.(type) {
	case *EnumDescriptor:
		name, ok := label.(string)
		if !ok {
			return fmt.Errorf("label %v is not an enumerator name", label)
		}
		if d.Ordinal(name) < 0 {
			return fmt.Errorf("%s is not an enumerator of %s", name, d.Name.Qualified())
		}
		return nil
	case *PrimitiveDescriptor:
		switch k := d.PrimitiveKind; {
		case k == PrimitiveBoolean:
			if _, ok := label.(bool); !ok {
				return fmt.Errorf("label %v is not a boolean", label)
			}
		case k.IsChar():
			str, ok := label.(string)
			if !ok || utf8.RuneCountInString(str) != 1 {
				return fmt.Errorf("label %v is not a single character", label)
			}
			if k == PrimitiveChar && len(str) != 1 {
				return fmt.Errorf("label %q does not fit in a narrow char", str)
			}
		case k.IsInteger():
			n, ok := label.(int64)
			if !ok {
				return fmt.Errorf("label %v is not an integer", label)
			}
			lo, hi := IntegerRange(k)
			if n < lo || n > hi {
				return fmt.Errorf("label %d out of range for %s", n, k)
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported discriminator %s", disc.Kind())
}

// IntegerRange returns the inclusive bounds of an integer kind that fit in
// an int64. For unsigned long long the upper bound is math.MaxInt64 since
// labels are carried as int64.
func IntegerRange(k PrimitiveKind) (lo, hi int64) {
	switch k {
	case PrimitiveOctet:
		return 0, math.MaxUint8
	case PrimitiveShort:
		return math.MinInt16, math.MaxInt16
	case PrimitiveUShort:
		return 0, math.MaxUint16
	case PrimitiveLong:
		return math.MinInt32, math.MaxInt32
	case PrimitiveULong:
		return 0, math.MaxUint32
	case PrimitiveULongLong:
		return 0, math.MaxInt64
	default:
		return math.MinInt64, math.MaxInt64
	}
}
