package gogen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/broady/dyngen/idl"
)

// emitDecl writes the declarations stream entries for one declared type.
// Enumerator name tables are always written because conversion functions
// read them; Go type declarations only when EmitTypes is set.
func (c *emitContext) emitDecl(td idl.TypeDescriptor) error {
	if e, ok := td.(*idl.EnumDescriptor); ok {
		c.emitEnumTable(e)
	}
	if !c.gen.cfg.EmitTypes {
		return nil
	}
	switch d := td.(type) {
	case *idl.EnumDescriptor:
		c.emitEnumType(d)
	case *idl.StructDescriptor:
		return c.emitStructType(d)
	case *idl.UnionDescriptor:
		return c.emitUnionType(d)
	case *idl.TypedefDescriptor:
		return c.emitTypedefType(d)
	}
	return nil
}

func (c *emitContext) decl(format string, args ...any) {
	fmt.Fprintf(c.decls, format, args...)
	c.decls.WriteByte('\n')
}

// docComment writes IDL documentation as a Go comment, or fallback when
// the declaration is undocumented.
func (c *emitContext) docComment(indent string, doc idl.Documentation, fallback string) {
	if !c.gen.cfg.EmitComments {
		return
	}
	text := doc.Body
	if text == "" {
		text = fallback
	}
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			c.decl("%s//", indent)
			continue
		}
		c.decl("%s// %s", indent, l)
	}
}

func (c *emitContext) emitEnumTable(e *idl.EnumDescriptor) {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = strconv.Quote(m.Name)
	}
	if c.gen.cfg.EmitComments {
		c.decl("// %s holds the enumerator names of %s, indexed by ordinal.", c.gen.enumTable(e), e.Name.Qualified())
	}
	c.decl("var %s = [...]string{%s}", c.gen.enumTable(e), strings.Join(names, ", "))
	c.decl("")
}

func (c *emitContext) emitEnumType(e *idl.EnumDescriptor) {
	name := c.gen.goName(e.Name)
	c.docComment("", e.Documentation, fmt.Sprintf("%s is the IDL enum %s.", name, e.Name.Qualified()))
	c.decl("type %s uint32", name)
	c.decl("")
	c.decl("const (")
	for i, m := range e.Members {
		c.docComment("\t", m.Documentation, "")
		if i == 0 {
			c.decl("\t%s %s = iota", c.gen.enumConst(e, m.Name), name)
			continue
		}
		c.decl("\t%s", c.gen.enumConst(e, m.Name))
	}
	c.decl(")")
	c.decl("")
	c.decl("func (v %s) String() string {", name)
	c.decl("\treturn string(%s.EnumName(%s[:], uint32(v)))", rt, c.gen.enumTable(e))
	c.decl("}")
	c.decl("")
}

func (c *emitContext) emitStructType(s *idl.StructDescriptor) error {
	name := c.gen.goName(s.Name)
	c.docComment("", s.Documentation, fmt.Sprintf("%s is the IDL struct %s.", name, s.Name.Qualified()))
	c.decl("type %s struct {", name)
	for _, f := range s.Fields {
		typ, err := c.gen.goType(f.Type)
		if err != nil {
			return c.errorf("field %s: %v", f.Name, err)
		}
		c.docComment("\t", f.Documentation, "")
		c.decl("\t%s %s", exportName(f.Name), typ)
	}
	c.decl("}")
	c.decl("")
	return nil
}

// emitUnionType declares a union as a struct holding the discriminant
// and the active branch value, with one accessor and one setter per
// branch. Setters store the branch's first label as the discriminant;
// the default branch setter takes the discriminant explicitly.
func (c *emitContext) emitUnionType(u *idl.UnionDescriptor) error {
	name := c.gen.goName(u.Name)
	discType, err := c.gen.goType(u.Discriminator)
	if err != nil {
		return c.errorf("discriminator: %v", err)
	}
	getters, setters := unionMembers(u)

	c.docComment("", u.Documentation, fmt.Sprintf("%s is the IDL union %s.", name, u.Name.Qualified()))
	c.decl("type %s struct {", name)
	c.decl("\tD     %s", discType)
	c.decl("\tvalue any")
	c.decl("}")
	c.decl("")

	for i, b := range u.Branches {
		typ, err := c.gen.goType(b.Type)
		if err != nil {
			return c.errorf("branch %s: %v", b.Name, err)
		}
		c.docComment("", b.Documentation, fmt.Sprintf("%s returns the %s branch.", getters[i], b.Name))
		c.decl("func (u *%s) %s() %s {", name, getters[i], typ)
		c.decl("\tv, _ := u.value.(%s)", typ)
		c.decl("\treturn v")
		c.decl("}")
		c.decl("")

		if b.Default {
			if c.gen.cfg.EmitComments {
				c.decl("// %s selects the default branch %s with discriminant d.", setters[i], b.Name)
			}
			c.decl("func (u *%s) %s(d %s, v %s) {", name, setters[i], discType, typ)
			c.decl("\tu.D = d")
		} else {
			label, err := c.gen.labelLiteral(u.Discriminator, b.Labels[0])
			if err != nil {
				return c.errorf("branch %s: %v", b.Name, err)
			}
			if c.gen.cfg.EmitComments {
				c.decl("// %s selects the %s branch.", setters[i], b.Name)
			}
			c.decl("func (u *%s) %s(v %s) {", name, setters[i], typ)
			c.decl("\tu.D = %s", label)
		}
		c.decl("\tu.value = v")
		c.decl("}")
		c.decl("")
	}
	return nil
}

// emitTypedefType declares typedef'd sequences and arrays as defined
// types, since each has its own Convert function. All other typedefs
// are aliases so values flow into the conversion of the aliased type.
func (c *emitContext) emitTypedefType(t *idl.TypedefDescriptor) error {
	name := c.gen.goName(t.Name)
	typ, err := c.gen.goType(t.Underlying)
	if err != nil {
		return c.errorf("%v", err)
	}
	c.docComment("", t.Documentation, fmt.Sprintf("%s is the IDL typedef %s.", name, t.Name.Qualified()))
	switch t.Underlying.(type) {
	case *idl.SequenceDescriptor, *idl.ArrayDescriptor:
		c.decl("type %s %s", name, typ)
	default:
		c.decl("type %s = %s", name, typ)
	}
	c.decl("")
	return nil
}
