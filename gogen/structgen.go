package gogen

import "github.com/broady/dyngen/idl"

// unitFunc is the name of the Convert function generated for a declared
// type.
func (g *fileGenerator) unitFunc(td idl.TypeDescriptor) string {
	return "Convert" + g.goName(td.TypeName())
}

// generateStruct emits the Convert function of a structure: a new object
// with one key per field, in declaration order, named after the IDL field.
func (c *emitContext) generateStruct(s *idl.StructDescriptor) error {
	name := c.gen.goName(s.Name)
	c.resetVars()

	if c.gen.cfg.EmitComments {
		c.line("// %s converts a %s to a dynamic object.", c.gen.unitFunc(s), name)
	}
	c.open("func %s(src *%s) *%s.Object {", c.gen.unitFunc(s), name, rt)
	c.line("obj := %s.NewObject()", rt)
	for _, f := range s.Fields {
		src := access{expr: "src." + exportName(f.Name)}
		if err := c.convert(objectKey("obj", f.Name), src, f.Type); err != nil {
			return err
		}
	}
	c.line("return obj")
	c.close("}")
	c.line("")

	if s.TopLevel {
		c.gen.register(s)
	}
	return nil
}
