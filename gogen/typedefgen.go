package gogen

import "github.com/broady/dyngen/idl"

// generateTypedef emits the Convert function of a typedef'd sequence or
// array. Other typedefs are Go aliases and need no function.
func (c *emitContext) generateTypedef(t *idl.TypedefDescriptor) error {
	if !hasUnit(c.gen.schema, t) {
		return nil
	}
	name := c.gen.goName(t.Name)
	c.resetVars()

	if c.gen.cfg.EmitComments {
		c.line("// %s converts a %s to a dynamic array.", c.gen.unitFunc(t), name)
	}
	c.open("func %s(src *%s) *%s.Array {", c.gen.unitFunc(t), name, rt)

	// A pointer to an array can be ranged and indexed directly; a
	// pointer to a slice cannot.
	src := access{expr: "src"}
	if _, ok := t.Underlying.(*idl.SequenceDescriptor); ok {
		c.line("elems := *src")
		src = access{expr: "elems"}
	}
	if err := c.emitLoop("arr", src, elementType(t.Underlying)); err != nil {
		return err
	}
	c.line("return arr")
	c.close("}")
	c.line("")
	return nil
}
