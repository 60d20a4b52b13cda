package gogen

import "github.com/broady/dyngen/idl"

// convert emits the statements that store the converted src in dst,
// dispatching on the category of td.
func (c *emitContext) convert(dst target, src access, td idl.TypeDescriptor) error {
	schema := c.gen.schema
	cat := Classify(schema, td)
	switch {
	case cat == CategoryUnknown:
		return c.errorf("cannot classify %s", describeType(td))
	case cat.IsScalar():
		return c.encodeScalar(dst, src, td)
	default:
		return c.emitCollection(dst, src, td)
	}
}

// emitCollection handles the non-scalar categories. A reference to a
// type with its own Convert function becomes a single delegated call;
// anonymous and built-in sequences and arrays are walked inline.
func (c *emitContext) emitCollection(dst target, src access, td idl.TypeDescriptor) error {
	schema := c.gen.schema
	if unit := conversionUnit(schema, td); unit != nil {
		c.delegate(dst, src, unit)
		return nil
	}

	elem := elementType(schema.Resolve(td))
	if elem == nil {
		return c.errorf("%s has no conversion", describeType(td))
	}

	c.open("{")
	src = c.bind(src)
	arr := c.newVar("arr")
	if err := c.emitLoop(arr, src, elem); err != nil {
		return err
	}
	c.line("%s", dst.put(arr))
	c.close("}")
	return nil
}

// emitLoop declares arr and appends every converted element of src.
func (c *emitContext) emitLoop(arr string, src access, elem idl.TypeDescriptor) error {
	i := c.newVar("i")
	c.line("%s := %s.NewArray(len(%s))", arr, rt, src.expr)
	c.open("for %s := range %s {", i, src.expr)
	if err := c.convert(arrayEnd(arr), src.index(i), elem); err != nil {
		return err
	}
	c.close("}")
	return nil
}

// delegate emits a call to the Convert function of unit.
func (c *emitContext) delegate(dst target, src access, unit idl.TypeDescriptor) {
	if src.call {
		c.open("{")
		src = c.bind(src)
		c.line("%s", dst.put(c.gen.unitFunc(unit)+"(&"+src.expr+")"))
		c.close("}")
		return
	}
	c.line("%s", dst.put(c.gen.unitFunc(unit)+"(&"+src.expr+")"))
}

// elementType returns the element of a resolved sequence or array.
func elementType(td idl.TypeDescriptor) idl.TypeDescriptor {
	switch d := td.(type) {
	case *idl.SequenceDescriptor:
		return d.Element
	case *idl.ArrayDescriptor:
		return d.Element
	}
	return nil
}

func describeType(td idl.TypeDescriptor) string {
	switch d := td.(type) {
	case nil:
		return "missing type"
	case *idl.ReferenceDescriptor:
		return d.Target.Qualified()
	}
	if name := td.TypeName(); !name.IsZero() {
		return name.Qualified()
	}
	return td.Kind().String()
}
