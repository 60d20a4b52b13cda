package gogen

import "github.com/broady/dyngen/idl"

// rt is the package name generated code uses for the runtime.
const rt = "dyngen"

// encodeScalar emits the statements that store the scalar src in dst.
// td must classify as a primitive, enumeration or string.
func (c *emitContext) encodeScalar(dst target, src access, td idl.TypeDescriptor) error {
	schema := c.gen.schema
	switch d := schema.Resolve(td).(type) {
	case *idl.EnumDescriptor:
		c.line("%s", dst.put(rt+".EnumName("+c.gen.enumTable(d)+"[:], uint32("+src.expr+"))"))
	case *idl.StringDescriptor:
		if d.Wide {
			c.encodeWideString(dst, src)
			return nil
		}
		c.line("%s", dst.put(rt+".String("+src.expr+")"))
	case *idl.PrimitiveDescriptor:
		c.line("%s", dst.put(primitiveValue(d.PrimitiveKind, src.expr)))
	default:
		return c.errorf("%s is not a scalar type", Classify(schema, td))
	}
	return nil
}

// primitiveValue returns the expression converting expr of kind k.
func primitiveValue(k idl.PrimitiveKind, expr string) string {
	switch {
	case k == idl.PrimitiveBoolean:
		return rt + ".Bool(" + expr + ")"
	case k == idl.PrimitiveChar:
		return rt + ".Char(" + expr + ")"
	case k == idl.PrimitiveWChar:
		return rt + ".WChar(" + expr + ")"
	case k == idl.PrimitiveLongLong, k == idl.PrimitiveULongLong:
		// May round: 64-bit integers are wider than a double's mantissa.
		return rt + ".Number(float64(" + expr + "))"
	case k.IsFloat():
		return rt + ".Number(" + expr + ")"
	default:
		return rt + ".Integer(" + expr + ")"
	}
}

// encodeWideString emits a scoped block that re-encodes a []rune as
// UTF-16 through a pooled buffer. Each rune is truncated to one code unit.
func (c *emitContext) encodeWideString(dst target, src access) {
	c.open("{")
	src = c.bind(src)
	buf, i, r := c.newVar("buf"), c.newVar("i"), c.newVar("r")
	c.line("%s := %s.AcquireUTF16(len(%s) + 1)", buf, rt, src.expr)
	c.open("for %s, %s := range %s {", i, r, src.expr)
	c.line("%s[%s] = uint16(%s)", buf, i, r)
	c.close("}")
	c.line("%s", dst.put(rt+".StringFromUTF16("+buf+")"))
	c.line("%s.ReleaseUTF16(%s)", rt, buf)
	c.close("}")
}
