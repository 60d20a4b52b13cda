package gogen

import (
	"strings"

	"github.com/broady/dyngen/idl"
)

// DiscriminatorKey is the object key holding a union's discriminant.
const DiscriminatorKey = "_d"

// generateUnion emits the Convert function of a union: the discriminant
// under DiscriminatorKey, then the active branch under its name. A
// discriminant that matches no label and no default leaves only the
// discriminant.
func (c *emitContext) generateUnion(u *idl.UnionDescriptor) error {
	name := c.gen.goName(u.Name)
	getters, _ := unionMembers(u)
	c.resetVars()

	if c.gen.cfg.EmitComments {
		c.line("// %s converts a %s to a dynamic object.", c.gen.unitFunc(u), name)
	}
	c.open("func %s(src *%s) *%s.Object {", c.gen.unitFunc(u), name, rt)
	c.line("obj := %s.NewObject()", rt)
	if err := c.encodeScalar(objectKey("obj", DiscriminatorKey), access{expr: "src.D"}, u.Discriminator); err != nil {
		return err
	}

	if len(u.Branches) > 0 {
		c.line("switch src.D {")
		for i, b := range u.Branches {
			if err := c.caseClause(u, b); err != nil {
				return err
			}
			c.depth++
			src := access{expr: "src." + getters[i] + "()", call: true}
			if err := c.convert(objectKey("obj", b.Name), src, b.Type); err != nil {
				return err
			}
			c.depth--
		}
		c.line("}")
	}

	c.line("return obj")
	c.close("}")
	c.line("")

	if u.TopLevel {
		c.gen.register(u)
	}
	return nil
}

// caseClause writes the case line for one branch. Every label of a
// branch shares one clause; the default branch is the default clause.
func (c *emitContext) caseClause(u *idl.UnionDescriptor, b idl.BranchDescriptor) error {
	if b.Default {
		c.line("default:")
		return nil
	}
	labels := make([]string, len(b.Labels))
	for i, l := range b.Labels {
		lit, err := c.gen.labelLiteral(u.Discriminator, l)
		if err != nil {
			return c.errorf("branch %s: %v", b.Name, err)
		}
		labels[i] = lit
	}
	c.line("case %s:", strings.Join(labels, ", "))
	return nil
}
