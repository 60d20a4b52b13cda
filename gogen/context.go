package gogen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/broady/dyngen/idl"
)

// emitContext carries the state of one declared-type pass: the output
// streams, the current indentation and the counter used to name loop
// and temporary variables.
type emitContext struct {
	gen *fileGenerator

	// scope is the declared type being generated, for error messages.
	scope idl.Identifier

	decls *bytes.Buffer // type declarations and enumerator tables
	defs  *bytes.Buffer // conversion functions

	depth int
	vars  int
}

func (g *fileGenerator) newContext(scope idl.Identifier) *emitContext {
	return &emitContext{
		gen:   g,
		scope: scope,
		decls: &g.decls,
		defs:  &g.defs,
	}
}

// line writes one indented line to the definitions stream.
func (c *emitContext) line(format string, args ...any) {
	c.defs.WriteString(strings.Repeat("\t", c.depth))
	fmt.Fprintf(c.defs, format, args...)
	c.defs.WriteByte('\n')
}

func (c *emitContext) open(format string, args ...any) {
	c.line(format, args...)
	c.depth++
}

func (c *emitContext) close(s string) {
	c.depth--
	c.line("%s", s)
}

// newVar returns a fresh local variable name with the given prefix.
func (c *emitContext) newVar(prefix string) string {
	name := prefix + strconv.Itoa(c.vars)
	c.vars++
	return name
}

// resetVars starts a new function body.
func (c *emitContext) resetVars() { c.vars = 0 }

func (c *emitContext) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", c.scope.Qualified(), fmt.Sprintf(format, args...))
}

// access is a source expression together with whether it is the result
// of a call. Call results are not addressable and must not be evaluated
// twice, so they are bound to a temporary before their address is taken
// or they are indexed.
type access struct {
	expr string
	call bool
}

// bind assigns a call result to a fresh variable and returns an access
// to that variable. Other accesses are returned unchanged.
func (c *emitContext) bind(a access) access {
	if !a.call {
		return a
	}
	v := c.newVar("v")
	c.line("%s := %s", v, a.expr)
	return access{expr: v}
}

// index returns an access to element i of a.
func (a access) index(i string) access {
	return access{expr: a.expr + "[" + i + "]"}
}

// target is where a converted value is stored: a key of an object or
// the end of an array.
type target struct {
	recv     string
	key      string
	isAppend bool
}

func objectKey(recv, key string) target {
	return target{recv: recv, key: key}
}

func arrayEnd(recv string) target {
	return target{recv: recv, isAppend: true}
}

// put returns the statement that stores value in t.
func (t target) put(value string) string {
	if t.isAppend {
		return t.recv + ".Append(" + value + ")"
	}
	return t.recv + ".Set(" + strconv.Quote(t.key) + ", " + value + ")"
}
