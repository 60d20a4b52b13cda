package gogen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/broady/dyngen/idl"
)

// Go keywords and predeclared identifiers. Generated code calls len and
// refers to the built-in types, so none of these may be redeclared.
var reservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	"any": true, "append": true, "bool": true, "byte": true, "cap": true,
	"clear": true, "close": true, "comparable": true, "complex": true,
	"complex64": true, "complex128": true, "copy": true, "delete": true,
	"error": true, "false": true, "float32": true, "float64": true, "imag": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"iota": true, "len": true, "make": true, "max": true, "min": true, "new": true,
	"nil": true, "panic": true, "print": true, "println": true, "real": true,
	"recover": true, "rune": true, "string": true, "true": true, "uint": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// exportName upper-cases the first letter so the name is exported.
func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// goTypeName maps an IDL scoped name to a package-level Go identifier.
func goTypeName(id idl.Identifier, mode NamingMode) string {
	name := id.Name
	if mode != NamingLocal && len(id.Scope) > 0 {
		name = strings.Join(id.Scope, "_") + "_" + id.Name
	}
	return escapeReservedWord(name)
}

// unionMembers assigns accessor and setter method names to the branches
// of a union. The discriminant field is called D, so a branch named d
// gets the accessor D_. Later branches yield on collision.
func unionMembers(u *idl.UnionDescriptor) (getters, setters []string) {
	taken := map[string]bool{"D": true}
	claim := func(name string) string {
		for taken[name] {
			name += "_"
		}
		taken[name] = true
		return name
	}
	getters = make([]string, len(u.Branches))
	for i, b := range u.Branches {
		getters[i] = claim(exportName(b.Name))
	}
	setters = make([]string, len(u.Branches))
	for i := range u.Branches {
		setters[i] = claim("Set" + getters[i])
	}
	return getters, setters
}
