package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/dyngen/gogen"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	file := writeFile(t, "dyngen.toml", `
package = "fromfile"
naming = "local"
comments = false
`)

	tests := []struct {
		name  string
		path  string
		param string
		flags Flags
		check func(gogen.GeneratorConfig) bool
	}{
		{
			name:  "flags only",
			flags: Flags{Package: "demo"},
			check: func(c gogen.GeneratorConfig) bool {
				return c.Package == "demo" && c.Naming == gogen.NamingScoped &&
					c.EmitTypes && c.EmitComments && c.FileName == gogen.DefaultFileName
			},
		},
		{
			name: "file",
			path: file,
			check: func(c gogen.GeneratorConfig) bool {
				return c.Package == "fromfile" && c.Naming == gogen.NamingLocal &&
					!c.EmitComments && c.EmitTypes
			},
		},
		{
			name:  "param overrides file",
			path:  file,
			param: "package=fromparam&types=false&file=out.go",
			check: func(c gogen.GeneratorConfig) bool {
				return c.Package == "fromparam" && !c.EmitTypes &&
					c.FileName == "out.go" && c.Naming == gogen.NamingLocal
			},
		},
		{
			name:  "flags override param",
			param: "package=fromparam&naming=local",
			flags: Flags{Package: "fromflag", Naming: "scoped", NoTypes: true},
			check: func(c gogen.GeneratorConfig) bool {
				return c.Package == "fromflag" && c.Naming == gogen.NamingScoped && !c.EmitTypes
			},
		},
		{
			name:  "runtime path",
			flags: Flags{Package: "demo", Runtime: "example.com/rt", NoComments: true},
			check: func(c gogen.GeneratorConfig) bool {
				return c.RuntimePath == "example.com/rt" && !c.EmitComments
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.path, tt.param, tt.flags)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("Resolve() = %+v", cfg)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	unknown := writeFile(t, "unknown.toml", "package = \"demo\"\nflavor = \"zod\"\n")
	broken := writeFile(t, "broken.toml", "package = \n")

	tests := []struct {
		name    string
		path    string
		param   string
		flags   Flags
		wantErr string
	}{
		{"missing package", "", "", Flags{}, "package: required"},
		{"bad naming flag", "", "", Flags{Package: "demo", Naming: "flat"}, "naming: must be one of"},
		{"unknown file key", unknown, "", Flags{}, "unknown keys: flavor"},
		{"broken file", broken, "", Flags{}, "broken.toml"},
		{"missing file", filepath.Join(t.TempDir(), "nope.toml"), "", Flags{}, "nope.toml"},
		{"unknown param key", "", "package=demo&flavor=zod", Flags{}, "flavor"},
		{"bad param bool", "", "package=demo&types=maybe", Flags{}, "types"},
		{"bad param escape", "", "package=%zz", Flags{}, "param"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.path, tt.param, tt.flags)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	NewLogger(&buf, false).Info("shown")
	NewLogger(&buf, true).Debug("verbose")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged without verbose")
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "msg=verbose") {
		t.Errorf("missing messages in %q", out)
	}
}
