package gogen

import (
	"context"
	"flag"
	"go/scanner"
	"go/token"
	"os"
	"testing"

	"github.com/broady/dyngen/idl"
)

var update = flag.Bool("update", false, "rewrite checked-in generator output")

const (
	fixtureSchema = "../internal/testfixtures/demo.yaml"
	fixtureOutput = "../internal/testfixtures/dyngen_gen.go"
)

// TestGolden regenerates the checked-in fixture package and compares it
// token by token, so the fixture's runtime tests exercise exactly what
// the generator emits.
func TestGolden(t *testing.T) {
	schema, err := idl.LoadSchema(fixtureSchema)
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := GenerateSource(context.Background(), schema, DefaultConfig("testfixtures"))
	if err != nil {
		t.Fatal(err)
	}

	if *update {
		if err := os.WriteFile(fixtureOutput, got, 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(fixtureOutput)
	if err != nil {
		t.Fatal(err)
	}
	gotToks, wantToks := scanTokens(got), scanTokens(want)
	for i := range min(len(gotToks), len(wantToks)) {
		if gotToks[i] != wantToks[i] {
			t.Fatalf("token %d: got %q, want %q (run go test -update to refresh)\n%s", i, gotToks[i], wantToks[i], got)
		}
	}
	if len(gotToks) != len(wantToks) {
		t.Fatalf("got %d tokens, want %d\n%s", len(gotToks), len(wantToks), got)
	}
}

func scanTokens(src []byte) []string {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, src, nil, scanner.ScanComments)

	var out []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return out
		}
		out = append(out, tok.String()+" "+lit)
	}
}
