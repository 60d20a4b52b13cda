package gogen

import (
	"context"
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sync"
	"testing"

	"github.com/broady/dyngen/idl"
)

// messengerSchema covers every category: scalars of each kind, an enum,
// both string widths, anonymous and built-in sequences, a nested array,
// nested structures, a union with a default and typedef'd collections.
func messengerSchema() *idl.Schema {
	s := &idl.Schema{Module: "Messenger.idl"}
	s.AddType(idl.Enum("Messenger::Priority", "LOW", "NORMAL", "HIGH"))
	s.AddType(&idl.StructDescriptor{
		Name: idl.Ident("Messenger::Point"),
		Fields: []idl.FieldDescriptor{
			idl.Field("x", idl.Long()),
			idl.Field("y", idl.Long()),
		},
	})
	s.AddType(&idl.StructDescriptor{
		Name:          idl.Ident("Messenger::Message"),
		TopLevel:      true,
		Documentation: idl.Doc("Message is one chat line."),
		Fields: []idl.FieldDescriptor{
			idl.Field("from", idl.String()),
			idl.Field("text", idl.WString()),
			idl.Field("count", idl.Long()),
			idl.Field("stamp", idl.ULongLong()),
			idl.Field("ok", idl.Boolean()),
			idl.Field("initial", idl.Char()),
			idl.Field("mark", idl.WChar()),
			idl.Field("ratio", idl.Float()),
			idl.Field("priority", idl.Ref("Messenger::Priority")),
			idl.Field("nums", idl.Sequence(idl.Short())),
			idl.Field("tags", idl.Ref("CORBA::StringSeq")),
			idl.Field("pos", idl.Ref("Messenger::Point")),
			idl.Field("grid", idl.Array(idl.Array(idl.Double(), 3), 2)),
			idl.Field("path", idl.Ref("Messenger::PointList")),
			idl.Field("payload", idl.Ref("Messenger::Payload")),
		},
	})
	s.AddType(&idl.UnionDescriptor{
		Name:          idl.Ident("Messenger::Payload"),
		Discriminator: idl.Long(),
		Branches: []idl.BranchDescriptor{
			idl.Branch("n", idl.Long(), 1, 2),
			idl.Branch("words", idl.Sequence(idl.WString()), 3),
			idl.Branch("at", idl.Ref("Messenger::Point"), 4),
			idl.DefaultCase("s", idl.String()),
		},
	})
	s.AddType(idl.Typedef("Messenger::PointList", idl.Sequence(idl.Ref("Messenger::Point"))))
	s.AddType(idl.Typedef("Messenger::Matrix", idl.Array(idl.Long(), 4)))
	s.AddType(idl.Typedef("Messenger::Level", idl.Ref("Messenger::Priority")))
	return s
}

func generateString(t *testing.T, schema *idl.Schema, cfg GeneratorConfig) string {
	t.Helper()
	src, _, err := GenerateSource(context.Background(), schema, cfg)
	if err != nil {
		t.Fatalf("GenerateSource() error = %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), cfg.FileName, src, parser.AllErrors); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	// Without types the output refers to declarations the caller provides,
	// and a custom runtime path cannot be resolved here.
	if cfg.EmitTypes && (cfg.RuntimePath == "" || cfg.RuntimePath == DefaultRuntimePath) {
		typeCheck(t, cfg.FileName, src)
	}
	return string(src)
}

// The source importer caches the runtime package and its standard
// library dependencies between checks. It is not safe for concurrent use.
var (
	checkMu   sync.Mutex
	checkFset = token.NewFileSet()
	checkImp  = importer.ForCompiler(checkFset, "source", nil)
)

// typeCheck compiles generated source against the runtime package of
// this module.
func typeCheck(t *testing.T, name string, src []byte) {
	t.Helper()
	checkMu.Lock()
	defer checkMu.Unlock()

	// Imports resolve relative to the file, which must sit inside the module.
	path, err := filepath.Abs(name)
	if err != nil {
		t.Fatal(err)
	}
	f, err := parser.ParseFile(checkFset, path, src, parser.AllErrors)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	var errs []error
	conf := types.Config{
		Importer: checkImp,
		Error:    func(err error) { errs = append(errs, err) },
	}
	conf.Check(f.Name.Name, checkFset, []*ast.File{f}, nil)
	if len(errs) > 0 {
		t.Fatalf("generated code does not type-check: %v\n%s", errors.Join(errs...), src)
	}
}
