package dyngen

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestConverterFor(t *testing.T) {
	c := ConverterFor(ConvertDemo_Point)

	tests := []struct {
		name     string
		sample   any
		wantCode ErrorCode
	}{
		{"pointer", &Demo_Point{X: 1}, ""},
		{"value", Demo_Point{X: 1}, ""},
		{"nil pointer", (*Demo_Point)(nil), CodeInvalidArgument},
		{"wrong type", "Demo_Point", CodeInvalidArgument},
		{"untyped nil", nil, CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := c.Convert(tt.sample)
			if got := CodeOf(err); got != tt.wantCode {
				t.Fatalf("Convert() code = %q, want %q (err = %v)", got, tt.wantCode, err)
			}
			if tt.wantCode != "" {
				return
			}
			obj, ok := v.(*Object)
			if !ok {
				t.Fatalf("Convert() = %T, want *Object", v)
			}
			if x, _ := obj.Get("x"); x != Number(1) {
				t.Errorf("x = %v, want 1", x)
			}
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("Demo::Point", ConverterFor(ConvertDemo_Point)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := r.Register("Demo::Point", ConverterFor(ConvertDemo_Point))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("duplicate Register() error = %v, want *Error", err)
	}
	if e.Code != CodeAlreadyExists {
		t.Errorf("duplicate Register() code = %s, want %s", e.Code, CodeAlreadyExists)
	}
	if e.Details["type"] != "Demo::Point" {
		t.Errorf("details = %v", e.Details)
	}

	if err := r.Register("", ConverterFor(ConvertDemo_Point)); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("Register(\"\") code = %s, want %s", CodeOf(err), CodeInvalidArgument)
	}
	if err := r.Register("Demo::Other", nil); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("Register(nil) code = %s, want %s", CodeOf(err), CodeInvalidArgument)
	}
}

func TestRegistry_DuplicateLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := NewRegistry().WithLogger(logger)

	_ = r.Register("Demo::Point", ConverterFor(ConvertDemo_Point))
	_ = r.Register("Demo::Point", ConverterFor(ConvertDemo_Point))

	if !strings.Contains(buf.String(), "duplicate converter registration") {
		t.Errorf("expected duplicate warning in log output, got %q", buf.String())
	}
}

func TestRegistry_Convert(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("Demo::Point", ConverterFor(ConvertDemo_Point)); err != nil {
		t.Fatal(err)
	}

	v, err := r.Convert("Demo::Point", &Demo_Point{X: 5, C: Demo_Color_GREEN})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"x":5,"c":"GREEN"}`; got != want {
		t.Errorf("Convert() = %s, want %s", got, want)
	}

	if _, err := r.Convert("Demo::Missing", &Demo_Point{}); CodeOf(err) != CodeNotFound {
		t.Errorf("Convert(missing) code = %s, want %s", CodeOf(err), CodeNotFound)
	}
}

func TestRegistry_ConvertRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry().WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	boom := ConvertFunc(func(any) (Value, error) { panic("boom") })
	if err := r.Register("Demo::Boom", boom); err != nil {
		t.Fatal(err)
	}

	v, err := r.Convert("Demo::Boom", nil)
	if v != nil {
		t.Errorf("Convert() = %v, want nil", v)
	}
	if CodeOf(err) != CodeInternal {
		t.Errorf("Convert() code = %s, want %s", CodeOf(err), CodeInternal)
	}
	if !strings.Contains(buf.String(), "PANIC recovered") {
		t.Error("expected panic to be logged")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"B::T", "A::T", "C::T"} {
		if err := r.Register(name, ConverterFor(ConvertDemo_Point)); err != nil {
			t.Fatal(err)
		}
	}
	got := strings.Join(r.Names(), ",")
	if got != "A::T,B::T,C::T" {
		t.Errorf("Names() = %s", got)
	}
	if _, ok := r.Lookup("A::T"); !ok {
		t.Error("Lookup(A::T) should succeed")
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	const n = 50

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Even indices share one name; odd indices are distinct.
			name := "Demo::Shared"
			if i%2 == 1 {
				name = fmt.Sprintf("Demo::T%d", i)
			}
			errs[i] = r.Register(name, ConverterFor(ConvertDemo_Point))
		}()
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch CodeOf(err) {
		case "":
			ok++
		case CodeAlreadyExists:
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	// 25 distinct odd names plus exactly one winner for the shared name.
	if ok != n/2+1 {
		t.Errorf("successful registrations = %d, want %d", ok, n/2+1)
	}
	if dup != n/2-1 {
		t.Errorf("duplicate registrations = %d, want %d", dup, n/2-1)
	}
	if len(r.Names()) != n/2+1 {
		t.Errorf("len(Names()) = %d, want %d", len(r.Names()), n/2+1)
	}
}
