package middleware

import (
	"errors"
	"strings"
	"testing"

	"github.com/broady/dyngen"
)

type account struct {
	Name  string `validate:"required"`
	Level int32  `validate:"min=1,max=5"`
}

func convertAccount(a *account) *dyngen.Object {
	obj := dyngen.NewObject()
	obj.Set("name", dyngen.String(a.Name))
	obj.Set("level", dyngen.Integer(a.Level))
	return obj
}

func TestValidatingInterceptor(t *testing.T) {
	r := dyngen.NewRegistry().WithInterceptor(ValidatingInterceptor(nil))
	if err := r.Register("Bank::Account", dyngen.ConverterFor(convertAccount)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		sample    any
		wantErr   bool
		wantField string
	}{
		{"valid pointer", &account{Name: "a", Level: 2}, false, ""},
		{"valid value", account{Name: "a", Level: 5}, false, ""},
		{"missing name", &account{Level: 2}, true, "Name"},
		{"level too high", &account{Name: "a", Level: 9}, true, "Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Convert("Bank::Account", tt.sample)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var e *dyngen.Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *dyngen.Error, got %v", err)
			}
			if e.Code != dyngen.CodeInvalidArgument {
				t.Errorf("code = %s, want %s", e.Code, dyngen.CodeInvalidArgument)
			}
			if _, ok := e.Details[tt.wantField]; !ok {
				t.Errorf("details = %v, want key %s", e.Details, tt.wantField)
			}
			if !strings.HasPrefix(e.Message, "Bank::Account: ") {
				t.Errorf("message = %q", e.Message)
			}
		})
	}
}

func TestValidatingInterceptor_NonStructPassesThrough(t *testing.T) {
	interceptor := ValidatingInterceptor(nil)
	for _, sample := range []any{nil, "text", []int32{1}, (*account)(nil)} {
		called := false
		_, err := interceptor("T", sample, func(any) (dyngen.Value, error) {
			called = true
			return dyngen.Bool(true), nil
		})
		if err != nil {
			t.Errorf("sample %#v: unexpected error: %v", sample, err)
		}
		if !called {
			t.Errorf("sample %#v: next was not called", sample)
		}
	}
}
