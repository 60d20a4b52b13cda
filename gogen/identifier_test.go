package gogen

import (
	"testing"

	"github.com/broady/dyngen/idl"
)

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"type", "type_"},
		{"len", "len_"},
		{"string", "string_"},
		{"Message", "Message"},
		{"types", "types"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := escapeReservedWord(tt.in); got != tt.want {
				t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text", "Text"},
		{"Text", "Text"},
		{"x", "X"},
		{"élan", "Élan"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := exportName(tt.in); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGoTypeName(t *testing.T) {
	tests := []struct {
		q    string
		mode NamingMode
		want string
	}{
		{"Messenger::Message", NamingScoped, "Messenger_Message"},
		{"A::B::C", NamingScoped, "A_B_C"},
		{"Message", NamingScoped, "Message"},
		{"Messenger::Message", NamingLocal, "Message"},
		{"Demo::type", NamingLocal, "type_"},
		{"Demo::type", NamingScoped, "Demo_type"},
	}
	for _, tt := range tests {
		t.Run(tt.q+"/"+string(tt.mode), func(t *testing.T) {
			if got := goTypeName(idl.Ident(tt.q), tt.mode); got != tt.want {
				t.Errorf("goTypeName(%q) = %q, want %q", tt.q, got, tt.want)
			}
		})
	}
}

func TestUnionMembers(t *testing.T) {
	u := &idl.UnionDescriptor{
		Name:          idl.Ident("A::U"),
		Discriminator: idl.Long(),
		Branches: []idl.BranchDescriptor{
			idl.Branch("d", idl.Long(), 1),
			idl.Branch("x", idl.Long(), 2),
			idl.Branch("setX", idl.Long(), 3),
		},
	}
	getters, setters := unionMembers(u)

	wantGetters := []string{"D_", "X", "SetX"}
	wantSetters := []string{"SetD_", "SetX_", "SetSetX"}
	for i := range wantGetters {
		if getters[i] != wantGetters[i] {
			t.Errorf("getters[%d] = %q, want %q", i, getters[i], wantGetters[i])
		}
		if setters[i] != wantSetters[i] {
			t.Errorf("setters[%d] = %q, want %q", i, setters[i], wantSetters[i])
		}
	}
}
