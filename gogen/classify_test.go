package gogen

import (
	"testing"

	"github.com/broady/dyngen/idl"
)

func TestClassify(t *testing.T) {
	s := messengerSchema()
	s.AddType(idl.Typedef("Messenger::Text", idl.WString()))
	s.AddType(idl.Typedef("Messenger::Longs", idl.Ref("CORBA::LongSeq")))

	tests := []struct {
		name string
		td   idl.TypeDescriptor
		want Category
	}{
		{"boolean", idl.Boolean(), CategoryPrimitive},
		{"long double", idl.Prim(idl.PrimitiveLongDouble), CategoryPrimitive},
		{"wchar", idl.WChar(), CategoryPrimitive},
		{"enum", idl.Ref("Messenger::Priority"), CategoryEnum},
		{"enum typedef", idl.Ref("Messenger::Level"), CategoryEnum},
		{"string", idl.String(), CategoryNarrowString},
		{"bounded string", idl.BoundedString(8), CategoryNarrowString},
		{"wstring", idl.WString(), CategoryWideString},
		{"wstring typedef", idl.Ref("Messenger::Text"), CategoryWideString},
		{"array", idl.Array(idl.Long(), 2), CategoryArray},
		{"array typedef", idl.Ref("Messenger::Matrix"), CategoryArray},
		{"sequence", idl.Sequence(idl.Long()), CategorySequence},
		{"sequence typedef", idl.Ref("Messenger::PointList"), CategorySequence},
		{"builtin sequence", idl.Ref("CORBA::StringSeq"), CategoryBuiltinSequence},
		{"alias of builtin", idl.Ref("Messenger::Longs"), CategorySequence},
		{"struct", idl.Ref("Messenger::Point"), CategoryStruct},
		{"union", idl.Ref("Messenger::Payload"), CategoryUnion},
		{"dangling", idl.Ref("Messenger::Nope"), CategoryUnknown},
		{"nil", nil, CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(s, tt.td); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	if got := CategoryBuiltinSequence.String(); got != "builtin sequence" {
		t.Errorf("String() = %q", got)
	}
	if got := Category(99).String(); got != "unknown" {
		t.Errorf("Category(99).String() = %q", got)
	}
	if !CategoryWideString.IsScalar() || CategoryArray.IsScalar() {
		t.Error("IsScalar() misclassifies")
	}
}

func TestConversionUnit(t *testing.T) {
	s := messengerSchema()
	s.AddType(idl.Typedef("Messenger::Spot", idl.Ref("Messenger::Point")))
	s.AddType(idl.Typedef("Messenger::Route", idl.Ref("Messenger::PointList")))

	tests := []struct {
		name string
		td   idl.TypeDescriptor
		want string
	}{
		{"struct", idl.Ref("Messenger::Point"), "Messenger::Point"},
		{"union", idl.Ref("Messenger::Payload"), "Messenger::Payload"},
		{"sequence typedef", idl.Ref("Messenger::PointList"), "Messenger::PointList"},
		{"array typedef", idl.Ref("Messenger::Matrix"), "Messenger::Matrix"},
		{"alias of struct", idl.Ref("Messenger::Spot"), "Messenger::Point"},
		{"alias of sequence typedef", idl.Ref("Messenger::Route"), "Messenger::PointList"},
		{"builtin sequence", idl.Ref("CORBA::LongSeq"), ""},
		{"enum", idl.Ref("Messenger::Priority"), ""},
		{"anonymous sequence", idl.Sequence(idl.Ref("Messenger::Point")), ""},
		{"primitive", idl.Long(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ""
			if u := conversionUnit(s, tt.td); u != nil {
				got = u.TypeName().Qualified()
			}
			if got != tt.want {
				t.Errorf("conversionUnit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasUnit(t *testing.T) {
	s := messengerSchema()
	want := map[string]bool{
		"Messenger::Priority":  false,
		"Messenger::Point":     true,
		"Messenger::Message":   true,
		"Messenger::Payload":   true,
		"Messenger::PointList": true,
		"Messenger::Matrix":    true,
		"Messenger::Level":     false,
	}
	for _, td := range s.Types {
		q := td.TypeName().Qualified()
		if got := hasUnit(s, td); got != want[q] {
			t.Errorf("hasUnit(%s) = %v, want %v", q, got, want[q])
		}
	}
	for _, b := range idl.BuiltinSequences() {
		if hasUnit(s, b) {
			t.Errorf("hasUnit(%s) = true, built-in sequences convert inline", b.Name.Qualified())
		}
	}
}
