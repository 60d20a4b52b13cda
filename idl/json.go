package idl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSON serialization support for descriptor trees.
// All descriptors include a "kind" field for type discrimination, and
// declared names are written as qualified strings ("Messenger::Message").

// MarshalJSON implements json.Marshaler for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Module   string           `json:"module,omitempty"`
		Types    []TypeDescriptor `json:"types"`
		Warnings []Warning        `json:"warnings,omitempty"`
	}{
		Module:   s.Module,
		Types:    s.Types,
		Warnings: s.Warnings,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Schema.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw struct {
		Module   string            `json:"module"`
		Types    []json.RawMessage `json:"types"`
		Warnings []Warning         `json:"warnings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Module = raw.Module
	s.Warnings = raw.Warnings
	s.Types = make([]TypeDescriptor, 0, len(raw.Types))
	for i, msg := range raw.Types {
		td, err := UnmarshalDescriptor(msg)
		if err != nil {
			return fmt.Errorf("types[%d]: %w", i, err)
		}
		s.Types = append(s.Types, td)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Identifier.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Qualified())
}

// UnmarshalJSON implements json.Unmarshaler for Identifier.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var q string
	if err := json.Unmarshal(data, &q); err != nil {
		return err
	}
	if q == "" {
		*id = Identifier{}
		return nil
	}
	*id = Ident(q)
	return nil
}

// MarshalJSON implements json.Marshaler for Documentation.
func (d Documentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Body)
}

// UnmarshalJSON implements json.Unmarshaler for Documentation.
func (d *Documentation) UnmarshalJSON(data []byte) error {
	var body string
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*d = Doc(body)
	return nil
}

// Doc builds Documentation from comment text, taking the first line as
// the summary.
func Doc(body string) Documentation {
	body = strings.TrimSpace(body)
	summary, _, _ := strings.Cut(body, "\n")
	return Documentation{Summary: strings.TrimSpace(summary), Body: body}
}

// MarshalJSON implements json.Marshaler for PrimitiveDescriptor.
func (d *PrimitiveDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind      string `json:"kind"`
		Primitive string `json:"primitive"`
	}{
		Kind:      "primitive",
		Primitive: d.PrimitiveKind.String(),
	})
}

// MarshalJSON implements json.Marshaler for StringDescriptor.
func (d *StringDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Wide  bool   `json:"wide,omitempty"`
		Bound int    `json:"bound,omitempty"`
	}{
		Kind:  "string",
		Wide:  d.Wide,
		Bound: d.Bound,
	})
}

// MarshalJSON implements json.Marshaler for ArrayDescriptor.
func (d *ArrayDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
		Length  int            `json:"length"`
	}{
		Kind:    "array",
		Element: d.Element,
		Length:  d.Length,
	})
}

// MarshalJSON implements json.Marshaler for SequenceDescriptor.
func (d *SequenceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
		Bound   int            `json:"bound,omitempty"`
	}{
		Kind:    "sequence",
		Element: d.Element,
		Bound:   d.Bound,
	})
}

// MarshalJSON implements json.Marshaler for ReferenceDescriptor.
func (d *ReferenceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string     `json:"kind"`
		Name Identifier `json:"name"`
	}{
		Kind: "reference",
		Name: d.Target,
	})
}

// MarshalJSON implements json.Marshaler for StructDescriptor.
func (d *StructDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string            `json:"kind"`
		Name     Identifier        `json:"name"`
		TopLevel bool              `json:"topLevel,omitempty"`
		Fields   []FieldDescriptor `json:"fields"`
		Doc      string            `json:"doc,omitempty"`
	}{
		Kind:     "struct",
		Name:     d.Name,
		TopLevel: d.TopLevel,
		Fields:   d.Fields,
		Doc:      d.Documentation.Body,
	})
}

// MarshalJSON implements json.Marshaler for FieldDescriptor.
func (f FieldDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name string         `json:"name"`
		Type TypeDescriptor `json:"type"`
		Doc  string         `json:"doc,omitempty"`
	}{
		Name: f.Name,
		Type: f.Type,
		Doc:  f.Documentation.Body,
	})
}

// MarshalJSON implements json.Marshaler for UnionDescriptor.
func (d *UnionDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string             `json:"kind"`
		Name          Identifier         `json:"name"`
		TopLevel      bool               `json:"topLevel,omitempty"`
		Discriminator TypeDescriptor     `json:"discriminator"`
		Branches      []BranchDescriptor `json:"branches"`
		Doc           string             `json:"doc,omitempty"`
	}{
		Kind:          "union",
		Name:          d.Name,
		TopLevel:      d.TopLevel,
		Discriminator: d.Discriminator,
		Branches:      d.Branches,
		Doc:           d.Documentation.Body,
	})
}

// MarshalJSON implements json.Marshaler for BranchDescriptor.
func (b BranchDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name    string         `json:"name"`
		Labels  []any          `json:"labels,omitempty"`
		Default bool           `json:"default,omitempty"`
		Type    TypeDescriptor `json:"type"`
		Doc     string         `json:"doc,omitempty"`
	}{
		Name:    b.Name,
		Labels:  b.Labels,
		Default: b.Default,
		Type:    b.Type,
		Doc:     b.Documentation.Body,
	})
}

// MarshalJSON implements json.Marshaler for EnumDescriptor.
func (d *EnumDescriptor) MarshalJSON() ([]byte, error) {
	members := make([]string, len(d.Members))
	for i, m := range d.Members {
		members[i] = m.Name
	}
	return json.Marshal(&struct {
		Kind    string     `json:"kind"`
		Name    Identifier `json:"name"`
		Members []string   `json:"members"`
		Doc     string     `json:"doc,omitempty"`
	}{
		Kind:    "enum",
		Name:    d.Name,
		Members: members,
		Doc:     d.Documentation.Body,
	})
}

// MarshalJSON implements json.Marshaler for TypedefDescriptor.
func (d *TypedefDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string         `json:"kind"`
		Name       Identifier     `json:"name"`
		Underlying TypeDescriptor `json:"underlying"`
		Doc        string         `json:"doc,omitempty"`
	}{
		Kind:       "typedef",
		Name:       d.Name,
		Underlying: d.Underlying,
		Doc:        d.Documentation.Body,
	})
}

// rawDescriptor is the union of all descriptor JSON shapes.
type rawDescriptor struct {
	Kind          string          `json:"kind"`
	Name          Identifier      `json:"name"`
	Primitive     string          `json:"primitive"`
	Wide          bool            `json:"wide"`
	Bound         int             `json:"bound"`
	Length        int             `json:"length"`
	Element       json.RawMessage `json:"element"`
	Underlying    json.RawMessage `json:"underlying"`
	Discriminator json.RawMessage `json:"discriminator"`
	TopLevel      bool            `json:"topLevel"`
	Members       []string        `json:"members"`
	Doc           Documentation   `json:"doc"`
	Fields        []struct {
		Name string          `json:"name"`
		Type json.RawMessage `json:"type"`
		Doc  Documentation   `json:"doc"`
	} `json:"fields"`
	Branches []struct {
		Name    string            `json:"name"`
		Labels  []json.RawMessage `json:"labels"`
		Default bool              `json:"default"`
		Type    json.RawMessage   `json:"type"`
		Doc     Documentation     `json:"doc"`
	} `json:"branches"`
}

// UnmarshalDescriptor decodes one descriptor produced by the MarshalJSON
// methods in this package.
func UnmarshalDescriptor(data []byte) (TypeDescriptor, error) {
	var r rawDescriptor
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	switch r.Kind {
	case "primitive":
		k, ok := ParsePrimitiveKind(r.Primitive)
		if !ok {
			return nil, fmt.Errorf("unknown primitive %q", r.Primitive)
		}
		return Prim(k), nil
	case "string":
		return &StringDescriptor{Wide: r.Wide, Bound: r.Bound}, nil
	case "array":
		elem, err := unmarshalNested(r.Element, "element")
		if err != nil {
			return nil, err
		}
		return Array(elem, r.Length), nil
	case "sequence":
		elem, err := unmarshalNested(r.Element, "element")
		if err != nil {
			return nil, err
		}
		return BoundedSequence(elem, r.Bound), nil
	case "reference":
		if r.Name.IsZero() {
			return nil, fmt.Errorf("reference has no name")
		}
		return &ReferenceDescriptor{Target: r.Name}, nil
	case "struct":
		d := &StructDescriptor{Name: r.Name, TopLevel: r.TopLevel, Documentation: r.Doc}
		for _, f := range r.Fields {
			typ, err := unmarshalNested(f.Type, "field "+f.Name)
			if err != nil {
				return nil, err
			}
			d.Fields = append(d.Fields, FieldDescriptor{Name: f.Name, Type: typ, Documentation: f.Doc})
		}
		return d, nil
	case "union":
		disc, err := unmarshalNested(r.Discriminator, "discriminator")
		if err != nil {
			return nil, err
		}
		d := &UnionDescriptor{Name: r.Name, Discriminator: disc, TopLevel: r.TopLevel, Documentation: r.Doc}
		for _, b := range r.Branches {
			typ, err := unmarshalNested(b.Type, "branch "+b.Name)
			if err != nil {
				return nil, err
			}
			branch := BranchDescriptor{Name: b.Name, Default: b.Default, Type: typ, Documentation: b.Doc}
			for _, raw := range b.Labels {
				label, err := decodeLabel(raw)
				if err != nil {
					return nil, fmt.Errorf("branch %s: %w", b.Name, err)
				}
				branch.Labels = append(branch.Labels, label)
			}
			d.Branches = append(d.Branches, branch)
		}
		return d, nil
	case "enum":
		d := &EnumDescriptor{Name: r.Name, Documentation: r.Doc}
		for _, m := range r.Members {
			d.Members = append(d.Members, EnumMember{Name: m})
		}
		return d, nil
	case "typedef":
		underlying, err := unmarshalNested(r.Underlying, "underlying")
		if err != nil {
			return nil, err
		}
		return &TypedefDescriptor{Name: r.Name, Underlying: underlying, Documentation: r.Doc}, nil
	case "":
		return nil, fmt.Errorf("descriptor has no kind")
	default:
		return nil, fmt.Errorf("unknown descriptor kind %q", r.Kind)
	}
}

func unmarshalNested(data json.RawMessage, what string) (TypeDescriptor, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, fmt.Errorf("%s: missing type", what)
	}
	td, err := UnmarshalDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return td, nil
}

// decodeLabel normalizes a JSON case label to int64, bool or string.
func decodeLabel(data json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch l := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(l.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("label %s is not an integer", l)
		}
		return n, nil
	case bool, string:
		return l, nil
	default:
		return nil, fmt.Errorf("unsupported label %s", data)
	}
}
