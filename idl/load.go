package idl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a serialized descriptor document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unrecognized schema file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadSchema reads a descriptor document from disk.
func LoadSchema(path string) (*Schema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	schema, err := ParseSchema(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if schema.Module == "" {
		schema.Module = filepath.Base(path)
	}
	return schema, nil
}

// ParseSchema decodes a descriptor document. YAML documents use the same
// shape as JSON documents.
func ParseSchema(data []byte, format Format) (*Schema, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("yaml document is not representable as json: %w", err)
		}
		data = converted
	default:
		return nil, fmt.Errorf("unknown schema format %q", format)
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
