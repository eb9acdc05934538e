package java

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"gopkg.in/yaml.v3"
)

// Document is a hand written or exported set of class models.
//
//	classes:
//	  - name: com.example.Dog
//	    super_class: com.example.Animal
//	    interfaces: [com.example.pets.Pet]
type Document struct {
	Classes []*ClassModel `yaml:"classes" json:"classes"`
}

// IsDocument reports whether the path names a model document by extension.
func IsDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".jsonc":
		return true
	}
	return false
}

func ClassModelsFromDocument(path string) ([]*ClassModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	classes, err := ParseDocument(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, c := range classes {
		c.Source = path
	}
	return classes, nil
}

// ParseDocument decodes a document in the format named by ext (".yaml",
// ".yml", ".json" or ".jsonc") and normalizes every model in it.
func ParseDocument(data []byte, ext string) ([]*ClassModel, error) {
	var doc Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %q", ext)
	}

	seen := make(map[string]bool, len(doc.Classes))
	for i, c := range doc.Classes {
		if c == nil || c.Name == "" {
			return nil, fmt.Errorf("class %d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("class %s is declared twice", c.Name)
		}
		seen[c.Name] = true
		c.Normalize()
	}
	return doc.Classes, nil
}
