// Package java holds the class models diagrams are drawn from. Models are
// read from compiled class files or from YAML/JSON model documents.
package java

import (
	"slices"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("umldoc.java")

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

type ClassModel struct {
	Name           string        `yaml:"name" json:"name"`
	SimpleName     string        `yaml:"simple_name,omitempty" json:"simple_name,omitempty"`
	Package        string        `yaml:"package,omitempty" json:"package,omitempty"`
	SuperClass     string        `yaml:"super_class,omitempty" json:"super_class,omitempty"`
	Interfaces     []string      `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Visibility     Visibility    `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Kind           ClassKind     `yaml:"kind,omitempty" json:"kind,omitempty"`
	IsAbstract     bool          `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	IsFinal        bool          `yaml:"final,omitempty" json:"final,omitempty"`
	EnclosingClass string        `yaml:"enclosing_class,omitempty" json:"enclosing_class,omitempty"`
	InnerClasses   []string      `yaml:"inner_classes,omitempty" json:"inner_classes,omitempty"`
	TypeParameters []string      `yaml:"type_parameters,omitempty" json:"type_parameters,omitempty"`
	Javadoc        string        `yaml:"javadoc,omitempty" json:"javadoc,omitempty"`
	Methods        []MethodModel `yaml:"methods,omitempty" json:"methods,omitempty"`
	// Source is the file or archive entry the model was read from.
	Source string `yaml:"-" json:"-"`
}

type MethodModel struct {
	Name       string           `yaml:"name" json:"name"`
	ReturnType string           `yaml:"return_type,omitempty" json:"return_type,omitempty"`
	Parameters []ParameterModel `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Visibility Visibility       `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	IsStatic   bool             `yaml:"static,omitempty" json:"static,omitempty"`
	IsAbstract bool             `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	IsVarargs  bool             `yaml:"varargs,omitempty" json:"varargs,omitempty"`
}

type ParameterModel struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Type string `yaml:"type" json:"type"`
}

// IsVoid reports whether the method returns nothing. An empty return type
// counts as void.
func (m MethodModel) IsVoid() bool {
	return m.ReturnType == "" || m.ReturnType == "void"
}

// Clone returns a deep copy of c. Resolving the copy leaves c untouched.
func (c *ClassModel) Clone() *ClassModel {
	clone := *c
	clone.Interfaces = slices.Clone(c.Interfaces)
	clone.InnerClasses = slices.Clone(c.InnerClasses)
	clone.TypeParameters = slices.Clone(c.TypeParameters)
	if c.Methods != nil {
		clone.Methods = make([]MethodModel, len(c.Methods))
		for i, m := range c.Methods {
			m.Parameters = slices.Clone(m.Parameters)
			clone.Methods[i] = m
		}
	}
	return &clone
}

func (c *ClassModel) IsInterface() bool {
	return c.Kind == ClassKindInterface || c.Kind == ClassKindAnnotation
}

// Normalize fills in the fields that can be derived from Name and applies
// defaults, so hand written models only need a name.
func (c *ClassModel) Normalize() {
	if c.Kind == "" {
		c.Kind = ClassKindClass
	}
	if c.Visibility == "" {
		c.Visibility = VisibilityPublic
	}
	if c.Package == "" {
		c.Package = PackageOf(c.Name)
	}
	if c.SimpleName == "" {
		c.SimpleName = strings.TrimPrefix(c.Name, c.Package+".")
		if i := strings.LastIndexByte(c.SimpleName, '.'); i >= 0 {
			c.SimpleName = c.SimpleName[i+1:]
		}
	}
	for i := range c.Methods {
		if c.Methods[i].Visibility == "" {
			c.Methods[i].Visibility = VisibilityPublic
		}
	}
}

// PackageOf guesses the package of a qualified name: everything before the
// first segment starting with an upper case letter.
func PackageOf(qualifiedName string) string {
	parts := strings.Split(qualifiedName, ".")
	for i, part := range parts {
		if part != "" && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return ""
}
