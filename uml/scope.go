package uml

import (
	"strings"

	"github.com/dhamidi/umldoc/java"
)

// Scope is the state shared by everything rendered into one diagram: the
// referring type's package and the types already declared. A Scope must not
// be reused for another diagram.
type Scope struct {
	model       TypeModel
	packageName string
	encountered map[string]bool
}

func NewScope(model TypeModel, referrer Type) *Scope {
	if model == nil {
		panic("uml: scope without type model")
	}
	if referrer == nil {
		panic("uml: scope without referring type")
	}
	return &Scope{
		model:       model,
		packageName: referrer.PackageName(),
		encountered: make(map[string]bool),
	}
}

// Encounter records the qualified name as declared in this diagram. It
// reports false when it was declared before.
func (s *Scope) Encounter(qualifiedName string) bool {
	if s.encountered[qualifiedName] {
		return false
	}
	s.encountered[qualifiedName] = true
	return true
}

// Simplify returns the name relative to the referring type's package: types
// in that package lose the package prefix, all others stay qualified.
func (s *Scope) Simplify(qualifiedName string) string {
	if s.packageName == "" {
		return qualifiedName
	}
	if s.packageOf(qualifiedName) != s.packageName {
		return qualifiedName
	}
	return strings.TrimPrefix(qualifiedName, s.packageName+".")
}

func (s *Scope) packageOf(qualifiedName string) string {
	if t, ok := s.model.FindType(qualifiedName); ok {
		return t.PackageName()
	}
	return java.PackageOf(qualifiedName)
}
