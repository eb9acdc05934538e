package codebase

import (
	"github.com/dhamidi/umldoc/java"
	"github.com/dhamidi/umldoc/uml"
)

// classType presents a class model as a uml.Type. It also implements
// uml.Documented so doc comment tags reach the diagram.
type classType struct {
	model *java.ClassModel
}

func NewType(model *java.ClassModel) uml.Type {
	return classType{model: model}
}

func (t classType) QualifiedName() string    { return t.model.Name }
func (t classType) PackageName() string      { return t.model.Package }
func (t classType) Superclass() string       { return t.model.SuperClass }
func (t classType) Interfaces() []string     { return t.model.Interfaces }
func (t classType) ContainingType() string   { return t.model.EnclosingClass }
func (t classType) TypeParameters() []string { return t.model.TypeParameters }
func (t classType) DocComment() string       { return t.model.Javadoc }

func (t classType) Kind() uml.Kind {
	switch t.model.Kind {
	case java.ClassKindInterface:
		return uml.KindInterface
	case java.ClassKindEnum:
		return uml.KindEnum
	case java.ClassKindAnnotation:
		return uml.KindAnnotation
	}
	if t.model.IsAbstract {
		return uml.KindAbstractClass
	}
	return uml.KindClass
}

func (t classType) Methods() []uml.Method {
	methods := make([]uml.Method, len(t.model.Methods))
	for i := range t.model.Methods {
		methods[i] = method{model: &t.model.Methods[i]}
	}
	return methods
}

type method struct {
	model *java.MethodModel
}

func (m method) Name() string       { return m.model.Name }
func (m method) IsAbstract() bool   { return m.model.IsAbstract }
func (m method) IsStatic() bool     { return m.model.IsStatic }
func (m method) Visibility() string { return string(m.model.Visibility) }

func (m method) ReturnType() uml.TypeName {
	if m.model.IsVoid() {
		return uml.NewTypeName("void")
	}
	return uml.NewTypeName(m.model.ReturnType)
}

func (m method) Parameters() *uml.Parameters {
	params := uml.NewParameters()
	for _, p := range m.model.Parameters {
		params.Add(p.Name, uml.NewTypeName(p.Type))
	}
	return params.Varargs(m.model.IsVarargs)
}
