// Package uml resolves the relationships of Java types and renders them as
// PlantUML class diagrams.
package uml

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("umldoc.uml")

type Kind string

const (
	KindClass         Kind = "class"
	KindAbstractClass Kind = "abstract class"
	KindInterface     Kind = "interface"
	KindEnum          Kind = "enum"
	KindAnnotation    Kind = "annotation"
)

// TypeModel is the read-only view over every type discovered by the host.
// Implementations must be safe for concurrent reads.
type TypeModel interface {
	FindType(qualifiedName string) (Type, bool)
}

// Type is one discovered type. Names of related types are returned as
// qualified names which need not resolve in the TypeModel; an empty string
// means absent.
type Type interface {
	QualifiedName() string
	PackageName() string
	Kind() Kind
	Superclass() string
	Interfaces() []string
	ContainingType() string
	// Methods returns the declared methods only, never inherited ones.
	Methods() []Method
	TypeParameters() []string
}

type Method interface {
	Name() string
	IsAbstract() bool
	IsStatic() bool
	Visibility() string
	ReturnType() TypeName
	Parameters() *Parameters
}

// Documented is implemented by types that carry their javadoc comment.
type Documented interface {
	DocComment() string
}
