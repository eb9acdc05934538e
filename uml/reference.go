package uml

import (
	"fmt"
	"strings"
)

// Notation is the PlantUML arrow of a relationship. Arrows are written
// reversed, so "B extends A" is "A <|-- B".
type Notation string

const (
	Extension             Notation = "<|--"
	Implementation        Notation = "<|.."
	ReverseImplementation Notation = "..|>"
	Containment           Notation = "+--"
	Association           Notation = "--"
	NavigableAssociation  Notation = "-->"
	Aggregation           Notation = "o--"
	Composition           Notation = "*--"
	Dependency            Notation = "..>"
)

func (n Notation) isInterfaceImplementation() bool {
	return n == Implementation || n == ReverseImplementation
}

type Side struct {
	QualifiedName string
	Cardinality   string
}

func From(qualifiedName string) Side { return Side{QualifiedName: qualifiedName} }
func To(qualifiedName string) Side   { return Side{QualifiedName: qualifiedName} }

func (s Side) WithCardinality(cardinality string) Side {
	s.Cardinality = cardinality
	return s
}

// Reference is an immutable relationship between two types.
//
// AddNote returns a new value; a Reference already stored in a ReferenceSet
// is not updated by adding a note to a copy of it. Re-insert it if needed.
type Reference struct {
	From  Side
	To    Side
	Type  Notation
	notes []string
}

func NewReference(from Side, typ Notation, to Side) Reference {
	if from.QualifiedName == "" {
		panic("uml: reference from an empty qualified name")
	}
	if to.QualifiedName == "" {
		panic("uml: reference to an empty qualified name")
	}
	if typ == "" {
		panic("uml: reference without notation")
	}
	return Reference{From: from, To: to, Type: typ}
}

func (r Reference) IsSelfReference() bool {
	return r.From.QualifiedName == r.To.QualifiedName
}

func (r Reference) Notes() []string {
	notes := make([]string, len(r.notes))
	copy(notes, r.notes)
	return notes
}

func (r Reference) AddNote(note string) Reference {
	notes := make([]string, len(r.notes), len(r.notes)+1)
	copy(notes, r.notes)
	r.notes = append(notes, note)
	return r
}

// Equal ignores notes.
func (r Reference) Equal(other Reference) bool {
	return r.key() == other.key()
}

type referenceKey struct {
	from, to Side
	typ      Notation
}

func (r Reference) key() referenceKey {
	return referenceKey{from: r.From, to: r.To, typ: r.Type}
}

func (r Reference) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %q %s %q %s", r.From.QualifiedName, r.From.Cardinality, r.Type, r.To.Cardinality, r.To.QualifiedName)
	if len(r.notes) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(r.notes, `\n`))
	}
	return sb.String()
}

// ReferenceSet keeps references in insertion order, ignoring later additions
// equal to one already present.
type ReferenceSet struct {
	refs  []Reference
	index map[referenceKey]int
}

func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{index: make(map[referenceKey]int)}
}

// Add reports whether ref was not yet present.
func (s *ReferenceSet) Add(ref Reference) bool {
	k := ref.key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.refs)
	s.refs = append(s.refs, ref)
	return true
}

func (s *ReferenceSet) Len() int { return len(s.refs) }

func (s *ReferenceSet) References() []Reference {
	refs := make([]Reference, len(s.refs))
	copy(refs, s.refs)
	return refs
}
