package uml

import (
	"github.com/dhamidi/umldoc/java/javadoc"
)

// legacyTags maps the UmlGraph class comment tags to their notation.
var legacyTags = []struct {
	name     string
	notation Notation
}{
	{"extends", Extension},
	{"implements", Implementation},
	{"assoc", Association},
	{"navassoc", NavigableAssociation},
	{"has", Aggregation},
	{"composed", Composition},
	{"depend", Dependency},
}

// LegacyTags turns UmlGraph-style tags in a type's doc comment into
// references. Types that do not implement Documented contribute nothing.
//
//	@extends Base                  Base <|-- Type
//	@has 1 wheels 4 Wheel          Type "1" o-- "4" Wheel : wheels
//	@depend - - - Clock            Type ..> Clock
//
// Cardinalities and labels of "-" are left out.
type LegacyTags struct {
	model TypeModel
}

func NewLegacyTags(model TypeModel) *LegacyTags {
	return &LegacyTags{model: model}
}

func (l *LegacyTags) ReferencesFor(t Type) []Reference {
	doc, ok := t.(Documented)
	if !ok {
		return nil
	}
	comment := doc.DocComment()
	if comment == "" {
		return nil
	}

	var refs []Reference
	for _, tag := range javadoc.BlockTags(comment) {
		for _, legacy := range legacyTags {
			if tag.Name != legacy.name {
				continue
			}
			if ref, ok := l.referenceFor(t, legacy.notation, tag); ok {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

func (l *LegacyTags) referenceFor(t Type, notation Notation, tag javadoc.BlockTag) (Reference, bool) {
	referent := t.QualifiedName()
	fields := tag.Fields()

	var cardinality1, label, cardinality2, target string
	switch len(fields) {
	case 1:
		target = fields[0]
	case 4:
		cardinality1, label, cardinality2, target = fields[0], fields[1], fields[2], fields[3]
	default:
		log.Warningf("Ignoring malformed @%s tag on %q: %q.", tag.Name, referent, tag.Content)
		return Reference{}, false
	}
	target = l.qualify(t, target)

	var ref Reference
	if notation == Extension || notation == Implementation {
		ref = NewReference(From(target).WithCardinality(dash(cardinality2)), notation,
			To(referent).WithCardinality(dash(cardinality1)))
	} else {
		ref = NewReference(From(referent).WithCardinality(dash(cardinality1)), notation,
			To(target).WithCardinality(dash(cardinality2)))
	}
	if note := dash(label); note != "" {
		ref = ref.AddNote(note)
	}
	log.Debugf("Added legacy @%s reference %s.", tag.Name, ref)
	return ref, true
}

// qualify resolves a simple name against the type's own package when such a
// type exists.
func (l *LegacyTags) qualify(t Type, name string) string {
	if l.model == nil || t.PackageName() == "" {
		return name
	}
	if _, ok := l.model.FindType(name); ok {
		return name
	}
	candidate := t.PackageName() + "." + name
	if _, ok := l.model.FindType(candidate); ok {
		return candidate
	}
	return name
}

func dash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
