package uml

import (
	"github.com/dhamidi/umldoc/config"
)

const unknownTypeMarker = "<<(?,orchid)>>"

type RenderOptions struct {
	IncludeAbstractSuperclassMethods bool
	Methods                          config.MethodConfig
}

func RenderOptionsFrom(cfg *config.Config) RenderOptions {
	return RenderOptions{
		IncludeAbstractSuperclassMethods: cfg.IncludeAbstractSuperclassMethods,
		Methods:                          cfg.Methods,
	}
}

// ReferenceRenderer writes one reference into a diagram, declaring the
// types at both ends first when the diagram has not seen them yet.
type ReferenceRenderer struct {
	model     TypeModel
	referrer  Type
	subject   Type
	reference Reference
	options   RenderOptions
	children  []Method
}

func NewReferenceRenderer(model TypeModel, referrer Type, reference Reference, options RenderOptions) *ReferenceRenderer {
	if model == nil {
		panic("uml: reference renderer without type model")
	}
	if referrer == nil {
		panic("uml: reference renderer without referring type")
	}
	r := &ReferenceRenderer{
		model:     model,
		referrer:  referrer,
		reference: reference,
		options:   options,
	}
	r.subject = r.referredType()
	if !reference.IsSelfReference() &&
		options.IncludeAbstractSuperclassMethods &&
		r.subject.QualifiedName() != referrer.QualifiedName() {
		for _, m := range r.subject.Methods() {
			if m.IsAbstract() {
				r.children = append(r.children, m)
			}
		}
	}
	return r
}

// referredType looks up the far end of the reference, trying To before From
// and skipping the referrer itself. It falls back to the referrer when
// neither end resolves.
func (r *ReferenceRenderer) referredType() Type {
	for _, side := range []Side{r.reference.To, r.reference.From} {
		if side.QualifiedName == r.referrer.QualifiedName() {
			continue
		}
		if t, ok := r.model.FindType(side.QualifiedName); ok {
			return t
		}
	}
	return r.referrer
}

func (r *ReferenceRenderer) Reference() Reference { return r.reference }

// Subject is the type whose members this renderer may pull into the diagram.
func (r *ReferenceRenderer) Subject() Type { return r.subject }

// Children are the abstract methods collected from the subject.
func (r *ReferenceRenderer) Children() []Method { return r.children }

func (r *ReferenceRenderer) IsSelfReference() bool { return r.reference.IsSelfReference() }

// AddNote annotates the rendered reference. Renderers already stored in a
// RendererSet keep their position since notes do not affect equality.
func (r *ReferenceRenderer) AddNote(note string) {
	r.reference = r.reference.AddNote(note)
}

func (r *ReferenceRenderer) Equal(other *ReferenceRenderer) bool {
	return other != nil && r.reference.Equal(other.reference)
}

func (r *ReferenceRenderer) guessClassOrInterface() string {
	if r.reference.Type.isInterfaceImplementation() {
		return string(KindInterface)
	}
	return string(KindClass)
}

func (r *ReferenceRenderer) WriteTypeDeclarationsTo(out *IndentingWriter, scope *Scope) *IndentingWriter {
	for _, side := range []Side{r.reference.From, r.reference.To} {
		if !scope.Encounter(side.QualifiedName) {
			log.Debugf("Not generating type declaration for %q; type was previously encountered in this diagram.", side.QualifiedName)
			continue
		}
		typeInfo, ok := r.model.FindType(side.QualifiedName)
		if !ok {
			log.Debugf("Generating 'unknown' type declaration for %q; we only have a type name as declaration.", side.QualifiedName)
			out.Append(r.guessClassOrInterface()).
				Whitespace().Append(scope.Simplify(side.QualifiedName)).
				Whitespace().Append(unknownTypeMarker).
				Newline()
			continue
		}

		log.Debugf("Generating type declaration for %q...", typeInfo.QualifiedName())
		out.Append(string(typeInfo.Kind())).
			Whitespace().Append(scope.Simplify(typeInfo.QualifiedName()))
		writeGenerics(out, typeInfo)
		if len(r.children) > 0 && typeInfo.QualifiedName() == r.subject.QualifiedName() {
			out.Whitespace().Append("{").Newline()
			inner := out.Indented()
			for _, m := range r.children {
				writeMethod(inner, m, r.options.Methods)
			}
			out.Append("}")
		}
		out.Newline()
	}
	return out
}

func (r *ReferenceRenderer) WriteTo(out *IndentingWriter, scope *Scope) *IndentingWriter {
	r.WriteTypeDeclarationsTo(out, scope)

	ref := r.reference
	log.Debugf("Generating reference: %s...", ref)
	out.Append(scope.Simplify(ref.From.QualifiedName)).
		Whitespace().Append(quoted(ref.From.Cardinality)).
		Whitespace().Append(string(ref.Type)).
		Whitespace().Append(quoted(ref.To.Cardinality)).
		Whitespace().Append(scope.Simplify(ref.To.QualifiedName))

	sep := ": "
	for _, note := range ref.notes {
		out.Append(sep).Append(note)
		sep = `\n`
	}
	return out.Newline().Newline()
}

func quoted(s string) string {
	return `"` + s + `"`
}

// RendererSet keeps renderers in insertion order, one per distinct reference.
type RendererSet struct {
	renderers []*ReferenceRenderer
	index     map[referenceKey]int
}

func NewRendererSet() *RendererSet {
	return &RendererSet{index: make(map[referenceKey]int)}
}

func (s *RendererSet) Add(r *ReferenceRenderer) bool {
	k := r.reference.key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.renderers)
	s.renderers = append(s.renderers, r)
	return true
}

func (s *RendererSet) Renderers() []*ReferenceRenderer {
	return s.renderers
}
