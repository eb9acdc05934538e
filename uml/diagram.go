package uml

import (
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/umldoc/config"
)

// ClassDiagram renders the diagram of one documented type: the type itself
// with its members, then every resolved reference.
type ClassDiagram struct {
	model    TypeModel
	subject  Type
	resolver *ReferenceResolver
	config   *config.Config
}

func NewClassDiagram(model TypeModel, subject Type, resolver *ReferenceResolver, cfg *config.Config) *ClassDiagram {
	if model == nil {
		panic("uml: class diagram without type model")
	}
	if subject == nil {
		panic("uml: class diagram without documented type")
	}
	if resolver == nil {
		resolver = NewReferenceResolver()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &ClassDiagram{model: model, subject: subject, resolver: resolver, config: cfg}
}

func (d *ClassDiagram) Subject() Type { return d.subject }

// Renderers resolves the references of the subject. Every call resolves
// afresh.
func (d *ClassDiagram) Renderers() []*ReferenceRenderer {
	set := NewRendererSet()
	options := RenderOptionsFrom(d.config)
	for _, ref := range d.resolver.Resolve(d.subject, d.config.Excluded()) {
		set.Add(NewReferenceRenderer(d.model, d.subject, ref, options))
	}
	return set.Renderers()
}

func (d *ClassDiagram) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	out := NewIndentingWriter(cw, d.config.Indent())
	scope := NewScope(d.model, d.subject)

	out.Append("@startuml").Newline()
	out.Append("set namespaceSeparator none").Newline()
	out.Append("hide empty fields").Newline()
	out.Append("hide empty methods").Newline().Newline()

	d.writeSubject(out, scope)

	for _, r := range d.Renderers() {
		r.WriteTo(out, scope)
	}

	out.Append("@enduml").Newline()
	return cw.n, out.Err()
}

func (d *ClassDiagram) writeSubject(out *IndentingWriter, scope *Scope) {
	name := d.subject.QualifiedName()
	scope.Encounter(name)

	out.Append(string(d.subject.Kind())).Whitespace().Append(scope.Simplify(name))
	writeGenerics(out, d.subject)

	methods := sortedMethods(d.subject.Methods())
	if len(methods) > 0 {
		out.Whitespace().Append("{").Newline()
		inner := out.Indented()
		for _, m := range methods {
			writeMethod(inner, m, d.config.Methods)
		}
		out.Append("}")
	}
	out.Newline().Newline()
}

func sortedMethods(methods []Method) []Method {
	sorted := make([]Method, len(methods))
	copy(sorted, methods)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name() != sorted[j].Name() {
			return sorted[i].Name() < sorted[j].Name()
		}
		return sorted[i].Parameters().Compare(sorted[j].Parameters()) < 0
	})
	return sorted
}

func writeGenerics(out *IndentingWriter, t Type) {
	if params := t.TypeParameters(); len(params) > 0 {
		out.Append("<" + strings.Join(params, ", ") + ">")
	}
}

func writeMethod(out *IndentingWriter, m Method, cfg config.MethodConfig) {
	if m.IsAbstract() {
		out.Append("{abstract}").Whitespace()
	}
	if m.IsStatic() {
		out.Append("{static}").Whitespace()
	}
	out.Append(visibilitySymbol(m.Visibility()) + m.Name() + m.Parameters().Render(cfg))
	if ret := m.ReturnType().Render(cfg.ReturnType); ret != "" && ret != "void" {
		out.Append(": " + ret)
	}
	out.Newline()
}

func visibilitySymbol(visibility string) string {
	switch visibility {
	case "public":
		return "+"
	case "protected":
		return "#"
	case "private":
		return "-"
	default:
		return "~"
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
