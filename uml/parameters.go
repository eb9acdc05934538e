package uml

import (
	"strings"

	"github.com/dhamidi/umldoc/config"
)

// TypeName is a type as written in a signature, e.g. "java.util.List<String>[]".
type TypeName struct {
	Qualified string
	Simple    string
}

func NewTypeName(qualified string) TypeName {
	return TypeName{Qualified: qualified, Simple: simplifyTypeName(qualified)}
}

// simplifyTypeName drops package prefixes from every name in a generic type,
// so "java.util.Map<java.lang.String, a.B>" becomes "Map<String, B>".
func simplifyTypeName(qualified string) string {
	var sb strings.Builder
	start := 0
	flush := func(end int) {
		word := qualified[start:end]
		if i := strings.LastIndexByte(word, '.'); i >= 0 {
			word = word[i+1:]
		}
		sb.WriteString(word)
	}
	for i := 0; i < len(qualified); i++ {
		switch qualified[i] {
		case '<', '>', ',', ' ', '[', ']', '?':
			flush(i)
			sb.WriteByte(qualified[i])
			start = i + 1
		}
	}
	flush(len(qualified))
	return sb.String()
}

func (t TypeName) Render(display config.TypeDisplay) string {
	switch display {
	case config.TypeDisplayNone:
		return ""
	case config.TypeDisplayFull:
		return t.Qualified
	default:
		return t.Simple
	}
}

func (t TypeName) Compare(other TypeName) int {
	return strings.Compare(t.Qualified, other.Qualified)
}

type Parameter struct {
	Name string
	Type TypeName
}

// Parameters is the parameter list of one method.
type Parameters struct {
	params  []Parameter
	varargs bool
}

func NewParameters() *Parameters {
	return &Parameters{}
}

func (p *Parameters) Add(name string, typ TypeName) *Parameters {
	p.params = append(p.params, Parameter{Name: name, Type: typ})
	return p
}

// Varargs marks the last parameter as variable arity.
func (p *Parameters) Varargs(varargs bool) *Parameters {
	p.varargs = varargs
	return p
}

func (p *Parameters) Len() int { return len(p.params) }

func (p *Parameters) Render(cfg config.MethodConfig) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, param := range p.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.renderParameter(&sb, cfg, param, i == len(p.params)-1)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p *Parameters) renderParameter(sb *strings.Builder, cfg config.MethodConfig, param Parameter, last bool) {
	sep := ""
	if param.Name != "" && cfg.ParamNames == config.ParamNamesBeforeType {
		sb.WriteString(param.Name)
		sep = ": "
	}
	if typ := param.Type.Render(cfg.ParamTypes); typ != "" {
		if p.varargs && last && strings.HasSuffix(typ, "[]") {
			typ = strings.TrimSuffix(typ, "[]") + "..."
		}
		sb.WriteString(sep)
		sb.WriteString(typ)
		sep = ": "
	}
	if param.Name != "" && cfg.ParamNames == config.ParamNamesAfterType {
		sb.WriteString(sep)
		sb.WriteString(param.Name)
	}
}

// Compare orders by parameter count, then by the type of each position.
// It disambiguates overloads when sorting methods.
func (p *Parameters) Compare(other *Parameters) int {
	if d := len(p.params) - len(other.params); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	for i := range p.params {
		if d := p.params[i].Type.Compare(other.params[i].Type); d != 0 {
			return d
		}
	}
	return 0
}
