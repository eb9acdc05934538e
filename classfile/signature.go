package classfile

import (
	"fmt"
	"strings"
)

// MethodSignature is a method descriptor or generic signature rendered as
// source types, e.g. "java.util.List<? extends T>" or "int[]".
type MethodSignature struct {
	TypeParameters []string
	Parameters     []string
	Return         string
}

// ParseMethodSignature accepts both plain descriptors like "(I[J)V" and
// generic signatures like "<T:Ljava/lang/Object;>(TT;)Ljava/util/List<TT;>;".
// Thrown types are ignored.
func ParseMethodSignature(signature string) (*MethodSignature, error) {
	p := &signatureParser{s: signature}
	ms := &MethodSignature{}
	var err error
	if ms.TypeParameters, err = p.typeParameters(); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		param, err := p.javaType()
		if err != nil {
			return nil, err
		}
		ms.Parameters = append(ms.Parameters, param)
	}
	p.pos++
	if p.peek() == 'V' {
		p.pos++
		ms.Return = "void"
	} else if ms.Return, err = p.javaType(); err != nil {
		return nil, err
	}
	return ms, nil
}

// ClassTypeParameters returns the names of the type parameters declared by a
// class signature, e.g. ["K", "V"] for Map.
func ClassTypeParameters(signature string) ([]string, error) {
	p := &signatureParser{s: signature}
	return p.typeParameters()
}

type signatureParser struct {
	s   string
	pos int
}

func (p *signatureParser) peek() byte {
	if p.pos < len(p.s) {
		return p.s[p.pos]
	}
	return 0
}

func (p *signatureParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *signatureParser) errorf(format string, args ...any) error {
	return fmt.Errorf("signature %q at offset %d: %s", p.s, p.pos, fmt.Sprintf(format, args...))
}

func (p *signatureParser) identifier() string {
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune(".;[/<>:", rune(p.s[p.pos])) {
		p.pos++
	}
	return strings.ReplaceAll(p.s[start:p.pos], "$", ".")
}

func (p *signatureParser) typeParameters() ([]string, error) {
	if p.peek() != '<' {
		return nil, nil
	}
	p.pos++
	var names []string
	for p.peek() != '>' {
		name := p.identifier()
		if name == "" {
			return nil, p.errorf("expected type parameter name")
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		// The class bound may be empty, interface bounds follow a second colon.
		if c := p.peek(); c == 'L' || c == 'T' || c == '[' {
			if _, err := p.referenceType(); err != nil {
				return nil, err
			}
		}
		for p.peek() == ':' {
			p.pos++
			if _, err := p.referenceType(); err != nil {
				return nil, err
			}
		}
		names = append(names, name)
	}
	p.pos++
	return names, nil
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

func (p *signatureParser) javaType() (string, error) {
	if base, ok := baseTypes[p.peek()]; ok {
		p.pos++
		return base, nil
	}
	return p.referenceType()
}

func (p *signatureParser) referenceType() (string, error) {
	switch p.peek() {
	case 'L':
		return p.classType()
	case 'T':
		p.pos++
		name := p.identifier()
		if err := p.expect(';'); err != nil {
			return "", err
		}
		return name, nil
	case '[':
		p.pos++
		elem, err := p.javaType()
		if err != nil {
			return "", err
		}
		return elem + "[]", nil
	default:
		return "", p.errorf("expected reference type")
	}
}

func (p *signatureParser) classType() (string, error) {
	p.pos++
	var sb strings.Builder
	for {
		sb.WriteString(p.identifier())
		switch p.peek() {
		case '/', '.':
			sb.WriteByte('.')
			p.pos++
		case '<':
			args, err := p.typeArguments()
			if err != nil {
				return "", err
			}
			sb.WriteString(args)
		case ';':
			p.pos++
			return sb.String(), nil
		default:
			return "", p.errorf("unterminated class type")
		}
	}
}

func (p *signatureParser) typeArguments() (string, error) {
	p.pos++
	var args []string
	for p.peek() != '>' {
		var arg string
		var err error
		switch p.peek() {
		case 0:
			return "", p.errorf("unterminated type arguments")
		case '*':
			p.pos++
			arg = "?"
		case '+':
			p.pos++
			arg, err = p.referenceType()
			arg = "? extends " + arg
		case '-':
			p.pos++
			arg, err = p.referenceType()
			arg = "? super " + arg
		default:
			arg, err = p.referenceType()
		}
		if err != nil {
			return "", err
		}
		args = append(args, arg)
	}
	p.pos++
	return "<" + strings.Join(args, ", ") + ">", nil
}
