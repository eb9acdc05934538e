package java

import (
	"io"
	"os"
	"strings"

	"github.com/dhamidi/umldoc/classfile"
)

func ClassModelFromFile(path string) (*ClassModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	model, err := ClassModelFromReader(f)
	if model != nil {
		model.Source = path
	}
	return model, err
}

// ClassModelFromReader returns nil without an error for class files that
// never get a diagram: modules, package-info, anonymous and local classes.
func ClassModelFromReader(r io.Reader) (*ClassModel, error) {
	cf, err := classfile.Parse(r)
	if err != nil {
		return nil, err
	}
	return ClassModelFromClassFile(cf), nil
}

func ClassModelFromClassFile(cf *classfile.ClassFile) *ClassModel {
	if cf.IsModule() || cf.IsAnonymous() || strings.HasSuffix(cf.Name, "/package-info") {
		log.Debugf("Skipping class file %s.", cf.Name)
		return nil
	}

	pkg := ""
	if i := strings.LastIndexByte(cf.Name, '/'); i >= 0 {
		pkg = classfile.SourceName(cf.Name[:i])
	}

	model := &ClassModel{
		Name:       classfile.SourceName(cf.Name),
		Package:    pkg,
		SuperClass: classfile.SourceName(cf.SuperName),
		Visibility: visibilityFromAccessFlags(cf.AccessFlags),
		Kind:       classKindFromClassFile(cf),
		IsFinal:    cf.AccessFlags.IsFinal(),
	}
	model.SimpleName = model.Name[strings.LastIndexByte(model.Name, '.')+1:]
	// Interfaces carry the abstract flag too; only classes are drawn as abstract.
	model.IsAbstract = cf.AccessFlags.IsAbstract() && !cf.AccessFlags.IsInterface()

	for _, iface := range cf.Interfaces {
		model.Interfaces = append(model.Interfaces, classfile.SourceName(iface))
	}
	if cf.IsAnnotation() {
		// Every annotation implements java.lang.annotation.Annotation.
		model.Interfaces = nil
	}

	if outer := cf.DeclaringClass(); outer != "" {
		model.EnclosingClass = classfile.SourceName(outer)
	}
	for _, ic := range cf.InnerClasses {
		if ic.Outer == cf.Name && ic.SimpleName != "" {
			model.InnerClasses = append(model.InnerClasses, classfile.SourceName(ic.Name))
		}
	}

	if cf.Signature != "" {
		params, err := classfile.ClassTypeParameters(cf.Signature)
		if err != nil {
			log.Noticef("Ignoring class signature of %s: %s", model.Name, err)
		}
		model.TypeParameters = params
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.AccessFlags.IsSynthetic() || m.AccessFlags.IsBridge() || m.IsConstructor() || m.IsStaticInitializer() {
			continue
		}
		if cf.IsEnum() && m.AccessFlags.IsStatic() && (m.Name == "values" || m.Name == "valueOf") {
			continue
		}
		method, err := methodModelFromMethodInfo(m)
		if err != nil {
			log.Noticef("Skipping method %s of %s: %s", m.Name, model.Name, err)
			continue
		}
		model.Methods = append(model.Methods, method)
	}

	return model
}

func visibilityFromAccessFlags(flags classfile.AccessFlags) Visibility {
	return Visibility(flags.Visibility())
}

func classKindFromClassFile(cf *classfile.ClassFile) ClassKind {
	switch {
	case cf.IsAnnotation():
		return ClassKindAnnotation
	case cf.IsEnum():
		return ClassKindEnum
	case cf.IsInterface():
		return ClassKindInterface
	case cf.SuperName == "java/lang/Record":
		return ClassKindRecord
	default:
		return ClassKindClass
	}
}

// methodModelFromMethodInfo prefers the generic signature and falls back to
// the erased descriptor when it is missing or does not parse.
func methodModelFromMethodInfo(m *classfile.MethodInfo) (MethodModel, error) {
	model := MethodModel{
		Name:       m.Name,
		Visibility: visibilityFromAccessFlags(m.AccessFlags),
		IsStatic:   m.AccessFlags.IsStatic(),
		IsAbstract: m.AccessFlags.IsAbstract(),
		IsVarargs:  m.AccessFlags.IsVarargs(),
	}

	var sig *classfile.MethodSignature
	var err error
	if m.Signature != "" {
		if sig, err = classfile.ParseMethodSignature(m.Signature); err != nil {
			log.Debugf("Falling back to descriptor of %s: %s", m.Name, err)
		}
	}
	if sig == nil {
		if sig, err = classfile.ParseMethodSignature(m.Descriptor); err != nil {
			return model, err
		}
	}

	model.ReturnType = sig.Return
	for i, typ := range sig.Parameters {
		param := ParameterModel{Type: typ}
		if i < len(m.ParameterNames) {
			param.Name = m.ParameterNames[i]
		}
		model.Parameters = append(model.Parameters, param)
	}
	return model, nil
}
