// Package classfile reads the parts of a JVM class file that describe the
// shape of a type: its names, supertypes, methods, nesting and generic
// signatures. Fields, method bodies and annotations are skipped.
package classfile

import "strings"

const Magic = 0xCAFEBABE

// ClassFile holds names in internal form, e.g. "java/util/Map$Entry".
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  AccessFlags
	Name         string
	// SuperName is empty for java/lang/Object and module descriptors.
	SuperName    string
	Interfaces   []string
	Methods      []MethodInfo
	InnerClasses []InnerClass
	Signature    string
}

type InnerClass struct {
	Name        string
	Outer       string
	SimpleName  string
	AccessFlags AccessFlags
}

type MethodInfo struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Signature   string
	// ParameterNames is only present when compiled with -parameters.
	ParameterNames []string
}

func (m *MethodInfo) IsConstructor() bool       { return m.Name == "<init>" }
func (m *MethodInfo) IsStaticInitializer() bool { return m.Name == "<clinit>" }

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAnnotation() bool { return cf.AccessFlags.IsAnnotation() }
func (cf *ClassFile) IsEnum() bool       { return cf.AccessFlags.IsEnum() }
func (cf *ClassFile) IsModule() bool     { return cf.AccessFlags.IsModule() }

// DeclaringClass returns the internal name of the class this one is a member
// of, or "" for top level, local and anonymous classes.
func (cf *ClassFile) DeclaringClass() string {
	for _, ic := range cf.InnerClasses {
		if ic.Name == cf.Name {
			return ic.Outer
		}
	}
	return ""
}

// IsAnonymous reports whether the class is anonymous or local, judging by
// the compiler generated name.
func (cf *ClassFile) IsAnonymous() bool {
	i := strings.LastIndexByte(cf.Name, '$')
	return i >= 0 && i+1 < len(cf.Name) && cf.Name[i+1] >= '0' && cf.Name[i+1] <= '9'
}

// SourceName turns an internal name into the dotted name used in source,
// e.g. "java/util/Map$Entry" becomes "java.util.Map.Entry".
func SourceName(internal string) string {
	return strings.NewReplacer("/", ".", "$", ".").Replace(internal)
}

type AccessFlags uint16

const (
	AccPublic     AccessFlags = 0x0001
	AccPrivate    AccessFlags = 0x0002
	AccProtected  AccessFlags = 0x0004
	AccStatic     AccessFlags = 0x0008
	AccFinal      AccessFlags = 0x0010
	AccBridge     AccessFlags = 0x0040
	AccVarargs    AccessFlags = 0x0080
	AccInterface  AccessFlags = 0x0200
	AccAbstract   AccessFlags = 0x0400
	AccSynthetic  AccessFlags = 0x1000
	AccAnnotation AccessFlags = 0x2000
	AccEnum       AccessFlags = 0x4000
	AccModule     AccessFlags = 0x8000
)

func (f AccessFlags) IsPublic() bool     { return f&AccPublic != 0 }
func (f AccessFlags) IsPrivate() bool    { return f&AccPrivate != 0 }
func (f AccessFlags) IsProtected() bool  { return f&AccProtected != 0 }
func (f AccessFlags) IsStatic() bool     { return f&AccStatic != 0 }
func (f AccessFlags) IsFinal() bool      { return f&AccFinal != 0 }
func (f AccessFlags) IsBridge() bool     { return f&AccBridge != 0 }
func (f AccessFlags) IsVarargs() bool    { return f&AccVarargs != 0 }
func (f AccessFlags) IsInterface() bool  { return f&AccInterface != 0 }
func (f AccessFlags) IsAbstract() bool   { return f&AccAbstract != 0 }
func (f AccessFlags) IsSynthetic() bool  { return f&AccSynthetic != 0 }
func (f AccessFlags) IsAnnotation() bool { return f&AccAnnotation != 0 }
func (f AccessFlags) IsEnum() bool       { return f&AccEnum != 0 }
func (f AccessFlags) IsModule() bool     { return f&AccModule != 0 }

// Visibility names the access level: public, protected, private or package.
func (f AccessFlags) Visibility() string {
	switch {
	case f.IsPublic():
		return "public"
	case f.IsProtected():
		return "protected"
	case f.IsPrivate():
		return "private"
	default:
		return "package"
	}
}
