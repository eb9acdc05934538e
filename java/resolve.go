package java

import (
	"slices"
	"strings"
)

// Resolve links nested classes to each other and repairs references to
// nested classes written as "pkg.Inner" instead of "pkg.Outer.Inner".
// Models are modified in place.
func Resolve(classes []*ClassModel) {
	LinkEnclosingClasses(classes)
	ResolveInnerClassReferences(classes)
}

// LinkEnclosingClasses makes EnclosingClass and InnerClasses agree: a class
// listed as inner class of another gets that one as enclosing class, and an
// enclosing class lists all classes naming it.
func LinkEnclosingClasses(classes []*ClassModel) {
	byName := make(map[string]*ClassModel, len(classes))
	for _, c := range classes {
		byName[c.Name] = c
	}

	for _, outer := range classes {
		for _, name := range outer.InnerClasses {
			inner, ok := byName[name]
			if !ok || inner.EnclosingClass != "" {
				continue
			}
			inner.EnclosingClass = outer.Name
		}
	}

	for _, inner := range classes {
		if inner.EnclosingClass == "" {
			continue
		}
		outer, ok := byName[inner.EnclosingClass]
		if !ok || slices.Contains(outer.InnerClasses, inner.Name) {
			continue
		}
		outer.InnerClasses = append(outer.InnerClasses, inner.Name)
	}
}

// ResolveInnerClassReferences rewrites supertypes and method types of the
// form "pkg.Inner" to "pkg.Outer.Inner" when Inner is a known nested class
// of that package and no top level pkg.Inner exists.
func ResolveInnerClassReferences(classes []*ClassModel) {
	known := make(map[string]bool, len(classes))
	nested := make(map[string]string)
	for _, c := range classes {
		known[c.Name] = true
		if c.EnclosingClass == "" {
			continue
		}
		key := c.Package + "." + c.SimpleName
		if prev, ok := nested[key]; ok && prev != c.Name {
			// Ambiguous, leave such references alone.
			nested[key] = ""
			continue
		}
		nested[key] = c.Name
	}

	fix := func(name string) string {
		if known[name] {
			return name
		}
		if full := nested[name]; full != "" {
			log.Debugf("Resolved %s to nested class %s.", name, full)
			return full
		}
		return name
	}

	for _, c := range classes {
		c.SuperClass = fix(c.SuperClass)
		for i := range c.Interfaces {
			c.Interfaces[i] = fix(c.Interfaces[i])
		}
		for i := range c.Methods {
			m := &c.Methods[i]
			m.ReturnType = fixTypeName(m.ReturnType, fix)
			for j := range m.Parameters {
				m.Parameters[j].Type = fixTypeName(m.Parameters[j].Type, fix)
			}
		}
	}
}

// fixTypeName applies fix to the base name of a possibly generic or array
// type, leaving type arguments alone.
func fixTypeName(typ string, fix func(string) string) string {
	end := strings.IndexAny(typ, "<[")
	if end < 0 {
		end = len(typ)
	}
	if !strings.Contains(typ[:end], ".") {
		return typ
	}
	return fix(typ[:end]) + typ[end:]
}
