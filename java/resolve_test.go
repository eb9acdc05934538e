package java

import (
	"slices"
	"testing"
)

func TestLinkEnclosingClasses(t *testing.T) {
	outer := &ClassModel{Name: "com.example.Car", InnerClasses: []string{"com.example.Car.Wheel"}}
	wheel := &ClassModel{Name: "com.example.Car.Wheel"}
	engine := &ClassModel{Name: "com.example.Car.Engine", EnclosingClass: "com.example.Car"}
	orphan := &ClassModel{Name: "com.example.Gone.Inner", EnclosingClass: "com.example.Gone"}

	LinkEnclosingClasses([]*ClassModel{outer, wheel, engine, orphan})

	if wheel.EnclosingClass != "com.example.Car" {
		t.Errorf("wheel.EnclosingClass = %q, want %q", wheel.EnclosingClass, "com.example.Car")
	}
	want := []string{"com.example.Car.Wheel", "com.example.Car.Engine"}
	if !slices.Equal(outer.InnerClasses, want) {
		t.Errorf("outer.InnerClasses = %q, want %q", outer.InnerClasses, want)
	}
	if orphan.EnclosingClass != "com.example.Gone" {
		t.Errorf("orphan.EnclosingClass = %q, want it unchanged", orphan.EnclosingClass)
	}
}

func TestLinkEnclosingClassesIsIdempotent(t *testing.T) {
	outer := &ClassModel{Name: "a.Outer"}
	inner := &ClassModel{Name: "a.Outer.Inner", EnclosingClass: "a.Outer"}
	classes := []*ClassModel{outer, inner}

	LinkEnclosingClasses(classes)
	LinkEnclosingClasses(classes)

	if len(outer.InnerClasses) != 1 {
		t.Errorf("outer.InnerClasses = %q, want one entry", outer.InnerClasses)
	}
}

func TestResolveInnerClassReferences(t *testing.T) {
	headerInfo := &ClassModel{
		Name:           "org.example.client.Authentication.HeaderInfo",
		SimpleName:     "HeaderInfo",
		Package:        "org.example.client",
		EnclosingClass: "org.example.client.Authentication",
	}
	consumer := &ClassModel{
		Name:       "org.example.client.Consumer",
		SimpleName: "Consumer",
		Package:    "org.example.client",
		SuperClass: "org.example.client.HeaderInfo",
		Interfaces: []string{"java.lang.Runnable", "org.example.client.HeaderInfo"},
		Methods: []MethodModel{
			{
				Name:       "process",
				ReturnType: "org.example.client.HeaderInfo[]",
				Parameters: []ParameterModel{
					{Name: "header", Type: "org.example.client.HeaderInfo"},
					{Name: "all", Type: "java.util.List<org.example.client.HeaderInfo>"},
					{Name: "count", Type: "int"},
				},
			},
		},
	}

	ResolveInnerClassReferences([]*ClassModel{headerInfo, consumer})

	const full = "org.example.client.Authentication.HeaderInfo"
	if consumer.SuperClass != full {
		t.Errorf("SuperClass = %q, want %q", consumer.SuperClass, full)
	}
	if consumer.Interfaces[0] != "java.lang.Runnable" || consumer.Interfaces[1] != full {
		t.Errorf("Interfaces = %q", consumer.Interfaces)
	}
	m := consumer.Methods[0]
	if m.ReturnType != full+"[]" {
		t.Errorf("ReturnType = %q, want %q", m.ReturnType, full+"[]")
	}
	if m.Parameters[0].Type != full {
		t.Errorf("Parameters[0].Type = %q, want %q", m.Parameters[0].Type, full)
	}
	if m.Parameters[1].Type != "java.util.List<org.example.client.HeaderInfo>" {
		t.Errorf("Parameters[1].Type = %q, type arguments should be left alone", m.Parameters[1].Type)
	}
	if m.Parameters[2].Type != "int" {
		t.Errorf("Parameters[2].Type = %q, want %q", m.Parameters[2].Type, "int")
	}
}

func TestResolveInnerClassReferencesKeepsTopLevelClasses(t *testing.T) {
	topLevel := &ClassModel{Name: "a.Entry", SimpleName: "Entry", Package: "a"}
	nested := &ClassModel{Name: "a.Map.Entry", SimpleName: "Entry", Package: "a", EnclosingClass: "a.Map"}
	user := &ClassModel{Name: "a.User", SimpleName: "User", Package: "a", SuperClass: "a.Entry"}

	ResolveInnerClassReferences([]*ClassModel{topLevel, nested, user})

	if user.SuperClass != "a.Entry" {
		t.Errorf("SuperClass = %q, want %q", user.SuperClass, "a.Entry")
	}
}

func TestResolveInnerClassReferencesSkipsAmbiguousNames(t *testing.T) {
	first := &ClassModel{Name: "a.One.Node", SimpleName: "Node", Package: "a", EnclosingClass: "a.One"}
	second := &ClassModel{Name: "a.Two.Node", SimpleName: "Node", Package: "a", EnclosingClass: "a.Two"}
	user := &ClassModel{Name: "a.User", SimpleName: "User", Package: "a", SuperClass: "a.Node"}

	ResolveInnerClassReferences([]*ClassModel{first, second, user})

	if user.SuperClass != "a.Node" {
		t.Errorf("SuperClass = %q, want it unchanged", user.SuperClass)
	}
}

func TestPackageOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"java.util.Map.Entry", "java.util"},
		{"com.example.Dog", "com.example"},
		{"Dog", ""},
		{"lower.case", "lower"},
		{"single", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackageOf(tt.name); got != tt.want {
				t.Errorf("PackageOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	c := &ClassModel{
		Name:    "com.example.Car.Wheel",
		Methods: []MethodModel{{Name: "spin"}},
	}
	c.Normalize()

	if c.Package != "com.example" {
		t.Errorf("Package = %q, want %q", c.Package, "com.example")
	}
	if c.SimpleName != "Wheel" {
		t.Errorf("SimpleName = %q, want %q", c.SimpleName, "Wheel")
	}
	if c.Kind != ClassKindClass || c.Visibility != VisibilityPublic {
		t.Errorf("Kind, Visibility = %q, %q", c.Kind, c.Visibility)
	}
	if c.Methods[0].Visibility != VisibilityPublic {
		t.Errorf("Methods[0].Visibility = %q, want %q", c.Methods[0].Visibility, VisibilityPublic)
	}
}
