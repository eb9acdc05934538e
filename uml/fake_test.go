package uml

type fakeModel map[string]*fakeType

func (m fakeModel) FindType(qualifiedName string) (Type, bool) {
	t, ok := m[qualifiedName]
	if !ok {
		return nil, false
	}
	return t, true
}

func (m fakeModel) add(types ...*fakeType) fakeModel {
	for _, t := range types {
		m[t.name] = t
	}
	return m
}

type fakeType struct {
	name       string
	pkg        string
	kind       Kind
	superclass string
	interfaces []string
	container  string
	methods    []Method
	typeParams []string
	doc        string
}

func newFakeType(pkg, simpleName string) *fakeType {
	name := simpleName
	if pkg != "" {
		name = pkg + "." + simpleName
	}
	return &fakeType{name: name, pkg: pkg, kind: KindClass}
}

func (t *fakeType) QualifiedName() string    { return t.name }
func (t *fakeType) PackageName() string      { return t.pkg }
func (t *fakeType) Kind() Kind               { return t.kind }
func (t *fakeType) Superclass() string       { return t.superclass }
func (t *fakeType) Interfaces() []string     { return t.interfaces }
func (t *fakeType) ContainingType() string   { return t.container }
func (t *fakeType) Methods() []Method        { return t.methods }
func (t *fakeType) TypeParameters() []string { return t.typeParams }
func (t *fakeType) DocComment() string       { return t.doc }

type fakeMethod struct {
	name       string
	abstract   bool
	static     bool
	visibility string
	returnType TypeName
	params     *Parameters
}

func (m *fakeMethod) Name() string         { return m.name }
func (m *fakeMethod) IsAbstract() bool     { return m.abstract }
func (m *fakeMethod) IsStatic() bool       { return m.static }
func (m *fakeMethod) Visibility() string   { return m.visibility }
func (m *fakeMethod) ReturnType() TypeName { return m.returnType }
func (m *fakeMethod) Parameters() *Parameters {
	if m.params == nil {
		return NewParameters()
	}
	return m.params
}

// animals builds the Dog/Animal/Pet universe used across the tests.
func animals() (fakeModel, *fakeType) {
	animal := newFakeType("animals", "Animal")
	animal.kind = KindAbstractClass
	animal.superclass = "java.lang.Object"
	animal.methods = []Method{
		&fakeMethod{name: "sound", abstract: true, visibility: "public", returnType: NewTypeName("java.lang.String")},
		&fakeMethod{name: "name", visibility: "public", returnType: NewTypeName("java.lang.String")},
	}

	pet := newFakeType("pets", "Pet")
	pet.kind = KindInterface

	dog := newFakeType("animals", "Dog")
	dog.superclass = "animals.Animal"
	dog.interfaces = []string{"pets.Pet"}

	return fakeModel{}.add(animal, pet, dog), dog
}
