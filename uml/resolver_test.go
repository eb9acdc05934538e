package uml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDogScenario(t *testing.T) {
	_, dog := animals()

	refs := NewReferenceResolver().Resolve(dog, nil)

	require.Len(t, refs, 2)
	assert.True(t, refs[0].Equal(NewReference(From("animals.Animal"), Extension, To("animals.Dog"))))
	assert.True(t, refs[1].Equal(NewReference(From("pets.Pet"), Implementation, To("animals.Dog"))))
}

func TestResolveExcludedSuperclass(t *testing.T) {
	_, dog := animals()

	refs := NewReferenceResolver().Resolve(dog, map[string]bool{"animals.Animal": true})

	require.Len(t, refs, 1)
	assert.Equal(t, Implementation, refs[0].Type)
	assert.Equal(t, "pets.Pet", refs[0].From.QualifiedName)
}

func TestResolveExcludedNameThatIsBothSuperclassAndInterface(t *testing.T) {
	odd := newFakeType("x", "Odd")
	odd.superclass = "x.Both"
	odd.interfaces = []string{"x.Both", "x.Other"}

	refs := NewReferenceResolver().Resolve(odd, map[string]bool{"x.Both": true})

	require.Len(t, refs, 1)
	assert.Equal(t, "x.Other", refs[0].From.QualifiedName)
}

func TestResolveDeduplicates(t *testing.T) {
	odd := newFakeType("x", "Odd")
	odd.superclass = "x.Base"
	odd.interfaces = []string{"x.Iface", "x.Iface", "x.Base"}

	refs := NewReferenceResolver().Resolve(odd, nil)

	// Base appears as both extension and implementation: different notations
	// are different references. The repeated interface collapses.
	require.Len(t, refs, 3)
	assert.Equal(t, Extension, refs[0].Type)
	assert.Equal(t, "x.Iface", refs[1].From.QualifiedName)
	assert.Equal(t, "x.Base", refs[2].From.QualifiedName)
	assert.Equal(t, Implementation, refs[2].Type)
}

func TestResolveSkipsAbsentNames(t *testing.T) {
	root := newFakeType("java.lang", "Object")
	root.interfaces = []string{"", "java.io.Serializable"}

	refs := NewReferenceResolver().Resolve(root, nil)

	require.Len(t, refs, 1)
	assert.Equal(t, "java.io.Serializable", refs[0].From.QualifiedName)
}

func TestResolveContainmentIgnoresExclusion(t *testing.T) {
	inner := newFakeType("x", "Outer.Inner")
	inner.superclass = "x.Outer"
	inner.container = "x.Outer"

	refs := NewReferenceResolver().Resolve(inner, map[string]bool{"x.Outer": true})

	require.Len(t, refs, 1)
	assert.Equal(t, Containment, refs[0].Type)
	assert.Equal(t, "x.Outer", refs[0].From.QualifiedName)
	assert.Equal(t, "x.Outer.Inner", refs[0].To.QualifiedName)
}

func TestResolveOrderWithSources(t *testing.T) {
	_, dog := animals()
	dog.container = "animals.Kennel"

	extra := ReferenceSourceFunc(func(t Type) []Reference {
		return []Reference{
			NewReference(From(t.QualifiedName()), Dependency, To("food.Bone")),
			NewReference(From("animals.Animal"), Extension, To("animals.Dog")).AddNote("duplicate"),
			NewReference(From(t.QualifiedName()), Association, To("animals.Owner")),
		}
	})

	refs := NewReferenceResolver(extra).Resolve(dog, nil)

	var got []Notation
	for _, ref := range refs {
		got = append(got, ref.Type)
	}
	assert.Equal(t, []Notation{Extension, Implementation, Containment, Dependency, Association}, got)
	assert.Empty(t, refs[0].Notes(), "a duplicate from a source keeps the first occurrence")
}

// Source references are exempt from the exclusion list.
func TestResolveSourceReferencesAreNotExcluded(t *testing.T) {
	_, dog := animals()
	extra := ReferenceSourceFunc(func(t Type) []Reference {
		return []Reference{NewReference(From(t.QualifiedName()), Dependency, To("java.lang.Object"))}
	})

	refs := NewReferenceResolver(extra).Resolve(dog, map[string]bool{"java.lang.Object": true, "pets.Pet": true})

	require.Len(t, refs, 2)
	assert.Equal(t, Extension, refs[0].Type)
	assert.Equal(t, "java.lang.Object", refs[1].To.QualifiedName)
}

func TestResolveIsDeterministic(t *testing.T) {
	_, dog := animals()
	resolver := NewReferenceResolver()
	first := resolver.Resolve(dog, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resolver.Resolve(dog, nil))
	}
}

func TestResolvePanicsOnNilType(t *testing.T) {
	assert.Panics(t, func() { NewReferenceResolver().Resolve(nil, nil) })
}
