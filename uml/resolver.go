package uml

// ReferenceSource contributes extra references for a type, e.g. from
// annotations or doc comment tags.
type ReferenceSource interface {
	ReferencesFor(t Type) []Reference
}

type ReferenceSourceFunc func(t Type) []Reference

func (f ReferenceSourceFunc) ReferencesFor(t Type) []Reference { return f(t) }

type ReferenceResolver struct {
	sources []ReferenceSource
}

func NewReferenceResolver(sources ...ReferenceSource) *ReferenceResolver {
	return &ReferenceResolver{sources: sources}
}

// Resolve returns the references of parent in diagram order: superclass,
// interfaces in declaration order, containing type, then references from the
// extra sources. Equal references are kept once, at their first position.
//
// Names in excluded suppress superclass and interface references only. The
// containing type and source references are never excluded.
func (r *ReferenceResolver) Resolve(parent Type, excluded map[string]bool) []Reference {
	if parent == nil {
		panic("uml: cannot resolve references of a nil type")
	}
	referent := parent.QualifiedName()
	log.Debugf("Adding references for included class %s...", referent)
	refs := NewReferenceSet()

	superclass := parent.Superclass()
	switch {
	case superclass == "":
		log.Infof("Encountered no superclass for %q.", referent)
	case excluded[superclass]:
		log.Debugf("Excluding superclass %q of %q...", superclass, referent)
	case refs.Add(NewReference(From(superclass), Extension, To(referent))):
		log.Debugf("Added reference to superclass %q from %q.", superclass, referent)
	default:
		log.Debugf("Excluding reference to superclass %q from %q; the reference was already generated.", superclass, referent)
	}

	for _, iface := range parent.Interfaces() {
		switch {
		case iface == "":
			log.Noticef("Encountered an unnamed implemented interface of %q.", referent)
		case excluded[iface]:
			log.Debugf("Excluding interface %q of %q...", iface, referent)
		case refs.Add(NewReference(From(iface), Implementation, To(referent))):
			log.Debugf("Added reference to interface %q from %q.", iface, referent)
		default:
			log.Infof("Excluding reference to interface %q from %q; the reference was already generated.", iface, referent)
		}
	}

	if container := parent.ContainingType(); container != "" {
		refs.Add(NewReference(From(container), Containment, To(referent)))
	}

	for _, source := range r.sources {
		for _, ref := range source.ReferencesFor(parent) {
			refs.Add(ref)
		}
	}

	return refs.References()
}
