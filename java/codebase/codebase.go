// Package codebase keeps the class models loaded from a set of inputs and
// serves them to the diagram renderer as a uml.TypeModel.
package codebase

import (
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/umldoc/java"
	"github.com/dhamidi/umldoc/uml"
)

var log = commonlog.GetLogger("umldoc.codebase")

// Codebase is safe for concurrent use. Models are grouped by the input they
// were read from, so one input can be reloaded or dropped on its own.
type Codebase struct {
	mu      sync.RWMutex
	sources map[string][]*java.ClassModel
	classes []*java.ClassModel
	byName  map[string]*java.ClassModel
}

func New() *Codebase {
	return &Codebase{
		sources: make(map[string][]*java.ClassModel),
		byName:  make(map[string]*java.ClassModel),
	}
}

// Update replaces all models previously read from source.
func (c *Codebase) Update(source string, classes []*java.ClassModel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[source] = classes
	c.rebuildLocked()
}

func (c *Codebase) Remove(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sources[source]; !ok {
		return
	}
	delete(c.sources, source)
	c.rebuildLocked()
}

func (c *Codebase) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sources := make([]string, 0, len(c.sources))
	for s := range c.sources {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

// rebuildLocked visits sources in sorted order so the first definition of a
// class name wins deterministically. Published models are fresh copies that
// are never written again; readers hold them without the lock.
func (c *Codebase) rebuildLocked() {
	sources := make([]string, 0, len(c.sources))
	for s := range c.sources {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	byName := make(map[string]*java.ClassModel)
	var all []*java.ClassModel
	for _, source := range sources {
		for _, cls := range c.sources[source] {
			if cls == nil {
				continue
			}
			if prev, ok := byName[cls.Name]; ok {
				log.Noticef("Ignoring duplicate class %s from %s; already loaded from %s.", cls.Name, source, prev.Source)
				continue
			}
			cls = cls.Clone()
			byName[cls.Name] = cls
			all = append(all, cls)
		}
	}
	java.Resolve(all)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	c.classes = all
	c.byName = byName
}

// AllClasses returns the loaded models sorted by name.
func (c *Codebase) AllClasses() []*java.ClassModel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.classes
}

func (c *Codebase) FindClass(name string) *java.ClassModel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byName[name]
}

func (c *Codebase) FindType(qualifiedName string) (uml.Type, bool) {
	cls := c.FindClass(qualifiedName)
	if cls == nil {
		return nil, false
	}
	return NewType(cls), true
}

// Types returns the loaded types accepted by include, sorted by name. A nil
// include accepts all of them.
func (c *Codebase) Types(include func(qualifiedName string) bool) []uml.Type {
	var types []uml.Type
	for _, cls := range c.AllClasses() {
		if include == nil || include(cls.Name) {
			types = append(types, NewType(cls))
		}
	}
	return types
}

func (c *Codebase) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.classes)
}
