package icons

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry answers lookups and searches over a static descriptor set.
//
// The name index, the icon map and the folded search fields are built once on
// first use and never change afterwards, so a Registry is safe for concurrent
// use without further locking.
type Registry struct {
	descriptors []Descriptor
	iconSet     []Icon
	fallback    Icon

	once       sync.Once
	byName     map[string]int
	iconByName map[string]Icon
	folded     []foldedDescriptor
}

// foldedDescriptor holds the lower-cased match fields of one descriptor.
type foldedDescriptor struct {
	name       string
	tags       []string
	categories []string
}

// NewRegistry creates a registry over descriptors.
//
// iconSet is the full list of renderable icons; fallback is returned for any
// descriptor whose name has no icon in the set. Callers must not mutate the
// slices after handing them over.
func NewRegistry(descriptors []Descriptor, iconSet []Icon, fallback Icon) *Registry {
	return &Registry{
		descriptors: descriptors,
		iconSet:     iconSet,
		fallback:    fallback,
	}
}

func (r *Registry) load() {
	r.once.Do(func() {
		caser := cases.Lower(language.Und)
		byName := make(map[string]int, len(r.descriptors))
		folded := make([]foldedDescriptor, len(r.descriptors))
		for i, descriptor := range r.descriptors {
			if _, exists := byName[descriptor.Name]; !exists {
				byName[descriptor.Name] = i
			}
			folded[i] = foldedDescriptor{
				name:       caser.String(descriptor.Name),
				tags:       foldAll(caser, descriptor.Tags),
				categories: foldAll(caser, descriptor.Categories),
			}
		}
		iconByName := make(map[string]Icon, len(r.iconSet))
		for _, icon := range r.iconSet {
			if _, exists := iconByName[icon.Name]; !exists {
				iconByName[icon.Name] = icon
			}
		}
		r.byName = byName
		r.folded = folded
		r.iconByName = iconByName
	})
}

func foldAll(caser cases.Caser, values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = caser.String(value)
	}
	return out
}

// AllDescriptors returns the full descriptor set in generation order.
//
// The same backing slice is returned on every call; it must be treated as
// read-only.
func (r *Registry) AllDescriptors() []Descriptor {
	return r.descriptors
}

// DescriptorByName returns the descriptor whose name equals name exactly.
func (r *Registry) DescriptorByName(name string) (Descriptor, bool) {
	r.load()
	index, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[index], true
}

// ByTag returns descriptors with any tag containing query, ignoring case.
func (r *Registry) ByTag(query string) []Descriptor {
	return r.filter(query, func(d foldedDescriptor, q string) bool {
		return anyContains(d.tags, q)
	})
}

// ByCategory returns descriptors with any category containing query, ignoring case.
func (r *Registry) ByCategory(query string) []Descriptor {
	return r.filter(query, func(d foldedDescriptor, q string) bool {
		return anyContains(d.categories, q)
	})
}

// ByName returns descriptors whose name contains query, ignoring case.
func (r *Registry) ByName(query string) []Descriptor {
	return r.filter(query, func(d foldedDescriptor, q string) bool {
		return strings.Contains(d.name, q)
	})
}

// Search returns descriptors matching query by name, tag or category.
// Each descriptor appears at most once, in descriptor set order.
func (r *Registry) Search(query string) []Descriptor {
	return r.filter(query, func(d foldedDescriptor, q string) bool {
		return strings.Contains(d.name, q) || anyContains(d.tags, q) || anyContains(d.categories, q)
	})
}

func (r *Registry) filter(query string, match func(foldedDescriptor, string) bool) []Descriptor {
	r.load()
	q := cases.Lower(language.Und).String(query)
	out := []Descriptor{}
	for i, folded := range r.folded {
		if match(folded, q) {
			out = append(out, r.descriptors[i])
		}
	}
	return out
}

func anyContains(values []string, query string) bool {
	for _, value := range values {
		if strings.Contains(value, query) {
			return true
		}
	}
	return false
}

// Icon looks up the icon handle with the exact name.
func (r *Registry) Icon(name string) (Icon, bool) {
	r.load()
	icon, ok := r.iconByName[name]
	return icon, ok
}

// Fallback returns the placeholder handle used for unresolved names.
func (r *Registry) Fallback() Icon {
	return r.fallback
}

// Resolve returns the icon for a descriptor, or the fallback when the icon
// set has no entry with the descriptor's name.
func (r *Registry) Resolve(descriptor Descriptor) Icon {
	if icon, ok := r.Icon(descriptor.Name); ok {
		return icon
	}
	return r.fallback
}

// IconsByTag resolves the results of ByTag.
func (r *Registry) IconsByTag(query string) []Icon {
	return r.resolveAll(r.ByTag(query))
}

// IconsByCategory resolves the results of ByCategory.
func (r *Registry) IconsByCategory(query string) []Icon {
	return r.resolveAll(r.ByCategory(query))
}

// IconsByName resolves the results of ByName.
func (r *Registry) IconsByName(query string) []Icon {
	return r.resolveAll(r.ByName(query))
}

// SearchIcons resolves the results of Search.
func (r *Registry) SearchIcons(query string) []Icon {
	return r.resolveAll(r.Search(query))
}

func (r *Registry) resolveAll(descriptors []Descriptor) []Icon {
	out := make([]Icon, len(descriptors))
	for i, descriptor := range descriptors {
		out[i] = r.Resolve(descriptor)
	}
	return out
}
