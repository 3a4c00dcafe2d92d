// Package icons defines icon metadata and the registry used to query it.
//
// A Descriptor carries the name, tags and categories of one icon. Descriptor
// sets are produced at build time by the metadata generator and handed to a
// Registry, which answers name lookups and substring searches and resolves
// descriptors to renderable icon handles. Handles whose name has no icon in
// the set resolve to a fallback placeholder instead of failing.
package icons
