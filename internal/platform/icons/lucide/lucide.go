package lucide

import "github.com/louisbranch/iconkit/internal/platform/icons"

const fallbackName = "SquareSlash"

// Fallback is drawn for descriptors without a matching vector. It is the
// generated SquareSlash handle, so it shares the symbol prefix of the set.
var Fallback = generatedFallback(iconHandles)

func generatedFallback(handles []icons.Icon) icons.Icon {
	for _, handle := range handles {
		if handle.Name == fallbackName {
			return handle
		}
	}
	return icons.Icon{Name: fallbackName, Symbol: icons.SymbolID(icons.DefaultSymbolPrefix, "square-slash")}
}

// Descriptors returns the generated descriptor set in generation order.
// Callers must not modify the returned slice.
func Descriptors() []icons.Descriptor {
	return allDescriptors
}

// Icons returns the generated icon handles.
// Callers must not modify the returned slice.
func Icons() []icons.Icon {
	return iconHandles
}

// NewRegistry returns a registry over the generated set.
func NewRegistry() *icons.Registry {
	return icons.NewRegistry(allDescriptors, iconHandles, Fallback)
}
