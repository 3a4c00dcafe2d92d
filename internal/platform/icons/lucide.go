package icons

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSymbolPrefix prefixes Lucide sprite symbol IDs.
const DefaultSymbolPrefix = "lucide-"

const nameDelimiter = "-"

// Descriptor is the metadata record of one icon.
type Descriptor struct {
	Name       string
	Tags       []string
	Categories []string
}

// Icon is a renderable icon handle resolved by name.
type Icon struct {
	// Name matches Descriptor.Name for the same icon.
	Name string
	// Symbol is the sprite symbol ID the UI references to draw the icon.
	Symbol string
}

// NormalizeName derives an icon name from a source file base name.
//
// The base name is split on "-", the first rune of each part is title-cased
// and the parts are joined without a separator: "arrow-up-circle" becomes
// "ArrowUpCircle". The vector generator uses the same rule, so descriptor
// names and icon names agree.
func NormalizeName(base string) string {
	var builder strings.Builder
	builder.Grow(len(base))
	for _, part := range strings.Split(base, nameDelimiter) {
		if part == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(part)
		if unicode.IsLower(first) {
			builder.WriteRune(unicode.ToTitle(first))
		} else {
			builder.WriteString(part[:size])
		}
		builder.WriteString(part[size:])
	}
	return builder.String()
}

// SymbolID returns the sprite symbol ID for an icon file base name.
func SymbolID(prefix, base string) string {
	return prefix + base
}
