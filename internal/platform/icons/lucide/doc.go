// Package lucide exposes the Lucide descriptor set and icon handles generated
// from assets/lucide/icons.
package lucide

//go:generate go run ../../../../cmd/icon-metadata-gen -in ../../../../assets/lucide/icons -out . -package lucide
//go:generate go run ../../../tools/icondocgen -out docs/icon-catalog.md
