// Package domain contains the core types and errors for requirements generation.
package domain

import "strings"

// PackageName identifies a conda or pip package. Names are case-sensitive
// and never carry a version suffix.
type PackageName string

// ParsePackageName strips the version pin from a dependency spec, keeping
// everything before the first '='. Both conda pins ("numpy=1.26") and pip
// pins ("flask==2.0") yield the bare package name.
func ParsePackageName(spec string) PackageName {
	name, _, _ := strings.Cut(spec, "=")
	return PackageName(name)
}

// PinnedPackage is a package resolved to its installed version. The build
// hash reported by conda is already discarded at parse time.
type PinnedPackage struct {
	Name    PackageName
	Version string
}

// String renders the pin in conda's name=version form.
func (p PinnedPackage) String() string {
	return string(p.Name) + "=" + p.Version
}

// PackageIndex maps package names to their installed pins.
type PackageIndex map[PackageName]PinnedPackage

// NewPackageIndex builds an index from the installed pins. The first
// occurrence of a name wins; later duplicates are ignored.
func NewPackageIndex(pins []PinnedPackage) PackageIndex {
	index := make(PackageIndex, len(pins))
	for _, pin := range pins {
		if _, ok := index[pin.Name]; ok {
			continue
		}
		index[pin.Name] = pin
	}
	return index
}
