package domain

import "strings"

// Requirements is the ordered list of pins destined for the output file.
type Requirements []PinnedPackage

// BuildRequirements intersects the requested names with the installed
// index. Order follows the requested list; names missing from the index
// are dropped silently. A name requested twice is emitted twice.
func BuildRequirements(requested []PackageName, index PackageIndex) Requirements {
	reqs := make(Requirements, 0, len(requested))
	for _, name := range requested {
		if pin, ok := index[name]; ok {
			reqs = append(reqs, pin)
		}
	}
	return reqs
}

// Render produces the output file content: one name=version entry per
// line, every line newline-terminated.
func (r Requirements) Render() string {
	var b strings.Builder
	for _, pin := range r {
		b.WriteString(pin.String())
		b.WriteByte('\n')
	}
	return b.String()
}
