package palette

import "sort"

// OrderSections returns sections in display order. Sections carrying a
// priority come first, ascending; sections without one follow in their
// original order. Ties keep their original relative order.
func OrderSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Meta.Priority, out[j].Meta.Priority
		switch {
		case pi != nil && pj != nil:
			return *pi < *pj
		case pi != nil:
			return true
		default:
			return false
		}
	})
	return out
}
