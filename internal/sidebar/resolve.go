package sidebar

// Resolve expands every autogenerated group into the ordered doc links the
// document index reports for its directory. All other structure, including
// sibling order, is preserved verbatim. The input set is not mutated.
//
// Resolution is deterministic for a fixed index snapshot and idempotent: a
// set containing no autogenerated nodes resolves to an equal set.
func Resolve(set *Set, index DocumentIndex) *Set {
	out := &Set{
		names:      append([]string(nil), set.names...),
		items:      make(map[string][]Node, len(set.items)),
		duplicates: append([]string(nil), set.duplicates...),
	}
	for _, name := range set.names {
		out.items[name] = resolveItems(set.items[name], index)
	}
	return out
}

func resolveItems(items []Node, index DocumentIndex) []Node {
	out := make([]Node, 0, len(items))
	for _, n := range items {
		switch n.Kind {
		case KindAutogenerated:
			for _, id := range index.InDirectory(n.Directory) {
				out = append(out, Doc(id))
			}
		case KindCategory:
			resolved := n
			resolved.Items = resolveItems(n.Items, index)
			out = append(out, resolved)
		default:
			out = append(out, n)
		}
	}
	return out
}
