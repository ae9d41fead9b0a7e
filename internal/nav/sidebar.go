package nav

import "slices"

// SidebarSection binds a sidebar tree to the path prefix it is shown under.
type SidebarSection struct {
	Prefix string
	Tree   SidebarTree
}

// Sidebar is an insertion-ordered mapping from path prefix to SidebarTree.
// The zero value is an empty sidebar.
type Sidebar struct {
	sections []SidebarSection
}

// NewSidebar returns a sidebar holding sections in the given order.
// Later sections with a prefix already present replace the earlier tree.
func NewSidebar(sections ...SidebarSection) Sidebar {
	var s Sidebar
	for _, sec := range sections {
		s = s.With(sec.Prefix, sec.Tree)
	}
	return s
}

// With returns a copy of s where prefix maps to tree. An existing prefix keeps
// its position; a new one is appended.
func (s Sidebar) With(prefix string, tree SidebarTree) Sidebar {
	out := Sidebar{sections: slices.Clone(s.sections)}
	for i := range out.sections {
		if out.sections[i].Prefix == prefix {
			out.sections[i].Tree = tree
			return out
		}
	}
	out.sections = append(out.sections, SidebarSection{Prefix: prefix, Tree: tree})
	return out
}

// Append adds a section without checking for an existing prefix. Decoders use
// it so that duplicate keys in a file survive until Validate reports them.
func (s Sidebar) Append(prefix string, tree SidebarTree) Sidebar {
	out := Sidebar{sections: slices.Clone(s.sections)}
	out.sections = append(out.sections, SidebarSection{Prefix: prefix, Tree: tree})
	return out
}

// Get returns the tree for prefix.
func (s Sidebar) Get(prefix string) (SidebarTree, bool) {
	for _, sec := range s.sections {
		if sec.Prefix == prefix {
			return sec.Tree, true
		}
	}
	return nil, false
}

// Prefixes returns the prefixes in insertion order.
func (s Sidebar) Prefixes() []string {
	out := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec.Prefix)
	}
	return out
}

// Sections returns a copy of the sections in insertion order.
func (s Sidebar) Sections() []SidebarSection {
	return slices.Clone(s.sections)
}

// Len returns the number of sections.
func (s Sidebar) Len() int { return len(s.sections) }
