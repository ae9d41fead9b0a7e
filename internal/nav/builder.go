package nav

// Entry returns a top bar entry.
func Entry(text, link string) NavEntry {
	return NavEntry{Text: text, Link: link}
}

// Leaf returns a sidebar page reference.
func Leaf(text, link string) SidebarLeaf {
	return SidebarLeaf{Text: text, Link: link}
}

// Social returns a social link.
func Social(icon, link string) SocialLink {
	return SocialLink{Icon: icon, Link: link}
}

// GroupBuilder assembles a SidebarGroup in authoring order.
//
//	g := nav.NewGroup("Introduction").Expanded().
//		Leaf("Getting Started", "/guide/getting-started").
//		Build()
type GroupBuilder struct {
	group SidebarGroup
}

// NewGroup starts a group with the given heading.
func NewGroup(text string) *GroupBuilder {
	return &GroupBuilder{group: SidebarGroup{Text: text}}
}

// Link makes the group heading navigable.
func (b *GroupBuilder) Link(link string) *GroupBuilder {
	b.group.Link = link
	return b
}

// Expanded makes the group foldable and initially open.
func (b *GroupBuilder) Expanded() *GroupBuilder {
	b.group.Collapse = CollapseExpanded
	return b
}

// Collapsed makes the group foldable and initially folded.
func (b *GroupBuilder) Collapsed() *GroupBuilder {
	b.group.Collapse = CollapseCollapsed
	return b
}

// Leaf appends a page reference.
func (b *GroupBuilder) Leaf(text, link string) *GroupBuilder {
	b.group.Items = append(b.group.Items, Leaf(text, link))
	return b
}

// Group appends a nested group.
func (b *GroupBuilder) Group(g SidebarGroup) *GroupBuilder {
	b.group.Items = append(b.group.Items, g)
	return b
}

// Build returns the group. The builder must not be used afterwards.
func (b *GroupBuilder) Build() SidebarGroup {
	g := b.group
	b.group = SidebarGroup{}
	return g
}
