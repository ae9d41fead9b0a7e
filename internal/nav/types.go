package nav

// NavEntry is one clickable entry in the top navigation bar.
type NavEntry struct {
	Text string
	Link string
}

// SocialLink is an external profile surfaced as an icon in the site header.
type SocialLink struct {
	Icon string
	Link string
}

// SidebarItem is either a SidebarLeaf or a SidebarGroup.
type SidebarItem interface {
	Label() string
	sidebarItem()
}

// SidebarLeaf references a single page.
type SidebarLeaf struct {
	Text string
	Link string
}

func (l SidebarLeaf) Label() string { return l.Text }
func (SidebarLeaf) sidebarItem()    {}

// Collapse controls whether a sidebar group can be folded and its initial state.
type Collapse uint8

const (
	// CollapseUnset renders the group without a fold toggle.
	CollapseUnset Collapse = iota
	// CollapseExpanded renders a foldable group that starts open.
	CollapseExpanded
	// CollapseCollapsed renders a foldable group that starts folded.
	CollapseCollapsed
)

func (c Collapse) String() string {
	switch c {
	case CollapseExpanded:
		return "expanded"
	case CollapseCollapsed:
		return "collapsed"
	default:
		return "fixed"
	}
}

// SidebarGroup is a named section of the sidebar. A group may carry its own
// Link, in which case the heading itself is navigable.
type SidebarGroup struct {
	Text     string
	Link     string
	Collapse Collapse
	Items    []SidebarItem
}

func (g SidebarGroup) Label() string { return g.Text }
func (SidebarGroup) sidebarItem()    {}

// Collapsible reports whether the group renders a fold toggle.
func (g SidebarGroup) Collapsible() bool { return g.Collapse != CollapseUnset }

// Collapsed reports whether the group starts folded. Defaults to false.
func (g SidebarGroup) Collapsed() bool { return g.Collapse == CollapseCollapsed }

// Leaves returns every leaf below the group in reading order.
func (g SidebarGroup) Leaves() []SidebarLeaf {
	var out []SidebarLeaf
	for _, item := range g.Items {
		switch it := item.(type) {
		case SidebarLeaf:
			out = append(out, it)
		case SidebarGroup:
			out = append(out, it.Leaves()...)
		}
	}
	return out
}

// SidebarTree is the ordered group sequence shown for one path prefix.
type SidebarTree []SidebarGroup

// ThemeConfig holds everything the default theme reads from themeConfig.
type ThemeConfig struct {
	Nav         []NavEntry
	Sidebar     Sidebar
	SocialLinks []SocialLink
}

// MarkdownConfig configures the markdown pipeline of the site generator.
type MarkdownConfig struct {
	// Theme names the code highlighting theme.
	Theme string
}

// SiteConfig is the aggregate root consumed by the site generator.
type SiteConfig struct {
	Base        string
	Lang        string
	Title       string
	Description string
	LastUpdated bool
	CleanURLs   bool
	Theme       ThemeConfig
	Markdown    *MarkdownConfig
}
