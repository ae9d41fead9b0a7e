package nav

import (
	"fmt"
	"io"
	"strings"
)

// WriteOutline prints cfg as an indented plain-text tree, the way a reader
// would see the navigation.
func WriteOutline(w io.Writer, cfg SiteConfig) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", cfg.Title, cfg.Base)

	b.WriteString("nav\n")
	for _, e := range cfg.Theme.Nav {
		fmt.Fprintf(&b, "  %s -> %s\n", e.Text, e.Link)
	}

	for _, sec := range cfg.Theme.Sidebar.Sections() {
		fmt.Fprintf(&b, "sidebar %s\n", sec.Prefix)
		for _, g := range sec.Tree {
			writeGroup(&b, g, 1)
		}
	}

	if len(cfg.Theme.SocialLinks) > 0 {
		b.WriteString("social\n")
		for _, s := range cfg.Theme.SocialLinks {
			fmt.Fprintf(&b, "  %s -> %s\n", s.Icon, s.Link)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGroup(b *strings.Builder, g SidebarGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(g.Text)
	if g.Link != "" {
		b.WriteString(" -> ")
		b.WriteString(g.Link)
	}
	if g.Collapsible() {
		fmt.Fprintf(b, " [%s]", g.Collapse)
	}
	b.WriteByte('\n')
	for _, item := range g.Items {
		switch it := item.(type) {
		case SidebarLeaf:
			fmt.Fprintf(b, "%s  %s -> %s\n", indent, it.Text, it.Link)
		case SidebarGroup:
			writeGroup(b, it, depth+1)
		}
	}
}
