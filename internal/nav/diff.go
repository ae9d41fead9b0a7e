package nav

import "fmt"

// Diff returns one line per structural difference between want and got,
// qualified by the wire path of the field. An empty result means the two
// configurations are equivalent.
func Diff(want, got SiteConfig) []string {
	var d differ
	d.str("base", want.Base, got.Base)
	d.str("lang", want.Lang, got.Lang)
	d.str("title", want.Title, got.Title)
	d.str("description", want.Description, got.Description)
	d.boolean("lastUpdated", want.LastUpdated, got.LastUpdated)
	d.boolean("cleanUrls", want.CleanURLs, got.CleanURLs)

	d.count("themeConfig.nav", len(want.Theme.Nav), len(got.Theme.Nav))
	for i := range min(len(want.Theme.Nav), len(got.Theme.Nav)) {
		field := fmt.Sprintf("themeConfig.nav[%d]", i)
		d.str(field+".text", want.Theme.Nav[i].Text, got.Theme.Nav[i].Text)
		d.str(field+".link", want.Theme.Nav[i].Link, got.Theme.Nav[i].Link)
	}

	d.sidebar(want.Theme.Sidebar, got.Theme.Sidebar)

	d.count("themeConfig.socialLinks", len(want.Theme.SocialLinks), len(got.Theme.SocialLinks))
	for i := range min(len(want.Theme.SocialLinks), len(got.Theme.SocialLinks)) {
		field := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		d.str(field+".icon", want.Theme.SocialLinks[i].Icon, got.Theme.SocialLinks[i].Icon)
		d.str(field+".link", want.Theme.SocialLinks[i].Link, got.Theme.SocialLinks[i].Link)
	}

	var wantTheme, gotTheme string
	if want.Markdown != nil {
		wantTheme = want.Markdown.Theme
	}
	if got.Markdown != nil {
		gotTheme = got.Markdown.Theme
	}
	d.str("markdown.theme", wantTheme, gotTheme)
	return d.out
}

type differ struct {
	out []string
}

func (d *differ) add(field string, want, got any) {
	d.out = append(d.out, fmt.Sprintf("%s: want %v, got %v", field, want, got))
}

func (d *differ) str(field, want, got string) {
	if want != got {
		d.add(field, fmt.Sprintf("%q", want), fmt.Sprintf("%q", got))
	}
}

func (d *differ) boolean(field string, want, got bool) {
	if want != got {
		d.add(field, want, got)
	}
}

func (d *differ) count(field string, want, got int) {
	if want != got {
		d.add(field+" length", want, got)
	}
}

func (d *differ) sidebar(want, got Sidebar) {
	wp, gp := want.Prefixes(), got.Prefixes()
	if fmt.Sprint(wp) != fmt.Sprint(gp) {
		d.add("themeConfig.sidebar keys", wp, gp)
	}
	for _, sec := range want.Sections() {
		gotTree, ok := got.Get(sec.Prefix)
		if !ok {
			continue
		}
		field := fmt.Sprintf("themeConfig.sidebar[%q]", sec.Prefix)
		d.count(field, len(sec.Tree), len(gotTree))
		for i := range min(len(sec.Tree), len(gotTree)) {
			d.group(fmt.Sprintf("%s[%d]", field, i), sec.Tree[i], gotTree[i])
		}
	}
}

func (d *differ) group(field string, want, got SidebarGroup) {
	d.str(field+".text", want.Text, got.Text)
	d.str(field+".link", want.Link, got.Link)
	if want.Collapse != got.Collapse {
		d.add(field+".collapsed", want.Collapse, got.Collapse)
	}
	d.count(field+".items", len(want.Items), len(got.Items))
	for i := range min(len(want.Items), len(got.Items)) {
		itemField := fmt.Sprintf("%s.items[%d]", field, i)
		switch w := want.Items[i].(type) {
		case SidebarLeaf:
			g, ok := got.Items[i].(SidebarLeaf)
			if !ok {
				d.add(itemField, "leaf", "group")
				continue
			}
			d.str(itemField+".text", w.Text, g.Text)
			d.str(itemField+".link", w.Link, g.Link)
		case SidebarGroup:
			g, ok := got.Items[i].(SidebarGroup)
			if !ok {
				d.add(itemField, "group", "leaf")
				continue
			}
			d.group(itemField, w, g)
		}
	}
}
