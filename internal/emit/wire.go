package emit

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/exbotanical/ysdocs/internal/nav"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Struct field order is the key order of the emitted documents.

type wireSite struct {
	Base        string        `json:"base" yaml:"base"`
	Lang        string        `json:"lang" yaml:"lang"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	LastUpdated bool          `json:"lastUpdated" yaml:"lastUpdated"`
	CleanURLs   bool          `json:"cleanUrls" yaml:"cleanUrls"`
	ThemeConfig wireTheme     `json:"themeConfig" yaml:"themeConfig"`
	Markdown    *wireMarkdown `json:"markdown,omitempty" yaml:"markdown,omitempty"`
}

type wireTheme struct {
	Nav         []wireLink   `json:"nav" yaml:"nav"`
	Sidebar     wireSidebar  `json:"sidebar" yaml:"sidebar"`
	SocialLinks []wireSocial `json:"socialLinks" yaml:"socialLinks"`
}

type wireLink struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

type wireSocial struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

type wireMarkdown struct {
	Theme string `json:"theme" yaml:"theme"`
}

// wireItem is a leaf when only text and link are set.
type wireItem struct {
	Text      string     `json:"text" yaml:"text"`
	Link      string     `json:"link,omitempty" yaml:"link,omitempty"`
	Collapsed *bool      `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []wireItem `json:"items,omitempty" yaml:"items,omitempty"`
}

func (w wireItem) isGroup() bool {
	return w.Collapsed != nil || len(w.Items) > 0
}

type wireSection struct {
	Prefix string
	Groups []wireItem
}

// wireSidebar is an object whose keys keep their order in both JSON and YAML.
type wireSidebar []wireSection

func (s wireSidebar) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, sec := range s {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(sec.Prefix)
		stream.WriteVal(sec.Groups)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (s *wireSidebar) UnmarshalJSON(data []byte) error {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	out := wireSidebar{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, prefix string) bool {
		var groups []wireItem
		it.ReadVal(&groups)
		out = append(out, wireSection{Prefix: prefix, Groups: groups})
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return fmt.Errorf("decode sidebar: %w", iter.Error)
	}
	*s = out
	return nil
}

func (s wireSidebar) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, sec := range s {
		value := &yaml.Node{}
		if err := value.Encode(sec.Groups); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", sec.Prefix, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sec.Prefix}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func (s *wireSidebar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebar must be a mapping", value.Line)
	}
	out := wireSidebar{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var groups []wireItem
		if err := value.Content[i+1].Decode(&groups); err != nil {
			return fmt.Errorf("decode sidebar %q: %w", value.Content[i].Value, err)
		}
		out = append(out, wireSection{Prefix: value.Content[i].Value, Groups: groups})
	}
	*s = out
	return nil
}

func toWire(cfg nav.SiteConfig) wireSite {
	w := wireSite{
		Base:        cfg.Base,
		Lang:        cfg.Lang,
		Title:       cfg.Title,
		Description: cfg.Description,
		LastUpdated: cfg.LastUpdated,
		CleanURLs:   cfg.CleanURLs,
		ThemeConfig: wireTheme{
			Nav:         make([]wireLink, 0, len(cfg.Theme.Nav)),
			Sidebar:     make(wireSidebar, 0, cfg.Theme.Sidebar.Len()),
			SocialLinks: make([]wireSocial, 0, len(cfg.Theme.SocialLinks)),
		},
	}
	for _, e := range cfg.Theme.Nav {
		w.ThemeConfig.Nav = append(w.ThemeConfig.Nav, wireLink{Text: e.Text, Link: e.Link})
	}
	for _, sec := range cfg.Theme.Sidebar.Sections() {
		groups := make([]wireItem, 0, len(sec.Tree))
		for _, g := range sec.Tree {
			groups = append(groups, groupToWire(g))
		}
		w.ThemeConfig.Sidebar = append(w.ThemeConfig.Sidebar, wireSection{Prefix: sec.Prefix, Groups: groups})
	}
	for _, s := range cfg.Theme.SocialLinks {
		w.ThemeConfig.SocialLinks = append(w.ThemeConfig.SocialLinks, wireSocial{Icon: s.Icon, Link: s.Link})
	}
	if cfg.Markdown != nil {
		w.Markdown = &wireMarkdown{Theme: cfg.Markdown.Theme}
	}
	return w
}

func groupToWire(g nav.SidebarGroup) wireItem {
	w := wireItem{Text: g.Text, Link: g.Link}
	if g.Collapsible() {
		collapsed := g.Collapsed()
		w.Collapsed = &collapsed
	}
	for _, item := range g.Items {
		switch it := item.(type) {
		case nav.SidebarLeaf:
			w.Items = append(w.Items, wireItem{Text: it.Text, Link: it.Link})
		case nav.SidebarGroup:
			w.Items = append(w.Items, groupToWire(it))
		}
	}
	return w
}

func fromWire(w wireSite) nav.SiteConfig {
	cfg := nav.SiteConfig{
		Base:        w.Base,
		Lang:        w.Lang,
		Title:       w.Title,
		Description: w.Description,
		LastUpdated: w.LastUpdated,
		CleanURLs:   w.CleanURLs,
	}
	if len(w.ThemeConfig.Nav) > 0 {
		cfg.Theme.Nav = make([]nav.NavEntry, 0, len(w.ThemeConfig.Nav))
		for _, e := range w.ThemeConfig.Nav {
			cfg.Theme.Nav = append(cfg.Theme.Nav, nav.Entry(e.Text, e.Link))
		}
	}
	for _, sec := range w.ThemeConfig.Sidebar {
		var tree nav.SidebarTree
		if len(sec.Groups) > 0 {
			tree = make(nav.SidebarTree, 0, len(sec.Groups))
			for _, g := range sec.Groups {
				tree = append(tree, groupFromWire(g))
			}
		}
		cfg.Theme.Sidebar = cfg.Theme.Sidebar.Append(sec.Prefix, tree)
	}
	if len(w.ThemeConfig.SocialLinks) > 0 {
		cfg.Theme.SocialLinks = make([]nav.SocialLink, 0, len(w.ThemeConfig.SocialLinks))
		for _, s := range w.ThemeConfig.SocialLinks {
			cfg.Theme.SocialLinks = append(cfg.Theme.SocialLinks, nav.Social(s.Icon, s.Link))
		}
	}
	if w.Markdown != nil {
		cfg.Markdown = &nav.MarkdownConfig{Theme: w.Markdown.Theme}
	}
	return cfg
}

func groupFromWire(w wireItem) nav.SidebarGroup {
	b := nav.NewGroup(w.Text).Link(w.Link)
	if w.Collapsed != nil {
		if *w.Collapsed {
			b.Collapsed()
		} else {
			b.Expanded()
		}
	}
	for _, item := range w.Items {
		if item.isGroup() {
			b.Group(groupFromWire(item))
		} else {
			b.Leaf(item.Text, item.Link)
		}
	}
	return b.Build()
}
