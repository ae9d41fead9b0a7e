package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

func validConfig() SiteConfig {
	return SiteConfig{
		Base:        "/docs/",
		Lang:        "en-US",
		Title:       "Docs",
		Description: "test site",
		LastUpdated: true,
		CleanURLs:   true,
		Theme: ThemeConfig{
			Nav: []NavEntry{Entry("Home", "/"), Entry("Blog", "https://example.com/blog")},
			Sidebar: NewSidebar(
				SidebarSection{Prefix: "/", Tree: SidebarTree{
					NewGroup("Guide").Expanded().Leaf("Intro", "/guide/intro").Build(),
					NewGroup("Reference").Link("/reference/").Build(),
				}},
				SidebarSection{Prefix: "/reference/", Tree: SidebarTree{
					NewGroup("Reference").Link("/reference/").Leaf("Router", "/reference/router").Build(),
				}},
			),
			SocialLinks: []SocialLink{Social("github", "https://github.com/example/docs")},
		},
		Markdown: &MarkdownConfig{Theme: "rose-pine-moon"},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_ReportsEveryIssue(t *testing.T) {
	cfg := validConfig()
	cfg.Base = "docs"
	cfg.Lang = "not a tag!"
	cfg.Title = " "
	cfg.Theme.Nav = append(cfg.Theme.Nav, Entry("", "relative/path"))
	cfg.Theme.SocialLinks = []SocialLink{Social("", "/github")}
	cfg.Markdown = &MarkdownConfig{}

	result := Check(cfg)
	messages := result.Messages()

	assert.Contains(t, messages, `base: "docs" must start and end with a slash`)
	assert.Contains(t, messages, `lang: "not a tag!" is not a BCP 47 language tag`)
	assert.Contains(t, messages, "title: must not be empty")
	assert.Contains(t, messages, "themeConfig.nav[2].text: must not be empty")
	assert.Contains(t, messages, `themeConfig.nav[2].link: "relative/path" is neither a site path nor an absolute URL`)
	assert.Contains(t, messages, "themeConfig.socialLinks[0].icon: must not be empty")
	assert.Contains(t, messages, `themeConfig.socialLinks[0].link: "/github" is not an absolute URL`)
	assert.Contains(t, messages, "markdown.theme: must not be empty when markdown is set")
	assert.Len(t, messages, 8)

	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestValidate_Sidebar(t *testing.T) {
	tests := []struct {
		name    string
		sidebar Sidebar
		want    string
	}{
		{
			name:    "duplicate prefix",
			sidebar: Sidebar{}.Append("/", SidebarTree{NewGroup("A").Link("/a").Build()}).Append("/", SidebarTree{NewGroup("B").Link("/b").Build()}),
			want:    `themeConfig.sidebar["/"]: prefix appears more than once`,
		},
		{
			name:    "prefix without slashes",
			sidebar: NewSidebar(SidebarSection{Prefix: "guide", Tree: SidebarTree{NewGroup("A").Link("/a").Build()}}),
			want:    `themeConfig.sidebar["guide"]: prefix must start and end with a slash`,
		},
		{
			name:    "empty tree",
			sidebar: NewSidebar(SidebarSection{Prefix: "/"}),
			want:    `themeConfig.sidebar["/"]: tree has no groups`,
		},
		{
			name:    "group without items or link",
			sidebar: NewSidebar(SidebarSection{Prefix: "/", Tree: SidebarTree{NewGroup("Empty").Expanded().Build()}}),
			want:    `themeConfig.sidebar["/"][0]: group needs items or a link`,
		},
		{
			name: "nested group without items",
			sidebar: NewSidebar(SidebarSection{Prefix: "/", Tree: SidebarTree{
				NewGroup("Outer").Group(NewGroup("Inner").Link("/inner").Build()).Build(),
			}}),
			want: `themeConfig.sidebar["/"][0].items[0]: nested group needs items`,
		},
		{
			name: "leaf with bad link",
			sidebar: NewSidebar(SidebarSection{Prefix: "/", Tree: SidebarTree{
				NewGroup("Outer").Leaf("Page", "//cdn.example.com/x").Build(),
			}}),
			want: `themeConfig.sidebar["/"][0].items[0].link: "//cdn.example.com/x" is neither a site path nor an absolute URL`,
		},
		{
			name: "group without text",
			sidebar: NewSidebar(SidebarSection{Prefix: "/", Tree: SidebarTree{
				NewGroup("").Leaf("Page", "/page").Build(),
			}}),
			want: `themeConfig.sidebar["/"][0].text: must not be empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Theme.Sidebar = tt.sidebar
			assert.Contains(t, Check(cfg).Messages(), tt.want)
		})
	}
}

func TestValidate_EmptyNav(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Nav = nil
	assert.Contains(t, Check(cfg).Messages(), "themeConfig.nav: at least one entry is required")
}

func TestIsValidLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"/", true},
		{"/reference/router-attr", true},
		{"https://github.com/exbotanical/libys", true},
		{"http://example.com", true},
		{"", false},
		{"guide/intro", false},
		{"//example.com/x", false},
		{"/has space", false},
		{"mailto:someone@example.com", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLink(tt.link))
		})
	}
}
