package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/nav"
	"github.com/exbotanical/ysdocs/internal/site"
)

var allFormats = []Format{FormatJSON, FormatYAML, FormatModule}

func TestRoundTrip(t *testing.T) {
	want := site.Config()
	for _, format := range allFormats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(want, format)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(string(data), "\n"))

			got, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Empty(t, nav.Diff(want, got))
		})
	}
}

func TestRoundTrip_NestedAndCollapsed(t *testing.T) {
	want := nav.SiteConfig{
		Base:  "/",
		Lang:  "de",
		Title: "Nested",
		Theme: nav.ThemeConfig{
			Nav: []nav.NavEntry{nav.Entry("Home", "/")},
			Sidebar: nav.NewSidebar(nav.SidebarSection{Prefix: "/", Tree: nav.SidebarTree{
				nav.NewGroup("Outer").Collapsed().
					Leaf("A", "/a").
					Group(nav.NewGroup("Inner").Link("/inner/").Expanded().Leaf("B", "/inner/b").Build()).
					Group(nav.NewGroup("Plain").Leaf("C", "/c").Build()).
					Build(),
			}}),
		},
	}
	require.NoError(t, nav.Validate(want))

	for _, format := range allFormats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(want, format)
			require.NoError(t, err)
			got, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeJSON_Golden(t *testing.T) {
	data, err := Encode(site.Config(), FormatJSON)
	require.NoError(t, err)
	compareGolden(t, "config.json", data)
}

func TestEncodeYAML_Shape(t *testing.T) {
	data, err := Encode(site.Config(), FormatYAML)
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	root := doc.Content[0]
	assert.Equal(t,
		[]string{"base", "lang", "title", "description", "lastUpdated", "cleanUrls", "themeConfig", "markdown"},
		mappingKeys(root))

	theme := mappingValue(t, root, "themeConfig")
	assert.Equal(t, []string{"nav", "sidebar", "socialLinks"}, mappingKeys(theme))
	assert.Equal(t, []string{"/", "/reference/"}, mappingKeys(mappingValue(t, theme, "sidebar")))

	text := string(data)
	assert.Contains(t, text, "base: /ys/\n")
	assert.Contains(t, text, "lastUpdated: true\n")
	assert.Contains(t, text, "collapsed: false\n")
	assert.Contains(t, text, "theme: rose-pine-moon\n")
}

func TestEncode_SidebarKeyOrderFollowsAuthoring(t *testing.T) {
	cfg := site.Config()
	ref, _ := cfg.Theme.Sidebar.Get(site.PrefixReference)
	main, _ := cfg.Theme.Sidebar.Get(site.PrefixMain)
	cfg.Theme.Sidebar = nav.NewSidebar(
		nav.SidebarSection{Prefix: site.PrefixReference, Tree: ref},
		nav.SidebarSection{Prefix: site.PrefixMain, Tree: main},
	)

	for _, format := range allFormats {
		data, err := Encode(cfg, format)
		require.NoError(t, err)

		got, err := Decode(data, format)
		require.NoError(t, err)
		assert.Equal(t, []string{"/reference/", "/"}, got.Theme.Sidebar.Prefixes(), "%s", format)
	}
}

func TestEncode_OmitsOptionalKeys(t *testing.T) {
	cfg := site.Config()
	cfg.Markdown = nil

	data, err := Encode(cfg, FormatJSON)
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, `"markdown"`)

	// the link-only heading carries neither collapsed nor items
	assert.Contains(t, text, `{
          "text": "API Reference",
          "link": "/reference/"
        }`)
}

func TestDecode_KeepsDuplicatePrefixes(t *testing.T) {
	data := []byte(`{"base":"/","lang":"en","title":"t","themeConfig":{"nav":[{"text":"Home","link":"/"}],` +
		`"sidebar":{"/":[{"text":"A","link":"/a"}],"/":[{"text":"B","link":"/b"}]},"socialLinks":[]}}`)

	cfg, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/"}, cfg.Theme.Sidebar.Prefixes())

	err = nav.Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"bad json", `{"base":`, FormatJSON},
		{"bad yaml", "base: [unterminated", FormatYAML},
		{"sidebar not a mapping", "themeConfig:\n  sidebar:\n    - a\n", FormatYAML},
		{"module without defineConfig", "export default {}\n", FormatModule},
		{"module with bad body", "export default defineConfig({nope})\n", FormatModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryEmit), "got %v", err)
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(site.Config(), Format("toml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
}

func mappingKeys(n *yaml.Node) []string {
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

func mappingValue(t *testing.T, n *yaml.Node, key string) *yaml.Node {
	t.Helper()
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	t.Fatalf("key %q not found", key)
	return nil
}
