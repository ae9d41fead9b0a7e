package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exbotanical/ysdocs/internal/site"
	"github.com/exbotanical/ysdocs/internal/version"
)

func compareGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	golden := filepath.Join("testdata", name)
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		require.NoError(t, os.WriteFile(golden, actual, 0o600))
		return
	}
	// #nosec G304 - test file
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	if !bytes.Equal(want, actual) {
		t.Fatalf("%s mismatch; run UPDATE_GOLDEN=1 go test ./internal/emit to accept\n--- want\n%s\n--- got\n%s", name, want, actual)
	}
}

func TestEncodeModule_Golden(t *testing.T) {
	old := version.Version
	version.Version = "unknown"
	t.Cleanup(func() { version.Version = old })

	data, err := Encode(site.Config(), FormatModule)
	require.NoError(t, err)
	compareGolden(t, "config.mts", data)
}

func TestExtractModuleBody(t *testing.T) {
	body, err := extractModuleBody([]byte("import x\nexport default defineConfig({\"a\": 1})\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(body))

	_, err = extractModuleBody([]byte("defineConfig"))
	require.Error(t, err)

	_, err = extractModuleBody([]byte(") defineConfig("))
	require.Error(t, err)
}

func TestDecodeModule_HandWritten(t *testing.T) {
	src := `import { defineConfig } from 'vitepress'

export default defineConfig({
  "base": "/ys/",
  "lang": "en-US",
  "title": "Ys",
  "themeConfig": {
    "nav": [{"text": "Home", "link": "/"}],
    "sidebar": {"/reference/": [{"text": "API Reference", "link": "/reference/", "items": [{"text": "Server", "link": "/reference/server"}]}]},
    "socialLinks": []
  }
})
`
	cfg, err := Decode([]byte(src), FormatModule)
	require.NoError(t, err)
	assert.Equal(t, "/ys/", cfg.Base)
	assert.Nil(t, cfg.Markdown)
	assert.Nil(t, cfg.Theme.SocialLinks)

	tree, ok := cfg.Theme.Sidebar.Get("/reference/")
	require.True(t, ok)
	require.Len(t, tree, 1)
	assert.Equal(t, "/reference/", tree[0].Link)
	assert.False(t, tree[0].Collapsible())
	require.Len(t, tree[0].Items, 1)
	assert.Equal(t, "Server", tree[0].Items[0].Label())
}
