// Package emit converts a nav.SiteConfig to and from the files the site
// generator loads: plain JSON, YAML, and a VitePress config module that
// exports the configuration through defineConfig.
//
// The wire shape is fixed by the consumer: top-level base, lang, title,
// description, lastUpdated, cleanUrls, themeConfig and markdown keys, with
// themeConfig.sidebar written as an object whose key order matches the
// authoring order of the sidebar sections. Decoding any emitted file yields a
// configuration structurally equal to the one that was encoded.
package emit
