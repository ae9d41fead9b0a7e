// Package site holds the hand-authored navigation of the Ys documentation.
//
// Every function builds a fresh value from literals; calling them repeatedly
// yields structurally equal results that share no backing arrays. Order inside
// each slice is the order readers see.
package site

import "github.com/exbotanical/ysdocs/internal/nav"

// Site metadata.
const (
	Base        = "/ys/"
	Lang        = "en-US"
	Title       = "Ys"
	Description = "Minimal web application framework for the C programming language"

	// MarkdownTheme is the code highlighting theme.
	MarkdownTheme = "rose-pine-moon"

	// RepositoryURL is where the framework is developed.
	RepositoryURL = "https://github.com/exbotanical/libys"
)

// Sidebar path prefixes.
const (
	PrefixMain      = "/"
	PrefixReference = "/reference/"
)

// Config assembles the complete site configuration.
func Config() nav.SiteConfig {
	return nav.SiteConfig{
		Base:        Base,
		Lang:        Lang,
		Title:       Title,
		Description: Description,
		LastUpdated: true,
		CleanURLs:   true,
		Theme: nav.ThemeConfig{
			Nav: NavEntries(),
			Sidebar: nav.NewSidebar(
				nav.SidebarSection{Prefix: PrefixMain, Tree: MainSidebar()},
				nav.SidebarSection{Prefix: PrefixReference, Tree: ReferenceSidebar()},
			),
			SocialLinks: SocialLinks(),
		},
		Markdown: &nav.MarkdownConfig{Theme: MarkdownTheme},
	}
}

// NavEntries returns the top bar.
func NavEntries() []nav.NavEntry {
	return []nav.NavEntry{
		nav.Entry("Home", "/"),
		nav.Entry("Recipes", "/recipes/"),
	}
}

// SocialLinks returns the header icons.
func SocialLinks() []nav.SocialLink {
	return []nav.SocialLink{
		nav.Social("github", RepositoryURL),
	}
}

// MainSidebar returns the guide and documentation tree shown under "/".
func MainSidebar() nav.SidebarTree {
	return nav.SidebarTree{
		nav.NewGroup("Introduction").Expanded().
			Leaf("What is Ys?", "/guide/what-is-ys").
			Leaf("Getting Started", "/guide/getting-started").
			Leaf("Platform Support", "/guide/platform-support").
			Leaf("Basic Tutorial", "/guide/basic-tutorial").
			Build(),

		nav.NewGroup("Documentation").Expanded().
			Leaf("Routing and Middleware", "/documentation/routing").
			Leaf("HTTPs Support", "/documentation/https-support").
			Leaf("CORS", "/documentation/cors").
			Leaf("Cookies", "/documentation/cookies").
			Leaf("Configuration and Logging", "/documentation/configuration-and-logging").
			Build(),

		nav.NewGroup("Recipes").Expanded().
			Leaf("Simple Server", "/recipes/simple-recipe").
			Leaf("Authentication", "/recipes/auth-recipe").
			Leaf("Custom Configurations", "/recipes/custom-config-recipe").
			Leaf("CORS Server", "/recipes/cors-recipe").
			Leaf("Middleware", "/recipes/middleware-recipe").
			Leaf("Nested Routing", "/recipes/nested-routing-recipe").
			Leaf("REST Server", "/recipes/rest-recipe").
			Leaf("HTTPs Server", "/recipes/https-recipe").
			Build(),

		nav.NewGroup("API Reference").Link(PrefixReference).Build(),
	}
}

// referencePages lists the API reference pages as text and slug.
var referencePages = [...]struct{ text, slug string }{
	{"Constants", "constants"},
	{"Config", "config"},
	{"Request", "request"},
	{"Response", "response"},
	{"Router", "router"},
	{"Router Attributes", "router-attr"},
	{"Route Handler", "route-handler"},
	{"Server", "server"},
	{"Middleware", "middleware"},
	{"CORS", "cors"},
	{"Cookies", "cookies"},
}

// ReferenceSidebar returns the API reference tree shown under "/reference/".
func ReferenceSidebar() nav.SidebarTree {
	g := nav.NewGroup("API Reference").Link(PrefixReference)
	for _, p := range referencePages {
		g.Leaf(p.text, PrefixReference+p.slug)
	}
	return nav.SidebarTree{g.Build()}
}
