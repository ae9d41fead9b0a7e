// Package nav defines the navigation model of a documentation site: the top
// nav bar, path-scoped sidebar trees, social links and site metadata.
//
// Every type is a plain value. A SiteConfig is assembled once, checked with
// Validate, and then handed read-only to the emitter; nothing in this package
// mutates a value after it has been built.
//
// Sidebar entries form a small tree. SidebarItem is a closed variant
// implemented only by SidebarLeaf and SidebarGroup, so a type switch over an
// item is exhaustive with two cases.
package nav
