package nav

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/exbotanical/ysdocs/internal/foundation"
)

// Validation codes attached to each reported problem.
const (
	CodeRequired  = "required"
	CodeLink      = "link"
	CodeBase      = "base"
	CodeLanguage  = "language"
	CodePrefix    = "prefix"
	CodeDuplicate = "duplicate"
	CodeEmpty     = "empty"
)

// Validate checks the structural invariants of cfg and reports every problem
// it finds as one classified validation error. A nil return means the
// configuration can be emitted.
func Validate(cfg SiteConfig) error {
	return Check(cfg).ToError("site config is invalid")
}

// Check is Validate without the error conversion.
func Check(cfg SiteConfig) foundation.ValidationResult {
	return foundation.NewValidatorChain(
		checkMetadata,
		checkNav,
		checkSidebar,
		checkSocial,
		checkMarkdown,
	).Validate(cfg)
}

func checkMetadata(cfg SiteConfig) foundation.ValidationResult {
	var r foundation.ValidationResult
	if !strings.HasPrefix(cfg.Base, "/") || !strings.HasSuffix(cfg.Base, "/") {
		r.Add("base", CodeBase, fmt.Sprintf("%q must start and end with a slash", cfg.Base))
	}
	if cfg.Lang == "" {
		r.Add("lang", CodeRequired, "must not be empty")
	} else if _, err := language.Parse(cfg.Lang); err != nil {
		r.Add("lang", CodeLanguage, fmt.Sprintf("%q is not a BCP 47 language tag", cfg.Lang))
	}
	if strings.TrimSpace(cfg.Title) == "" {
		r.Add("title", CodeRequired, "must not be empty")
	}
	return r
}

func checkNav(cfg SiteConfig) foundation.ValidationResult {
	var r foundation.ValidationResult
	if len(cfg.Theme.Nav) == 0 {
		r.Add("themeConfig.nav", CodeEmpty, "at least one entry is required")
	}
	for i, e := range cfg.Theme.Nav {
		field := fmt.Sprintf("themeConfig.nav[%d]", i)
		checkText(&r, field, e.Text)
		checkLink(&r, field, e.Link)
	}
	return r
}

func checkSidebar(cfg SiteConfig) foundation.ValidationResult {
	var r foundation.ValidationResult
	seen := make(map[string]bool, cfg.Theme.Sidebar.Len())
	for _, sec := range cfg.Theme.Sidebar.Sections() {
		field := fmt.Sprintf("themeConfig.sidebar[%q]", sec.Prefix)
		if seen[sec.Prefix] {
			r.Add(field, CodeDuplicate, "prefix appears more than once")
		}
		seen[sec.Prefix] = true
		if !strings.HasPrefix(sec.Prefix, "/") || !strings.HasSuffix(sec.Prefix, "/") {
			r.Add(field, CodePrefix, "prefix must start and end with a slash")
		}
		if len(sec.Tree) == 0 {
			r.Add(field, CodeEmpty, "tree has no groups")
		}
		for i, g := range sec.Tree {
			checkGroup(&r, fmt.Sprintf("%s[%d]", field, i), g, true)
		}
	}
	return r
}

func checkGroup(r *foundation.ValidationResult, field string, g SidebarGroup, topLevel bool) {
	checkText(r, field, g.Text)
	if g.Link != "" {
		checkLink(r, field, g.Link)
	}
	switch {
	case len(g.Items) > 0:
	case topLevel && g.Link != "":
		// a heading that only links somewhere
	case topLevel:
		r.Add(field, CodeEmpty, "group needs items or a link")
	default:
		r.Add(field, CodeEmpty, "nested group needs items")
	}
	for i, item := range g.Items {
		itemField := fmt.Sprintf("%s.items[%d]", field, i)
		switch it := item.(type) {
		case SidebarLeaf:
			checkText(r, itemField, it.Text)
			checkLink(r, itemField, it.Link)
		case SidebarGroup:
			checkGroup(r, itemField, it, false)
		default:
			r.Add(itemField, CodeRequired, "item must be a leaf or a group")
		}
	}
}

func checkSocial(cfg SiteConfig) foundation.ValidationResult {
	var r foundation.ValidationResult
	for i, s := range cfg.Theme.SocialLinks {
		field := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if strings.TrimSpace(s.Icon) == "" {
			r.Add(field+".icon", CodeRequired, "must not be empty")
		}
		if !IsExternalURL(s.Link) {
			r.Add(field+".link", CodeLink, fmt.Sprintf("%q is not an absolute URL", s.Link))
		}
	}
	return r
}

func checkMarkdown(cfg SiteConfig) foundation.ValidationResult {
	var r foundation.ValidationResult
	if cfg.Markdown != nil && strings.TrimSpace(cfg.Markdown.Theme) == "" {
		r.Add("markdown.theme", CodeRequired, "must not be empty when markdown is set")
	}
	return r
}

func checkText(r *foundation.ValidationResult, field, text string) {
	if strings.TrimSpace(text) == "" {
		r.Add(field+".text", CodeRequired, "must not be empty")
	}
}

func checkLink(r *foundation.ValidationResult, field, link string) {
	if !IsValidLink(link) {
		r.Add(field+".link", CodeLink, fmt.Sprintf("%q is neither a site path nor an absolute URL", link))
	}
}

// IsValidLink reports whether link is an internal site path or an absolute
// http(s) URL.
func IsValidLink(link string) bool {
	return IsSitePath(link) || IsExternalURL(link)
}

// IsSitePath reports whether link is a rooted path inside the site.
func IsSitePath(link string) bool {
	if !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//") {
		return false
	}
	return !strings.ContainsAny(link, " \t\r\n")
}

// IsExternalURL reports whether link is an absolute http or https URL.
func IsExternalURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
