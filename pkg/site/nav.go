package site

import (
	"path"
	"strings"
)

// NavLink is one entry of the main navigation.
type NavLink struct {
	Href    string
	Text    string
	Current bool
}

// IndexPage is the page name of the site root.
const IndexPage = "index"

// pageTexts lists the link texts, English and Spanish, that identify each page
// when its href does not.
var pageTexts = map[string][]string{
	"index":    {"inicio", "index", "home"},
	"features": {"características", "features"},
	"pricing":  {"precios", "pricing"},
	"contact":  {"contacto", "contact"},
	"login":    {"iniciar sesión", "login", "sign in"},
	"register": {"registro", "register", "sign up"},
}

// PageFromPath returns the page name for a URL path: the last segment
// without its .html suffix, or "index" for the root.
func PageFromPath(p string) string {
	p = strings.TrimSuffix(p, "/")
	name := strings.TrimSuffix(path.Base(p), ".html")
	if name == "" || name == "." || name == "/" {
		return IndexPage
	}
	return name
}

// ActiveNav returns a copy of links with Current set on the links that point
// at the page of currentPath. A link matches when its text contains one of the
// page's known texts, when its href names the page, or when both are the index.
func ActiveNav(currentPath string, links []NavLink) []NavLink {
	page := PageFromPath(currentPath)
	expected, ok := pageTexts[page]
	if !ok {
		expected = []string{page}
	}

	out := make([]NavLink, len(links))
	for i, l := range links {
		l.Current = false
		if l.Href != "" {
			l.Current = matches(page, expected, l)
		}
		out[i] = l
	}
	return out
}

func matches(page string, expected []string, l NavLink) bool {
	text := strings.ToLower(l.Text)
	for _, e := range expected {
		if strings.Contains(text, e) {
			return true
		}
	}
	linkPage := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSuffix(l.Href, ".html"), "./"), "/")
	if linkPage == page {
		return true
	}
	return page == IndexPage && (linkPage == IndexPage || linkPage == "")
}
