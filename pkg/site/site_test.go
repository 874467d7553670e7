package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/site"
)

func TestPageFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                    "index",
		"/":                   "index",
		"/index.html":         "index",
		"/pricing":            "pricing",
		"/pages/contact.html": "contact",
		"/dashboard/":         "dashboard",
	}
	for in, want := range tests {
		assert.Equal(t, want, site.PageFromPath(in), in)
	}
}

func TestActiveNav(t *testing.T) {
	t.Parallel()

	links := []site.NavLink{
		{Href: "/", Text: "Inicio"},
		{Href: "/features", Text: "Características"},
		{Href: "/pricing", Text: "Precios"},
		{Href: "/contact", Text: "Contacto"},
		{Href: "/login", Text: "Iniciar sesión"},
		{Href: "/register", Text: "Registro"},
	}

	current := func(ls []site.NavLink) []string {
		var out []string
		for _, l := range ls {
			if l.Current {
				out = append(out, l.Href)
			}
		}
		return out
	}

	assert.Equal(t, []string{"/"}, current(site.ActiveNav("/", links)))
	assert.Equal(t, []string{"/pricing"}, current(site.ActiveNav("/pricing", links)))
	assert.Equal(t, []string{"/contact"}, current(site.ActiveNav("/contact.html", links)))
	assert.Empty(t, current(site.ActiveNav("/dashboard", links)))

	// Matching by text works when the href is not a page name.
	byText := site.ActiveNav("/features", []site.NavLink{{Href: "#top", Text: "Features"}})
	assert.True(t, byText[0].Current)

	// A link without href is never current.
	assert.False(t, site.ActiveNav("/", []site.NavLink{{Text: "Inicio"}})[0].Current)

	// Input is not modified.
	assert.Empty(t, current(links))
}

func TestAccordion(t *testing.T) {
	t.Parallel()

	var a site.Accordion
	assert.Equal(t, site.IconCollapsed, a.Icon("faq-1"))

	a = a.Toggle("faq-1")
	assert.True(t, a.Expanded("faq-1"))
	assert.Equal(t, site.IconExpanded, a.Icon("faq-1"))

	a = a.Toggle("faq-2")
	assert.False(t, a.Expanded("faq-1"), "opening one closes the others")
	assert.True(t, a.Expanded("faq-2"))

	a = a.Toggle("faq-2")
	assert.False(t, a.Expanded("faq-2"))
	assert.Empty(t, a.Open)
}

func TestMenu(t *testing.T) {
	t.Parallel()

	var m site.Menu
	assert.Equal(t, site.MenuOpenLabelKey, m.LabelKey())
	assert.Equal(t, site.MenuIconHamburger, m.Icon())

	m = m.Toggle()
	require.True(t, m.Open)
	assert.Equal(t, site.MenuCloseLabelKey, m.LabelKey())
	assert.Equal(t, site.MenuIconClose, m.Icon())

	assert.True(t, m.Resize(768).Open, "768 is still mobile")
	assert.False(t, m.Resize(769).Open)

	closed, did := m.Escape()
	assert.True(t, did)
	assert.False(t, closed.Open)

	_, did = closed.Escape()
	assert.False(t, did, "escape on a closed menu does nothing")
}
