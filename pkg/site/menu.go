package site

// MobileBreakpoint is the widest viewport, in CSS pixels, that uses the
// collapsible menu.
const MobileBreakpoint = 768

// Translation keys of the menu toggle's screen-reader label.
const (
	MenuOpenLabelKey  = "site.menu.open"
	MenuCloseLabelKey = "site.menu.close"
)

// SVG paths of the toggle icon.
const (
	MenuIconHamburger = "M3 12h18M3 6h18M3 18h18"
	MenuIconClose     = "M6 18L18 6M6 6l12 12"
)

// Menu is the mobile navigation state. It is a value; methods return the next state.
type Menu struct {
	Open bool `json:"menuOpen"`
}

func (m Menu) Toggle() Menu {
	return Menu{Open: !m.Open}
}

// Escape closes an open menu and reports whether it did, so the caller can
// return focus to the toggle.
func (m Menu) Escape() (Menu, bool) {
	if !m.Open {
		return m, false
	}
	return Menu{}, true
}

// Resize closes the menu once the viewport is wider than MobileBreakpoint.
func (m Menu) Resize(width int) Menu {
	if width > MobileBreakpoint {
		return Menu{}
	}
	return m
}

// LabelKey is the translation key describing what the toggle will do next.
func (m Menu) LabelKey() string {
	if m.Open {
		return MenuCloseLabelKey
	}
	return MenuOpenLabelKey
}

// Icon returns the SVG path for the toggle.
func (m Menu) Icon() string {
	if m.Open {
		return MenuIconClose
	}
	return MenuIconHamburger
}
