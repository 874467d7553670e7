// Package pages renders the ProApp site: the marketing pages, the contact,
// register and login forms bound to the signals of the forms module, and the
// guarded dashboard.
//
// Pages are plain templ components. The mobile menu and the pricing FAQ keep
// their state in Datastar signals; the /ui endpoints compute the next state
// with the site package and patch it back.
//
//	views := pages.NewViews(translator)
//	svc := pages.NewService(views, store, pages.WithLogoutHook(forget))
//	r.Mount("/", svc.Handle())
package pages
