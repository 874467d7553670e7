package pages

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/proapp/handler"
	"github.com/dmitrymomot/proapp/modules/forms"
	"github.com/dmitrymomot/proapp/pkg/i18n"
	"github.com/dmitrymomot/proapp/pkg/site"
	"github.com/dmitrymomot/proapp/pkg/submission"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

// DatastarScript is the client runtime loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// FAQItems lists the pricing questions in display order.
var FAQItems = []string{"trial", "cancel", "data"}

var navPages = []struct{ href, key string }{
	{"/", "site.nav.index"},
	{"/features", "site.nav.features"},
	{"/pricing", "site.nav.pricing"},
	{"/contact", "site.nav.contact"},
	{"/login", "site.nav.login"},
	{"/register", "site.nav.register"},
}

// Views renders the site pages in the language carried by the render context.
type Views struct {
	t *i18n.Translator
}

func NewViews(t *i18n.Translator) *Views {
	return &Views{t: t}
}

// errorText localises an error key such as "not_found", falling back to the
// text itself for messages that are not keys.
func (v *Views) errorText(ctx context.Context, msg string) string {
	if v.t == nil {
		return msg
	}
	return v.t.Translate(ctx, "errors."+msg, msg, nil)
}

func (v *Views) tr(ctx context.Context, key string, args ...string) string {
	if v.t == nil {
		return key
	}
	return v.t.Tc(ctx, key, args...)
}

// Page wraps body in the site layout. path selects the current nav entry.
func (v *Views) Page(path, titleKey string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		lang := i18n.GetLocale(ctx)
		if lang == "" {
			lang = "en"
		}
		menu := site.Menu{}

		w.printf(`<!doctype html><html lang="%s"><head><meta charset="utf-8">`, esc(lang))
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.printf(`<title>%s · ProApp</title>`, esc(v.tr(ctx, titleKey)))
		w.printf(`<script type="module" src="%s"></script></head>`, esc(DatastarScript))

		w.printf(`<body data-signals="%s"`, signalsAttr(mergeSignals(
			v.menuSignals(ctx, menu),
			faqSignals(site.Accordion{}),
			forms.AnnouncementSignals(""),
			map[string]any{"viewportWidth": 0},
		)))
		w.raw(` data-on-keydown__window="evt.key === 'Escape' &amp;&amp; @post('/ui/menu/escape')"`)
		w.raw(` data-on-resize__window__debounce.200ms="$viewportWidth = window.innerWidth; @post('/ui/menu/resize')">`)

		w.raw(`<header><nav aria-label="Main">`)
		w.raw(`<a class="logo" href="/">ProApp</a>`)
		w.raw(`<button type="button" class="mobile-menu-toggle" aria-controls="nav-menu"`)
		w.raw(` data-attr-aria-expanded="$menuOpen" data-on-click="@post('/ui/menu/toggle')">`)
		w.printf(`<svg viewBox="0 0 24 24" aria-hidden="true"><path data-attr-d="$menuIcon" d="%s"/></svg>`, esc(menu.Icon()))
		w.printf(`<span class="sr-only" data-text="$menuLabel">%s</span></button>`, esc(v.tr(ctx, menu.LabelKey())))
		w.raw(`<ul id="nav-menu" class="nav-menu" data-class-active="$menuOpen">`)
		for _, l := range site.ActiveNav(path, v.navLinks(ctx)) {
			if l.Current {
				w.printf(`<li><a href="%s" class="active" aria-current="page">%s</a></li>`, esc(l.Href), esc(l.Text))
				continue
			}
			w.printf(`<li><a href="%s">%s</a></li>`, esc(l.Href), esc(l.Text))
		}
		w.raw(`</ul></nav></header>`)

		w.raw(`<div id="announcer" class="sr-only" role="status" aria-live="polite" aria-atomic="true" data-text="$announcement"></div>`)
		w.raw(`<div id="toast-container" class="toast-container"></div>`)
		w.raw(`<main id="main">`)
		if w.err == nil && body != nil {
			w.err = body.Render(ctx, w.w)
		}
		w.raw(`</main></body></html>`)
	})
}

func (v *Views) navLinks(ctx context.Context) []site.NavLink {
	links := make([]site.NavLink, len(navPages))
	for i, p := range navPages {
		links[i] = site.NavLink{Href: p.href, Text: v.tr(ctx, p.key)}
	}
	return links
}

func (v *Views) menuSignals(ctx context.Context, m site.Menu) map[string]any {
	return map[string]any{
		"menuOpen":  m.Open,
		"menuIcon":  m.Icon(),
		"menuLabel": v.tr(ctx, m.LabelKey()),
	}
}

func faqSignals(a site.Accordion) map[string]any {
	icons := make(map[string]any, len(FAQItems))
	for _, id := range FAQItems {
		icons[id] = a.Icon(id)
	}
	return map[string]any{"faqOpen": a.Open, "faqIcons": icons}
}

func mergeSignals(parts ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, p := range parts {
		for k, val := range p {
			out[k] = val
		}
	}
	return out
}

func (v *Views) Index() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section class="hero"><h1>%s</h1><p class="lead">%s</p>`,
			esc(v.tr(ctx, "pages.index.heading")), esc(v.tr(ctx, "pages.index.lead")))
		w.printf(`<a class="btn btn-primary" href="/register">%s</a></section>`, esc(v.tr(ctx, "pages.index.cta")))
	})
}

func (v *Views) Features() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section class="features"><h1>%s</h1><p class="lead">%s</p></section>`,
			esc(v.tr(ctx, "pages.features.heading")), esc(v.tr(ctx, "pages.features.lead")))
	})
}

// Pricing renders the plans and the FAQ accordion. Answers are shown from
// the faqOpen signal that /ui/faq/{id} patches.
func (v *Views) Pricing() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section class="pricing"><h1>%s</h1><p class="lead">%s</p></section>`,
			esc(v.tr(ctx, "pages.pricing.heading")), esc(v.tr(ctx, "pages.pricing.lead")))
		w.printf(`<section class="faq"><h2>%s</h2>`, esc(v.tr(ctx, "pages.pricing.faq_heading")))
		for _, id := range FAQItems {
			key := "pages.pricing.faq." + id
			w.printf(`<div class="faq-item" data-class-active="$faqOpen === '%s'">`, id)
			w.printf(`<button type="button" class="faq-question" id="faq-%s" aria-controls="faq-%s-answer" aria-expanded="false"`, id, id)
			w.printf(` data-attr-aria-expanded="$faqOpen === '%s'" data-on-click="@post('/ui/faq/%s')">`, id, id)
			w.printf(`<span>%s</span><span class="faq-icon" aria-hidden="true" data-text="$faqIcons.%s">%s</span></button>`,
				esc(v.tr(ctx, key+".question")), id, esc(site.IconCollapsed))
			w.printf(`<div class="faq-answer" id="faq-%s-answer" role="region" aria-labelledby="faq-%s" data-show="$faqOpen === '%s'"><p>%s</p></div></div>`,
				id, id, id, esc(v.tr(ctx, key+".answer")))
		}
		w.raw(`</section>`)
	})
}

func (v *Views) Contact() templ.Component {
	return v.formPage("pages.contact.heading", submission.ContactForm(), "pages.contact.submit", nil)
}

func (v *Views) Register() templ.Component {
	return v.formPage("pages.register.heading", submission.RegisterForm(), "pages.register.submit", v.terms)
}

func (v *Views) Login() templ.Component {
	return v.formPage("pages.login.heading", submission.LoginForm(), "pages.login.submit", v.loginHint)
}

// Dashboard greets the demo user.
func (v *Views) Dashboard() templ.Component {
	return component(func(ctx context.Context, w *writer) {
		name := v.tr(ctx, "dashboard.demo_user")
		w.printf(`<section class="dashboard"><h1>%s</h1>`, esc(v.tr(ctx, "dashboard.welcome", "name", name)))
		w.printf(`<a class="btn" href="/logout">%s</a></section>`, esc(v.tr(ctx, "dashboard.logout")))
	})
}

// formPage renders a form bound to the signals the forms module patches:
// forms.<kind>.values, .fields and .regions keyed by camelCase DOM id.
func (v *Views) formPage(headingKey string, def submission.Definition, submitKey string, extra func(context.Context, *writer, submission.Definition)) templ.Component {
	kind := string(def.Kind)
	base := "forms." + kind
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section class="form-page"><h1>%s</h1>`, esc(v.tr(ctx, headingKey)))
		w.printf(`<form id="%s-form" class="form" novalidate data-signals="%s" data-on-load="@get('/forms/%s/state')"`,
			kind, signalsAttr(forms.StateSignals(submission.NewState("", def))), kind)
		w.printf(` data-on-submit="@post('/forms/%s/submit')">`, kind)

		if def.Kind == submission.KindLogin {
			errID := submission.ErrorRegionID(def.Kind)
			w.printf(`<div id="%s" class="alert alert-error" role="alert" style="display:none" data-show="$%s.regions.%s.visible">%s</div>`,
				errID, base, forms.SignalName(errID), esc(v.tr(ctx, "forms.login.error")))
		}

		for _, f := range def.Fields {
			v.field(ctx, w, base, f)
		}
		if extra != nil {
			extra(ctx, w, def)
		}

		loadingID := submission.LoadingRegionID(def.Kind)
		w.printf(`<div id="%s" class="loading" aria-hidden="true" style="display:none" data-show="$%s.regions.%s.visible">%s</div>`,
			loadingID, base, forms.SignalName(loadingID), esc(v.tr(ctx, "forms.submitting")))
		if def.Kind != submission.KindLogin {
			successID := submission.SuccessRegionID(def.Kind)
			w.printf(`<div id="%s" class="alert alert-success" style="display:none" data-show="$%s.regions.%s.visible">%s</div>`,
				successID, base, forms.SignalName(successID), esc(v.tr(ctx, fmt.Sprintf("forms.%s.success", kind))))
		}

		submitID := submission.SubmitRegionID(def.Kind)
		w.printf(`<button id="%s" type="submit" class="btn btn-primary" data-attr-disabled="$%s.regions.%s.disabled">%s</button>`,
			submitID, base, forms.SignalName(submitID), esc(v.tr(ctx, submitKey)))
		w.raw(`</form></section>`)
	})
}

func (v *Views) field(ctx context.Context, w *writer, base string, f validator.FieldSpec) {
	name := forms.SignalName(f.ID)
	errID := submission.FieldErrorRegionID(f.ID)
	kind := base[len("forms."):]

	label := v.tr(ctx, "forms.fields."+f.ID)
	if f.Rules.Required {
		label += " *"
	}

	w.raw(`<div class="form-group">`)
	w.printf(`<label for="%s">%s</label>`, f.ID, esc(label))

	attrs := fmt.Sprintf(`id="%s" name="%s" class="form-input" aria-describedby="%s" data-bind="%s.values.%s"`+
		` data-class-success="$%s.fields.%s.status === 'success'" data-class-error="$%s.fields.%s.status === 'error'"`+
		` data-attr-aria-invalid="$%s.fields.%s.ariaInvalid" data-on-blur="@post('/forms/%s/validate/%s')"`,
		f.ID, f.ID, errID, base, name, base, name, base, name, base, name, kind, f.ID)

	switch inputType(f) {
	case "textarea":
		w.printf(`<textarea %s rows="5"></textarea>`, attrs)
	default:
		w.printf(`<input type="%s" %s>`, inputType(f), attrs)
	}

	w.printf(`<div id="%s" class="form-error" role="alert" style="display:none" data-show="$%s.regions.%s.visible" data-text="$%s.regions.%s.text"></div>`,
		errID, base, forms.SignalName(errID), base, forms.SignalName(errID))
	w.raw(`</div>`)
}

func inputType(f validator.FieldSpec) string {
	switch {
	case f.Rules.Email:
		return "email"
	case f.Rules.Password, f.ID == "login-password":
		return "password"
	case f.Rules.MinLength >= 10:
		return "textarea"
	default:
		return "text"
	}
}

func (v *Views) terms(ctx context.Context, w *writer, def submission.Definition) {
	base := "forms." + string(def.Kind)
	w.raw(`<div class="form-group form-check">`)
	w.printf(`<input type="checkbox" id="register-terms" data-bind="%s.terms">`, base)
	w.printf(`<label for="register-terms">%s</label>`, esc(v.tr(ctx, "pages.register.terms")))
	w.printf(`<div id="%s" class="form-error" role="alert" style="display:none" data-show="$%s.regions.%s.visible" data-text="$%s.regions.%s.text"></div>`,
		submission.TermsRegionID, base, forms.SignalName(submission.TermsRegionID), base, forms.SignalName(submission.TermsRegionID))
	w.raw(`</div>`)
}

func (v *Views) loginHint(ctx context.Context, w *writer, _ submission.Definition) {
	w.printf(`<p class="form-hint">%s</p>`, esc(v.tr(ctx, "pages.login.hint")))
}

// ErrorPage renders a full error page for handler.ErrorHandlerConfig.
func (v *Views) ErrorPage(p handler.ErrorPageParams) templ.Component {
	body := component(func(ctx context.Context, w *writer) {
		w.printf(`<section class="error-page"><h1>%d</h1><h2>%s</h2><p>%s</p>`,
			p.StatusCode, esc(v.tr(ctx, "pages.error.title")), esc(v.errorText(ctx, p.Error)))
		if p.RequestID != "" {
			w.printf(`<p class="request-id"><code>%s</code></p>`, esc(p.RequestID))
		}
		if p.RetryURL != "" {
			w.printf(`<a class="btn" href="%s">%s</a>`, esc(p.RetryURL), esc(v.tr(ctx, "pages.error.retry")))
		}
		w.raw(`</section>`)
	})
	return v.Page("/error", "pages.error.title", body)
}

// ErrorToast renders the toast prepended to #toast-container on Datastar requests.
func (v *Views) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<div class="toast toast-%s" role="alert"`, esc(p.Type))
		if p.RequestID != "" {
			w.printf(` data-request-id="%s"`, esc(p.RequestID))
		}
		w.printf(`>%s</div>`, esc(v.errorText(ctx, p.Message)))
	})
}
