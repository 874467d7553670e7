// Package i18n localizes the site's messages.
//
// Translations are YAML documents keyed by language code and loaded through a
// TranslationAdapter (MapAdapter for tests, FSAdapter for an embed.FS).
// Keys are dotted paths into the nested tree and values may contain %{name}
// placeholders:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales.FS),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	tr.T("es", "validation.required", "field", "Nombre") // "Nombre es requerido"
//
// Middleware negotiates the request language (lang query parameter, lang
// cookie, then Accept-Language matched with golang.org/x/text/language) and
// stores it in the context, where Translate and Tc pick it up.
package i18n
