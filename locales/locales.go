// Package locales embeds the site's translation files.
package locales

import "embed"

// FS holds one YAML file per language, keyed at the top level by language code.
//
//go:embed *.yaml
var FS embed.FS
