package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a translation document whose top-level keys are language
// codes and whose values are nested key maps:
//
//	en:
//	  forms:
//	    login:
//	      error: "Invalid email or password"
func ParseYAML(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	out := make(map[string]map[string]any, len(doc))
	for lang, v := range doc {
		tree, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, v)
		}
		out[lang] = tree
	}
	return out, nil
}
