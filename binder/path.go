package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path parameter value.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Only string fields and named string types can be bound.
//
// Example with chi router:
//
//	type validateRequest struct {
//		Kind  string `path:"kind"`
//		Field string `path:"field"`
//	}
//
//	r.Post("/{kind}/validate/{field}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, validateRequest](
//			binder.Signals(),
//			binder.Path(chi.URLParam),
//		),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}

			if field.Kind() != reflect.String {
				return fmt.Errorf("%w: field %s: unsupported type %s", ErrInvalidPath, fieldType.Name, field.Type())
			}
			field.SetString(value)
		}

		return nil
	}
}

// parseFieldTag returns the parameter name for a struct field and whether it must be skipped.
// Untagged fields are skipped so path binding never clobbers body fields.
func parseFieldTag(field reflect.StructField, tagName string) (string, bool) {
	tag, ok := field.Tag.Lookup(tagName)
	if !ok || tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, false
}
