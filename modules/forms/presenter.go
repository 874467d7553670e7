package forms

import (
	"strings"

	"github.com/dmitrymomot/proapp/pkg/submission"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

// Signal keys shared with the page markup.
const (
	SignalForms        = "forms"
	SignalAnnouncement = "announcement"
)

// SignalName converts a DOM id such as "register-email-error" into the
// camelCase signal key "registerEmailError".
func SignalName(id string) string {
	parts := strings.Split(id, "-")
	var b strings.Builder
	b.Grow(len(id))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// StateSignals renders a form state as a Datastar signal patch:
//
//	{"forms": {"login": {"phase": ..., "values": {...}, "fields": {...}, "regions": {...}, "terms": false}}}
func StateSignals(s submission.FormState) map[string]any {
	values := make(map[string]any, len(s.Fields))
	fields := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		values[SignalName(f.ID)] = f.Value
		fields[SignalName(f.ID)] = f.Decoration
	}

	regions := make(map[string]any)
	for _, r := range submission.Regions(s) {
		regions[SignalName(r.ID)] = r
	}

	return formPatch(s.Kind, map[string]any{
		"phase":   s.Phase,
		"values":  values,
		"fields":  fields,
		"regions": regions,
		"terms":   s.TermsAccepted,
	})
}

// FieldSignals patches the decoration of a single field and its error region.
func FieldSignals(kind submission.Kind, fieldID string, d validator.Decoration) map[string]any {
	region := submission.Region{
		ID:      submission.FieldErrorRegionID(fieldID),
		Visible: d.ErrorVisible,
		Text:    d.Message,
	}
	return formPatch(kind, map[string]any{
		"fields":  map[string]any{SignalName(fieldID): d},
		"regions": map[string]any{SignalName(region.ID): region},
	})
}

// AnnouncementSignals sets the text of the screen-reader live region.
func AnnouncementSignals(msg string) map[string]any {
	return map[string]any{SignalAnnouncement: msg}
}

func formPatch(kind submission.Kind, v map[string]any) map[string]any {
	return map[string]any{SignalForms: map[string]any{string(kind): v}}
}
