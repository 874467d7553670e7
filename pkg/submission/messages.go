package submission

import "context"

// Translation keys for flow messages, with their English fallbacks.
const (
	KeyTermsRequired    = "forms.terms_required"
	KeyLoginRejected    = "forms.login.error"
	KeyContactSuccess   = "forms.contact.success"
	KeyRegisterSuccess  = "forms.register.success"
	KeyLoginSuccess     = "forms.login.success"
	KeyValidationFailed = "forms.validation_failed"
	KeySubmitting       = "forms.submitting"
)

var fallbacks = map[string]string{
	KeyTermsRequired:    "You must accept the terms to continue",
	KeyLoginRejected:    "Invalid email or password",
	KeyContactSuccess:   "Message sent successfully",
	KeyRegisterSuccess:  "Account created successfully",
	KeyLoginSuccess:     "Signed in",
	KeyValidationFailed: "Please correct the highlighted fields",
	KeySubmitting:       "Sending",
}

// Fallback returns the built-in English text for a message key.
func Fallback(key string) string {
	return fallbacks[key]
}

// Translator localizes a message. fallback is returned when no translation exists.
type Translator interface {
	Translate(ctx context.Context, key, fallback string, values map[string]any) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(ctx context.Context, key, fallback string, values map[string]any) string

func (f TranslatorFunc) Translate(ctx context.Context, key, fallback string, values map[string]any) string {
	return f(ctx, key, fallback, values)
}

type fallbackTranslator struct{}

func (fallbackTranslator) Translate(_ context.Context, _, fallback string, _ map[string]any) string {
	return fallback
}

// LabelKey is the translation key of a field label.
func LabelKey(fieldID string) string {
	return "forms.fields." + fieldID
}

// SuccessKey is the translation key of a form's success message.
func SuccessKey(kind Kind) string {
	return "forms." + string(kind) + ".success"
}
