package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// SessionID records the visitor session identifier under the key "session_id".
// An empty id yields an empty Attr.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// FormKind records the form kind (contact, register, login) under "form_kind".
func FormKind(kind string) slog.Attr {
	return slog.String("form_kind", kind)
}

// FormID records the form instance identifier under "form_id".
// An empty id yields an empty Attr.
func FormID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form_id", id)
}

// Field records a form field identifier under "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Phase records a form phase under "phase".
func Phase(p string) slog.Attr {
	return slog.String("phase", p)
}

// Language records the negotiated language tag under "lang".
func Language(tag string) slog.Attr {
	return slog.String("lang", tag)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
