package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	attr := logger.SessionID("sess-1")
	require.Equal(t, "session_id", attr.Key)
	assert.Equal(t, "sess-1", attr.Value.String())

	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))
}

func TestFormAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"kind", logger.FormKind("login"), "form_kind", "login"},
		{"id", logger.FormID("f-1"), "form_id", "f-1"},
		{"field", logger.Field("login-email"), "field", "login-email"},
		{"phase", logger.Phase("loading"), "phase", "loading"},
		{"lang", logger.Language("es"), "lang", "es"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}

	assert.True(t, logger.FormID("").Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
}
