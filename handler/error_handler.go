package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/requestid"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// classifyError maps err to a status, a user-facing message and a log level.
// Validation errors win over HTTP errors when both are present in the chain.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusUnprocessableEntity
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, e.Message)
		}
		info.Message = strings.Join(msgs, "; ")
	}

	switch {
	case isClientError(info.StatusCode):
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	default:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	}
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for DataStar request",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})
	response := Templ(component, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))

	// SSE responses keep status 200; the toast carries the error.
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

func renderHTTPResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	if renderErr := TemplWithStatus(info.StatusCode, component).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type.
// Regular HTTP requests get a full error page, DataStar requests a toast notification.
// Configure this once in main.go and pass to all modules.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
		} else {
			renderHTTPResponse(ctx, cfg, info, requestID, log)
		}
	}
}
