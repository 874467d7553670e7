// Package logger builds the application's *slog.Logger.
//
// New picks a text or JSON handler and wraps it so that attributes carried by
// the context (request id, environment, client address) are added to every
// record logged with a *Context method. attr.go holds constructors for the
// attribute keys used across ProApp so that form, session and request fields
// are named the same everywhere.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "proapp"),
//		logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.FormKind("contact"))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
