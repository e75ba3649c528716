// Package logger provides a context-aware wrapper around Go's slog package:
// a single factory, New, configured through functional options, plus helper
// attribute constructors that keep key naming consistent across the codebase.
//
// New picks a text or JSON handler based on the configured Format and wraps
// it in LogHandlerDecorator, which runs registered ContextExtractor callbacks
// on every record so request-scoped values (like a request id) are injected
// automatically.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("exam-client"),
//	)
//	log.Info("toast dismissed", logger.ToastID(id))
//
// For production use the JSON defaults:
//
//	log := logger.New(logger.WithProduction("exam-client"))
//	logger.SetAsDefault(log)
package logger
