// Package logger builds slog loggers for the fieldcheck server.
//
// New takes functional options: output format and level, static attributes,
// environment presets and ContextExtractor callbacks that pull request-scoped
// values (request id, environment) out of the context on every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "fieldcheck"),
//		logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "field evaluated",
//		logger.FieldID("email"),
//		logger.FieldKind("email"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so
// log.Info("done", logger.Error(err)) needs no nil check.
package logger
