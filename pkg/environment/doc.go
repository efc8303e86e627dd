// Package environment carries the deployment stage (development, staging,
// production) through configuration, request contexts and log records.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//		// hide internal error details
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors to add an "env"
// attribute to every record logged with a request context.
package environment
