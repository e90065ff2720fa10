// Package logger builds the *slog.Logger used across the service and keeps
// attribute naming consistent through small constructor helpers.
//
// New returns a logger configured by functional options. The environment
// presets pick a format and level that suit the deployment:
//
//	log := logger.New(logger.WithEnvironment(cfg.AppEnv, "notifyd"))
//	logger.SetAsDefault(log)
//
// Context extractors registered with WithContextExtractors or WithContextValue
// run on every record, so request scoped values such as the authenticated
// user id end up in each log line without being passed around explicitly:
//
//	log := logger.New(
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id, ok := session.UserIDFromContext(ctx)
//	        return logger.UserID(id), ok
//	    }),
//	)
//
// Helpers such as Error, UserID, NotificationID and ChannelID return an empty
// slog.Attr for nil or empty input, which slog drops from the output.
package logger
