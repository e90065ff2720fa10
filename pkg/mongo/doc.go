// Package mongo connects to the MongoDB deployment that stores notifications
// and user records.
//
// New retries until the server answers a ping and returns a pooled client.
// Connect does the same and returns the configured database. Healthcheck
// adapts the client to the readiness probe signature used by
// httpserver.HealthCheckHandler.
//
//	db, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	storage := notifications.NewMongoStorage(db)
//
// Failures are reported through the sentinels in errors.go and can be matched
// with errors.Is.
package mongo
