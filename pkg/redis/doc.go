// Package redis connects to the Redis instance that backs session storage.
//
// Connect parses a redis:// URL, retries until the server answers PING, and
// returns a ready go-redis client. Healthcheck adapts the client to the
// readiness probe signature used by httpserver.HealthCheckHandler.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client)
package redis
