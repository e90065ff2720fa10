package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when no connect attempt reached the server.
	ErrFailedToConnectToMongo = errors.New("mongo: failed to connect")
	// ErrHealthcheckFailed wraps a failed readiness ping.
	ErrHealthcheckFailed = errors.New("mongo: healthcheck failed")
	// ErrEmptyDatabaseName is returned by Connect when Config.Database is blank.
	ErrEmptyDatabaseName = errors.New("mongo: empty database name")
)
