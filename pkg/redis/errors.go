package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when Config.ConnectionURL is blank.
	ErrEmptyConnectionURL = errors.New("redis: empty connection url")
	// ErrFailedToParseRedisConnString wraps redis.ParseURL failures.
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection url")
	// ErrRedisNotReady is returned when no ping succeeded within the retry budget.
	ErrRedisNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps a failed readiness ping.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
