package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString wraps a REDIS_URL that go-redis cannot parse.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned by Connect once every ping attempt has failed.
	ErrRedisNotReady = errors.New("redis did not answer ping after all connection attempts")

	// ErrEmptyConnectionURL is returned when REDIS_URL is blank.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrHealthcheckFailed marks a failed readiness probe for the registry cache.
	ErrHealthcheckFailed = errors.New("redis cache healthcheck failed")
)
