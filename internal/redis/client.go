package redisx

import (
	redis "github.com/redis/go-redis/v9"
)

// NewClient returns a Redis client for the rate-limit middleware.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
