package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key is absent. Cache layers
// translate it into a miss instead of an error.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods available in the redis-backed client
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	GetContext() context.Context
}
