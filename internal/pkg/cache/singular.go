package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
	}
}

type Singular[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	key string
}

func (c *Singular[T]) Get(dest *T) error {
	resp, err := client.Get(context.Background(), c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", c.key).Msg("failed to get value from redis")
		}
		return err
	}
	err = msgpack.Unmarshal(resp, dest)
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to unmarshal value from msgpack from redis")
		return err
	}
	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) error {
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to marshal value with msgpack")
		return err
	}
	err = client.Set(context.Background(), c.key, b, expire).Err()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

// MutexGetSet gets value from cache and writes to dest, or if the key does not exist,
// it executes valueFunc to get cache value if the key still not exists when serially
// dispatched, sets value to cache and writes value to dest.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	err := c.Get(dest)
	if err == nil {
		return nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(dest, valueFunc, expire)
}

func (c *Singular[T]) slowMutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()
	err := c.Get(dest)

	if err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return err
	}

	err = c.Set(value, expire)
	if err != nil {
		return err
	}

	*dest = value

	return nil
}

func (c *Singular[T]) Delete() error {
	if err := client.Del(context.Background(), c.key).Err(); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to delete value from redis")
		return err
	}

	return nil
}

func (c *Singular[T]) Flush() error {
	return c.Delete()
}
