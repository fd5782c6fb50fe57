// Package cache provides msgpack-over-Redis cache primitives. Values are
// namespaced by key prefix so a whole family can be flushed in one call.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Populate sets the Redis client used by every Set and Singular in this
// package. It must be called once before any cache access happens.
func Populate(c *redis.Client) {
	client = c
}

var flushScript = redis.NewScript(`local keys = redis.call('keys', ARGV[1])
	for i=1,#keys,5000 do
		redis.call('del', unpack(keys, i, math.min(i+4999, #keys)))
	end
	return #keys`)

func flushPrefix(prefix string) error {
	return flushScript.Run(context.Background(), client, []string{}, prefix+"*").Err()
}
