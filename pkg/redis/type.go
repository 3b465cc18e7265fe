package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds the connection settings for the cache backend. DB selects
// the logical database; leave Password empty for unauthenticated instances.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// redisImpl backs IRedis with the official go-redis client.
type redisImpl struct {
	client *goredis.Client
}
