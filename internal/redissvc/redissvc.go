package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisService bundles the shared redis client with the long-lived context
// the middleware and strike log use for their calls.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// Ping verifies the connection; called once at startup before the service is
// handed to anyone.
func (a *RedisService) Ping() error {
	return a.rdb.Ping(a.ctx).Err()
}
