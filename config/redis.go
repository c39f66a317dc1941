package config

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient backs cart sessions. Nil when REDIS_ADDR is unset or the
// server did not answer at startup.
var RedisClient *redis.Client

// InitRedis builds RedisClient from REDIS_ADDR, REDIS_PASS and REDIS_DB.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       envInt("REDIS_DB", 0),
	})
}

// PingRedis checks RedisClient and clears it when unreachable so callers
// fall back to in-memory sessions.
func PingRedis(ctx context.Context) bool {
	if RedisClient == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", RedisClient.Options().Addr).Msg("redis not reachable, using in-memory cart sessions")
		RedisClient = nil
		return false
	}
	log.Info().Msg("redis connection successful")
	return true
}
