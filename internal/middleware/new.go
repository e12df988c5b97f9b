package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/AnishD4/StudyTide/config"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/pkg/log"
)

const (
	tokenCacheSize = 1000
	tokenCacheTTL  = 5 * time.Minute
)

type Middleware struct {
	l         log.Logger
	jwtSecret []byte

	// tokenCache holds scopes for recently verified tokens so hot clients
	// skip signature checks. TTL keeps entries shorter-lived than any token.
	tokenCache *expirable.LRU[string, model.Scope]

	aiLimiter *rateLimiter
}

func New(l log.Logger, authCfg config.AuthConfig, rateCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtSecret:  []byte(authCfg.JWTSecret),
		tokenCache: expirable.NewLRU[string, model.Scope](tokenCacheSize, nil, tokenCacheTTL),
		aiLimiter:  newRateLimiter(rateCfg.AIRequestsPerMin),
	}
}

// parserOptions pins the accepted signing algorithm.
var parserOptions = []jwt.ParserOption{
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
}

// rateLimiter keys token buckets by user ID with auto-expiry for idle users.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 20
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
