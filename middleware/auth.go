package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accountRepo "helpnest/database/repository/account"
	"helpnest/models"
	"helpnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	ContextAccountKey = "account"
	ContextRoleKey    = "role"
)

// AuthMiddleware validates the bearer token, resolves the account it names
// and attaches account and role to the request context. Expired and tampered
// tokens are rejected with distinct messages; a token whose account no longer
// exists counts as invalid.
func AuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token, authorization denied"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			msg := "Token is not valid"
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		acc := resolveAccount(accounts, claims)
		if acc == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			return
		}

		c.Set(ContextAccountKey, acc)
		c.Set(ContextRoleKey, acc.Role)
		c.Next()
	}
}

// AccountFromContext returns the account attached by AuthMiddleware, or nil.
func AccountFromContext(c *gin.Context) *models.Account {
	val, ok := c.Get(ContextAccountKey)
	if !ok {
		return nil
	}
	acc, ok := val.(*models.Account)
	if !ok {
		return nil
	}
	return acc
}

// resolveAccount looks the claims up through the auth cache, falling back to
// the document store when the cache is unavailable or missed. The cached
// record never includes the password hash because the repository lookup
// already excludes it.
func resolveAccount(accounts accountRepo.AccountRepository, claims *utils.AuthClaims) *models.Account {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + claims.Role + ":" + claims.PublicID
	cache := utils.GetAuthCacheClient()

	if cache != nil {
		data, err := cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var acc models.Account
			if json.Unmarshal([]byte(data), &acc) == nil {
				_ = cache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return &acc
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache read failed, falling back to DB", zap.Error(err))
		}
	}

	acc, err := accounts.GetByPublicID(claims.Role, claims.PublicID)
	if err != nil || acc == nil {
		return nil
	}

	if cache != nil {
		if data, err := json.Marshal(acc); err == nil {
			_ = cache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
		}
	}
	return acc
}
