// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"dhara/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ProfessionalIDKey   = "professionalID"
	bearerPrefix        = "Bearer "
	professionalIDParam = "id"
)

// JWTAuthMiddleware validates the signed bearer token of a professional. A
// validated token hash is cached in Redis so repeated requests skip parsing;
// revoked hashes are rejected before anything else.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		if authCache != nil {
			revoked, err := authCache.Exists(ctx, utils.AuthRevokedPrefix+computedHash).Result()
			if err != nil {
				logger.Error("Error checking token revocation", zap.Error(err))
			} else if revoked > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}

			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
				c.Set(ProfessionalIDKey, cached)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				logger.Error("Error checking auth cache", zap.Error(err))
			}
		}

		professionalID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || professionalID == "" {
			logger.Warn("Rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if authCache != nil {
			ttl := utils.AuthCacheTTL
			if exp, ok := tokenExpiry(tokenString); ok {
				if remaining := time.Until(exp); remaining < ttl {
					ttl = remaining
				}
			}
			if ttl > 0 {
				if err := authCache.Set(ctx, cacheKey, professionalID, ttl).Err(); err != nil {
					logger.Error("Failed to set auth cache", zap.Error(err))
				}
			}
		}

		c.Set(ProfessionalIDKey, professionalID)
		c.Next()
	}
}

// RequireSelf rejects requests whose :id path parameter is not the authenticated professional.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ProfessionalIDKey) != c.Param(professionalIDParam) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token does not grant access to this professional"})
			return
		}
		c.Next()
	}
}

// RevokeToken marks a token as unusable until it would have expired anyway.
func RevokeToken(c *gin.Context, authCache *redis.Client, tokenString string) error {
	hash := utils.HashToken(tokenString)
	ttl := utils.AuthCacheTTL
	if exp, ok := tokenExpiry(tokenString); ok && time.Until(exp) > 0 {
		ttl = time.Until(exp)
	}
	ctx := c.Request.Context()
	if err := authCache.Set(ctx, utils.AuthRevokedPrefix+hash, "1", ttl).Err(); err != nil {
		return err
	}
	return authCache.Del(ctx, utils.AuthCachePrefix+hash).Err()
}

func tokenExpiry(tokenString string) (time.Time, bool) {
	exp, err := utils.TokenExpiry(tokenString)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}
