package handlers

import (
	"net/http"
	"strings"

	"dhara/middleware"
	"dhara/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RevokeTokenHandler invalidates the bearer token used for the request.
func RevokeTokenHandler(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if err := middleware.RevokeToken(c, authCache, token); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
	}
}
