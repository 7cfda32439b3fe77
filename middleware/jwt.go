package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/policy-insights-be/types"
	"github.com/tieubaoca/policy-insights-be/utils"
)

const userContextKey = "user"

// bearerClaims extracts and validates the bearer token on a request.
func bearerClaims(c *gin.Context) (*utils.UserClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Authorization header is required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Authorization header format must be Bearer {token}"
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		return nil, "Invalid token"
	}
	return claims, ""
}

func AuthMiddleware(c *gin.Context) {
	claims, errMsg := bearerClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: errMsg,
		})
		return
	}
	c.Set(userContextKey, claims)
	c.Next()
}

func AdminAuthMiddleware(c *gin.Context) {
	claims, errMsg := bearerClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: errMsg,
		})
		return
	}
	if claims.Role != types.USER_ROLE_ADMIN {
		c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "Admin role required",
		})
		return
	}
	c.Set(userContextKey, claims)
	c.Next()
}

// UserFromContext returns the claims set by the auth middleware, if any.
func UserFromContext(c *gin.Context) *utils.UserClaims {
	if v, ok := c.Get(userContextKey); ok {
		if claims, ok := v.(*utils.UserClaims); ok {
			return claims
		}
	}
	return nil
}
