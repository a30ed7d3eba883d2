package middleware

import (
	"net/http"

	"devconnect/auth"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the request-header slot carrying the raw token, no scheme
// prefix.
const TokenHeader = "x-auth-token"

// RequireAuth rejects requests without a valid token and sets the verified
// user id in the context as "userId" for downstream handlers. Every request
// is re-verified independently; no session state is kept between requests.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
