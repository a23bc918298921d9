package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carelink/internal/services"
	"carelink/pkg/utils"
)

// TokenVerifier resolves a bearer credential into a principal.
// Implemented by the account service; verification failure and
// backend failure are distinct errors so the middleware can answer
// 401 for the former and 500 for the latter.
type TokenVerifier interface {
	VerifyCredential(ctx context.Context, credential string) (*services.Principal, error)
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		credential := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := verifier.VerifyCredential(c.Request.Context(), credential)

		if err != nil {
			if errors.Is(err, utils.ErrInvalidToken) {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			} else {
				utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
			return
		}

		// Pass the resolved identity and raw credential to the next handler.
		c.Set("account_id", principal.AccountID.String())
		c.Set("account_type", principal.AccountType)
		c.Set("first_name", principal.FirstName)
		c.Set("credential", credential)
		c.Next()
	}
}

func RequireAccountType(requiredType string) gin.HandlerFunc {

	return func(c *gin.Context) {
		accountType := c.GetString("account_type")

		if accountType != requiredType {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
