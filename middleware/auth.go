package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Subhashtm/Brownie/auth"
	"github.com/Subhashtm/Brownie/httperr"
)

// Context keys set by ValidateToken.
const (
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// ValidateToken requires a valid bearer token and stores the resolved
// subject email in the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		httperr.Abort(c, httperr.New(httperr.KindUnauthorized, "Authorization header is missing"))
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	subject, role, err := auth.ParseToken(tokenString)
	if err != nil {
		httperr.Abort(c, httperr.New(httperr.KindUnauthorized, "Invalid or expired token"))
		return
	}

	c.Set(CtxUserEmail, subject)
	c.Set(CtxUserRole, role)
	c.Next()
}

// RequireAdmin layers on ValidateToken: the subject must be the configured
// admin identity. Admin-ness is a config comparison, not stored state.
func RequireAdmin(c *gin.Context) {
	email := c.GetString(CtxUserEmail)
	if email == "" || email != os.Getenv("ADMIN_EMAIL") {
		httperr.Abort(c, httperr.New(httperr.KindForbidden, "Admin access required"))
		return
	}
	c.Next()
}
