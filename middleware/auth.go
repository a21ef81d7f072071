package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-platform/models"
	"go-blog-platform/tokens"
)

const CookieName = "token"

// Context keys set by the auth middlewares.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// RequireAuth reads the session cookie and attaches the caller's claims to
// the context. A missing cookie redirects to the login page; an invalid one
// is cleared first so the client does not keep retrying with a dead token.
func RequireAuth(codec *tokens.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		claims, err := codec.Verify(tokenString)
		if err != nil {
			ClearTokenCookie(c)
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		attachClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid session cookie is present and
// proceeds anonymously otherwise. An invalid cookie is cleared but never
// redirects.
func OptionalAuth(codec *tokens.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err == nil {
			claims, err := codec.Verify(tokenString)
			if err != nil {
				ClearTokenCookie(c)
			} else {
				attachClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. Non-admins get a rendered 403, not
// a redirect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role.(models.UserRole) != models.RoleAdmin {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"title":   "Access Denied",
				"message": "Access denied. Admin privileges required.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClearTokenCookie expires the session cookie.
func ClearTokenCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// CurrentUser returns the authenticated identity from the context, or ok=false
// on anonymous requests.
func CurrentUser(c *gin.Context) (id uint, username string, role models.UserRole, ok bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, "", "", false
	}
	id = v.(uint)
	username = c.GetString(CtxUsername)
	role = c.MustGet(CtxRole).(models.UserRole)
	return id, username, role, true
}

func attachClaims(c *gin.Context, claims *tokens.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxUsername, claims.Username)
	c.Set(CtxRole, claims.Role)
}
