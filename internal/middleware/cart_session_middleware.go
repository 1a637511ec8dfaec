package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionCookie = "cart_session"

	cartSessionKey    = "cart_session"
	cartSessionMaxAge = 30 * 24 * 60 * 60
)

// CartSession identifies the browsing session that owns a cart.
// A new session id is issued when the request carries none.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(CartSessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set(cartSessionKey, sessionID)
		c.Header(CartSessionHeader, sessionID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CartSessionCookie, sessionID, cartSessionMaxAge, "/", "", false, true)

		c.Next()
	}
}

// GetCartSession returns the session id set by CartSession
func GetCartSession(c *gin.Context) string {
	return c.GetString(cartSessionKey)
}
