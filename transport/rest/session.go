package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/portfolio-site/internal/pkg"
)

const (
	SessionCookieName = "user_session"
	sessionContextKey = "session_id"
	sessionCookieAge  = 24 * time.Hour
)

// sessionMiddleware - makes sure every request carries a session id, issuing a cookie when needed.
func sessionMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID, err := ctx.Cookie(SessionCookieName)
		if err != nil || !pkg.IsSessionID(sessionID) {
			sessionID = pkg.GenerateNewSessionID()
			http.SetCookie(ctx.Writer, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieAge),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx.Set(sessionContextKey, sessionID)
		ctx.Next()
	}
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(sessionContextKey)
}
