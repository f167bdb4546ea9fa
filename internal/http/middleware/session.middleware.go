package middleware

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionCookie = "bda_session"

// SessionMiddleware resolves the caller's session from the signed cookie,
// creating a fresh one when the cookie is missing, expired, or points at a
// session the manager no longer knows. The session is locked for the duration
// of the request, so handlers never contend within one session.
func SessionMiddleware(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := resolveSession(ctx, c)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}

		sess.Lock()
		defer sess.Unlock()

		c.Set("session", sess)
		c.Next()
	}
}

func resolveSession(ctx *appcontext.Context, c *gin.Context) *session.Session {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if claims, err := utils.ValidateSessionToken(cookie); err == nil {
			if sess, ok := ctx.Sessions.Get(claims.SessionID); ok {
				return sess
			}
		}
	}

	sess, err := ctx.Sessions.Create()
	if err != nil {
		ctx.Logger.Error("Failed to create session", zap.Error(err))
		return nil
	}
	if ctx.SeedDemoData {
		if err := sess.SeedDemoData(); err != nil {
			ctx.Logger.Error("Failed to seed demo data", zap.Error(err))
		}
	}

	token, err := utils.GenerateSessionToken(sess.ID)
	if err != nil {
		ctx.Logger.Error("Failed to generate session token", zap.Error(err))
		return nil
	}

	secure := ctx.Environment == "production"
	c.SetCookie(sessionCookie, token, 60*60*24, "/", "", secure, true)
	return sess
}

// CurrentSession pulls the session the middleware attached to the request.
func CurrentSession(c *gin.Context) *session.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}
