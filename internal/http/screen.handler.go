package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var knownScreens = map[session.Screen]bool{
	session.ScreenHome:       true,
	session.ScreenWorkspace:  true,
	session.ScreenDatasets:   true,
	session.ScreenMaterials:  true,
	session.ScreenExperiment: true,
	session.ScreenAssistant:  true,
	session.ScreenChat:       true,
}

// GetScreenState reports whether a screen is reachable given the session's
// selections, plus its active tab and any prerequisite warnings.
func GetScreenState(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		screen := session.Screen(c.Param("screen"))
		if !knownScreens[screen] {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown screen"})
			return
		}

		sess := middleware.CurrentSession(c)
		c.JSON(http.StatusOK, sess.ScreenState(screen))
	}
}

func SetScreenTab(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		screen := session.Screen(c.Param("screen"))
		if !knownScreens[screen] {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown screen"})
			return
		}

		type setTabRequest struct {
			Tab string `json:"tab" binding:"required"`
		}
		var request setTabRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		sess.Nav.SetTab(screen, request.Tab)
		c.JSON(http.StatusOK, gin.H{"screen": screen, "tab": sess.Nav.Tab(screen)})
	}
}

// PopNavigationIntent hands the pending screen transition to the client and
// clears it, so a deploy or experiment run redirects exactly once.
func PopNavigationIntent(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		intent := sess.Nav.PopIntent()
		if intent == nil {
			c.JSON(http.StatusOK, gin.H{"intent": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"intent": intent})
	}
}
