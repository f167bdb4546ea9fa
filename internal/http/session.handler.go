package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetSessionInfo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		c.JSON(http.StatusOK, gin.H{
			"sessionId": sess.ID,
			"user":      sess.User,
			"createdAt": sess.CreatedAt,
		})
	}
}

func GetDashboard(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		metrics, err := sess.DashboardMetrics()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get dashboard metrics", err)
			return
		}

		response := gin.H{"user": sess.User, "metrics": metrics}
		if sess.Nav.CurrentWorkspaceID != nil {
			workspace, err := sess.CurrentWorkspace()
			if err != nil {
				respondStoreError(ctx, c, "Failed to get current workspace", err)
				return
			}
			response["currentWorkspace"] = workspace
		}

		c.JSON(http.StatusOK, response)
	}
}

func ResetSession(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		if err := sess.Reset(); err != nil {
			ctx.Logger.Error("Failed to reset session", zap.Error(err), zap.String("session_id", sess.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}

func SeedDemoData(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		if err := sess.SeedDemoData(); err != nil {
			respondStoreError(ctx, c, "Failed to seed demo data", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "seeded"})
	}
}
