package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func CreateWorkspace(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createWorkspaceRequest struct {
			Name        string   `json:"name" binding:"required"`
			Description string   `json:"description"`
			TeamMembers []string `json:"teamMembers"`
		}

		var request createWorkspaceRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		workspace, err := sess.CreateWorkspace(request.Name, request.Description, request.TeamMembers)
		if err != nil {
			respondStoreError(ctx, c, "Failed to create workspace", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"workspace": workspace})
	}
}

func GetWorkspaces(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		workspaces, err := sess.ListWorkspaces()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get workspaces", err)
			return
		}

		response := gin.H{"workspaces": workspaces}
		if sess.Nav.CurrentWorkspaceID != nil {
			response["currentWorkspaceId"] = *sess.Nav.CurrentWorkspaceID
		}
		c.JSON(http.StatusOK, response)
	}
}

func SelectWorkspace(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceID, err := uuid.Parse(c.Param("workspaceID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		workspace, err := sess.SelectWorkspace(workspaceID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to select workspace", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"workspace": workspace})
	}
}

func DeleteWorkspace(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceID, err := uuid.Parse(c.Param("workspaceID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		if err := sess.DeleteWorkspace(workspaceID); err != nil {
			respondStoreError(ctx, c, "Failed to delete workspace", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
