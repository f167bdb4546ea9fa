package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetChatMessages(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		chat, err := sess.ActiveChat()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get chat messages", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"sessionId": chat.ID,
			"version":   chat.Version,
			"messages":  chat.Messages,
		})
	}
}

func SendChatMessage(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type sendMessageRequest struct {
			Content string `json:"content" binding:"required"`
		}

		var request sendMessageRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		userMsg, reply, err := sess.SendChat(request.Content)
		if err != nil {
			respondStoreError(ctx, c, "Failed to send chat message", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": userMsg, "reply": reply})
	}
}

func ClearChatMessages(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		if err := sess.ClearChat(); err != nil {
			respondStoreError(ctx, c, "Failed to clear chat messages", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}
