package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAssistants returns the workspace's assistants grouped into lineages, one
// group per name with versions ascending.
func GetAssistants(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		assistants, err := sess.ListAssistants()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get assistants", err)
			return
		}

		type lineage struct {
			Name     string             `json:"name"`
			Versions []entity.Assistant `json:"versions"`
		}
		var lineages []lineage
		for _, assistant := range assistants {
			if len(lineages) == 0 || lineages[len(lineages)-1].Name != assistant.Name {
				lineages = append(lineages, lineage{Name: assistant.Name})
			}
			last := &lineages[len(lineages)-1]
			last.Versions = append(last.Versions, assistant)
		}

		response := gin.H{"assistants": lineages}
		if sess.Nav.CurrentAssistantID != nil {
			response["currentAssistantId"] = *sess.Nav.CurrentAssistantID
			response["currentAssistantVersion"] = sess.Nav.CurrentAssistantVersion
		}
		c.JSON(http.StatusOK, response)
	}
}

func GetAssistant(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		assistantID, err := uuid.Parse(c.Param("assistantID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		assistant, err := sess.FindAssistant(assistantID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to get assistant", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"assistant": assistant})
	}
}

// SelectAssistant makes an assistant version current for chat. Switching away
// from the previous assistant or version starts a fresh chat history.
func SelectAssistant(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		assistantID, err := uuid.Parse(c.Param("assistantID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		assistant, err := sess.SelectAssistant(assistantID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to select assistant", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"assistant": assistant})
	}
}
