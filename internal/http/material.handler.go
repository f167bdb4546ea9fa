package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func CreateMaterial(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request session.MaterialInput
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		material, err := sess.CreateMaterial(request)
		if err != nil {
			respondStoreError(ctx, c, "Failed to create material", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"material": material})
	}
}

func UpdateMaterial(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		materialID, err := uuid.Parse(c.Param("materialID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		var request session.MaterialInput
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		material, err := sess.UpdateMaterial(materialID, request)
		if err != nil {
			respondStoreError(ctx, c, "Failed to update material", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"material": material})
	}
}

func GetMaterials(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		materials, err := sess.ListMaterials()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get materials", err)
			return
		}

		response := gin.H{"materials": materials}
		if sess.Nav.SelectedMaterialID != nil {
			response["selectedMaterialId"] = *sess.Nav.SelectedMaterialID
		}
		c.JSON(http.StatusOK, response)
	}
}

func GetMaterial(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		materialID, err := uuid.Parse(c.Param("materialID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		material, err := sess.FindMaterial(materialID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to get material", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"material": material})
	}
}

func SelectMaterial(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		materialID, err := uuid.Parse(c.Param("materialID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		material, err := sess.SelectMaterial(materialID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to select material", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"material": material})
	}
}

func DeleteMaterial(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		materialID, err := uuid.Parse(c.Param("materialID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		if err := sess.DeleteMaterial(materialID); err != nil {
			respondStoreError(ctx, c, "Failed to delete material", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
