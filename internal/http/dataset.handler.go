package http

import (
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func GetCatalogProjects(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"projects": ctx.Catalog.Projects()})
	}
}

func GetCatalogDatasets(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		project := c.Param("project")

		datasets, ok := ctx.Catalog.Datasets(project)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"datasets": datasets})
	}
}

func GetCatalogTables(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		project := c.Param("project")
		dataset := c.Param("dataset")

		tables, ok := ctx.Catalog.Tables(project, dataset)
		if !ok {
			// dataset exists without table metadata, or the pair is unknown
			if _, known := ctx.Catalog.Datasets(project); !known {
				c.JSON(http.StatusNotFound, gin.H{"error": "Unknown project"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"tables": []entity.TableMeta{}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tables": tables})
	}
}

// GetTableSchema returns the mock column schema for a saved dataset's tables.
// Every table shares the same fixed schema.
func GetTableSchema(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		datasetID, err := uuid.Parse(c.Param("datasetID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataset ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		dataset, err := sess.FindDataset(datasetID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to get dataset", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"dataset": dataset.FullName(),
			"columns": ctx.Catalog.TableSchema(),
		})
	}
}

// SaveDataset attaches a catalog (project, dataset) pair to the current
// workspace, replacing the stored table metadata when the pair was saved
// before.
func SaveDataset(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type saveDatasetRequest struct {
			Project string `json:"project" binding:"required"`
			Dataset string `json:"dataset" binding:"required"`
		}

		var request saveDatasetRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		tables, _ := ctx.Catalog.Tables(request.Project, request.Dataset)

		sess := middleware.CurrentSession(c)
		dataset, err := sess.UpsertDataset(request.Project, request.Dataset, tables)
		if err != nil {
			respondStoreError(ctx, c, "Failed to save dataset", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"dataset": dataset})
	}
}

func GetDatasets(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		datasets, err := sess.ListDatasets()
		if err != nil {
			respondStoreError(ctx, c, "Failed to get datasets", err)
			return
		}

		response := gin.H{"datasets": datasets}
		if sess.Nav.SelectedDatasetID != nil {
			response["selectedDatasetId"] = *sess.Nav.SelectedDatasetID
		}
		c.JSON(http.StatusOK, response)
	}
}

func SelectDataset(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		datasetID, err := uuid.Parse(c.Param("datasetID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataset ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		dataset, err := sess.SelectDataset(datasetID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to select dataset", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"dataset": dataset})
	}
}

func DeleteDataset(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		datasetID, err := uuid.Parse(c.Param("datasetID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataset ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		if err := sess.DeleteDataset(datasetID); err != nil {
			respondStoreError(ctx, c, "Failed to delete dataset", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
