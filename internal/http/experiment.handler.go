package http

import (
	"net/http"
	"strconv"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/diff"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateExperiment runs the evaluation for the chosen dataset and material.
// Omitted ids fall back to the session's current selections; missing ones
// surface as a prerequisite conflict.
func CreateExperiment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createExperimentRequest struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			DatasetID   string `json:"datasetId"`
			MaterialID  string `json:"materialId"`
		}

		var request createExperimentRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)

		datasetID := uuid.Nil
		if request.DatasetID != "" {
			parsed, err := uuid.Parse(request.DatasetID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataset ID"})
				return
			}
			datasetID = parsed
		} else if sess.Nav.SelectedDatasetID != nil {
			datasetID = *sess.Nav.SelectedDatasetID
		}

		materialID := uuid.Nil
		if request.MaterialID != "" {
			parsed, err := uuid.Parse(request.MaterialID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
				return
			}
			materialID = parsed
		} else if sess.Nav.SelectedMaterialID != nil {
			materialID = *sess.Nav.SelectedMaterialID
		}

		experiment, err := sess.CreateExperiment(datasetID, materialID, request.Name, request.Description)
		if err != nil {
			respondStoreError(ctx, c, "Failed to create experiment", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"experiment": experiment})
	}
}

func GetExperiments(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		experiments, err := sess.ListExperiments(c.Query("test_set"))
		if err != nil {
			respondStoreError(ctx, c, "Failed to get experiments", err)
			return
		}

		response := gin.H{"experiments": experiments}
		if sess.Nav.CurrentExperimentID != nil {
			response["currentExperimentId"] = *sess.Nav.CurrentExperimentID
		}
		c.JSON(http.StatusOK, response)
	}
}

func GetExperiment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, err := uuid.Parse(c.Param("experimentID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experiment ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		experiment, err := sess.FindExperiment(experimentID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to get experiment", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"experiment": experiment})
	}
}

func RetryExperiment(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, err := uuid.Parse(c.Param("experimentID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experiment ID"})
			return
		}

		sess := middleware.CurrentSession(c)
		retry, err := sess.RetryExperiment(experimentID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to retry experiment", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"experiment": retry})
	}
}

// GetResultDiff renders the expected/generated SQL of one test result as diff
// segments, line-based by default or token-based with ?mode=token.
func GetResultDiff(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, err := uuid.Parse(c.Param("experimentID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experiment ID"})
			return
		}

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result index"})
			return
		}

		sess := middleware.CurrentSession(c)
		experiment, err := sess.FindExperiment(experimentID)
		if err != nil {
			respondStoreError(ctx, c, "Failed to get experiment", err)
			return
		}

		results := experiment.Results.TestResults
		if index < 0 || index >= len(results) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Result index out of range"})
			return
		}
		result := results[index]

		var segments []diff.Segment
		switch c.DefaultQuery("mode", "line") {
		case "token":
			segments = diff.Tokens(result.ExpectedSQL, result.GeneratedSQL)
		case "line":
			segments = diff.Lines(result.ExpectedSQL, result.GeneratedSQL)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diff mode"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"nl":        result.NL,
			"isCorrect": result.IsCorrect,
			"segments":  segments,
		})
	}
}

func DeployAssistant(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		experimentID, err := uuid.Parse(c.Param("experimentID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experiment ID"})
			return
		}

		type deployRequest struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		var request deployRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		sess := middleware.CurrentSession(c)
		assistant, err := sess.DeployAssistant(experimentID, request.Name, request.Description)
		if err != nil {
			respondStoreError(ctx, c, "Failed to deploy assistant", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"assistant": assistant})
	}
}
