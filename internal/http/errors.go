package http

import (
	"errors"
	"net/http"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondStoreError maps store errors onto HTTP statuses: validation failures
// are 400 with every message, missing entities 404, unmet prerequisites 409.
// Anything else is logged and reported as a 500 with the handler's message.
func respondStoreError(ctx *appcontext.Context, c *gin.Context, message string, err error) {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": verr.Messages})
		return
	}

	var nferr *session.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
		return
	}

	var perr *session.PrerequisiteError
	if errors.As(err, &perr) {
		c.JSON(http.StatusConflict, gin.H{"error": perr.Error(), "missing": perr.Missing})
		return
	}

	ctx.Logger.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
