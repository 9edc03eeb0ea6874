package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrInvalidCatalog):
		// A catalog that fails to load is a deployment problem, not a caller
		// problem.
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "catalog failed to load", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "bundle catalog unavailable"})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
