package api

import (
	"github.com/gin-gonic/gin"

	"github.com/helixerp/entitlements-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases, withCatalogAdmin bool) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/categories", handleListCategories(uc))
	if withCatalogAdmin {
		r.POST("/categories", handleCreateCategory(uc))
		r.PATCH("/categories/:bundle_key", handleUpdateCategory(uc))
	}

	r.GET("/organizations/:organization_id/entitlements", handleGetEntitlements(uc))
	r.POST("/organizations/:organization_id/entitlements/preview", handlePreviewEntitlementChanges(uc))
	r.PATCH("/organizations/:organization_id/entitlements", handleApplyEntitlementChanges(uc))
}
