package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helixerp/entitlements-backend/dto"
	"github.com/helixerp/entitlements-backend/pure_utils"
	"github.com/helixerp/entitlements-backend/usecases"
	"github.com/helixerp/entitlements-backend/utils"
)

type OrganizationUriInput struct {
	OrganizationId string `uri:"organization_id" binding:"required,uuid"`
}

func handleGetEntitlements(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var orgInput OrganizationUriInput
		if err := c.ShouldBindUri(&orgInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		organizationId, err := utils.ValidateUuid(orgInput.OrganizationId)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewEntitlementUsecase()
		snapshot, err := usecase.GetEntitlementSnapshot(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptEntitlementSnapshotDto(snapshot))
	}
}

func handlePreviewEntitlementChanges(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var orgInput OrganizationUriInput
		if err := c.ShouldBindUri(&orgInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		organizationId, err := utils.ValidateUuid(orgInput.OrganizationId)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.BundleSelectionBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewEntitlementUsecase()
		changes, err := usecase.PreviewBundleSelection(ctx, organizationId, data.Bundles)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"changes": pure_utils.Map(changes, dto.AdaptModuleChangeDto),
		})
	}
}

func handleApplyEntitlementChanges(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var orgInput OrganizationUriInput
		if err := c.ShouldBindUri(&orgInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		organizationId, err := utils.ValidateUuid(orgInput.OrganizationId)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.BundleSelectionBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewEntitlementUsecase()
		changes, err := usecase.ApplyBundleSelection(ctx, organizationId, data.Bundles)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"changes": pure_utils.Map(changes, dto.AdaptModuleChangeDto),
		})
	}
}
