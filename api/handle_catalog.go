package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helixerp/entitlements-backend/dto"
	"github.com/helixerp/entitlements-backend/pure_utils"
	"github.com/helixerp/entitlements-backend/usecases"
)

func handleListCategories(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewEntitlementUsecase()
		bundles, err := usecase.GetCatalog(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(bundles, dto.AdaptBundleDto))
	}
}

func handleCreateCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateBundleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCatalogAdminUsecase()
		bundle, err := usecase.CreateBundle(ctx, dto.AdaptCreateBundleInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"category": dto.AdaptBundleDto(bundle)})
	}
}

type BundleUriInput struct {
	BundleKey string `uri:"bundle_key" binding:"required"`
}

func handleUpdateCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var bundleInput BundleUriInput
		if err := c.ShouldBindUri(&bundleInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.UpdateBundleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCatalogAdminUsecase()
		bundle, err := usecase.UpdateBundle(ctx, dto.AdaptUpdateBundleInput(bundleInput.BundleKey, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": dto.AdaptBundleDto(bundle)})
	}
}
