package dto

import (
	"github.com/guregu/null/v5"

	"github.com/helixerp/entitlements-backend/models"
)

type APIBundle struct {
	Key         string      `json:"key"`
	DisplayName string      `json:"display_name"`
	Description null.String `json:"description"`
	Modules     []string    `json:"modules"`
}

func AdaptBundleDto(bundle models.Bundle) APIBundle {
	return APIBundle{
		Key:         bundle.Key,
		DisplayName: bundle.DisplayName,
		Description: bundle.Description,
		Modules:     bundle.Modules,
	}
}

type CreateBundleBody struct {
	Key         string      `json:"key" binding:"required"`
	DisplayName string      `json:"display_name" binding:"required"`
	Description null.String `json:"description"`
	Modules     []string    `json:"modules" binding:"required,min=1"`
}

func AdaptCreateBundleInput(body CreateBundleBody) models.CreateBundleInput {
	return models.CreateBundleInput{
		Key:         body.Key,
		DisplayName: body.DisplayName,
		Description: body.Description,
		Modules:     body.Modules,
	}
}

type UpdateBundleBody struct {
	DisplayName *string     `json:"display_name"`
	Description null.String `json:"description"`
	Modules     []string    `json:"modules"`
}

func AdaptUpdateBundleInput(key string, body UpdateBundleBody) models.UpdateBundleInput {
	return models.UpdateBundleInput{
		Key:         key,
		DisplayName: body.DisplayName,
		Description: body.Description,
		Modules:     body.Modules,
	}
}
