package dto

import (
	"github.com/helixerp/entitlements-backend/models"
)

type APIModuleChange struct {
	ModuleKey string `json:"module_key"`
	Status    string `json:"status"`
}

func AdaptModuleChangeDto(change models.ModuleChange) APIModuleChange {
	return APIModuleChange{
		ModuleKey: change.ModuleKey,
		Status:    change.Status.String(),
	}
}

type APIEntitlementSnapshot struct {
	OrganizationId string   `json:"organization_id"`
	EnabledModules []string `json:"enabled_modules"`
	ActiveBundles  []string `json:"active_bundles"`
}

func AdaptEntitlementSnapshotDto(snapshot models.EntitlementSnapshot) APIEntitlementSnapshot {
	return APIEntitlementSnapshot{
		OrganizationId: snapshot.OrganizationId.String(),
		EnabledModules: snapshot.EnabledModules,
		ActiveBundles:  snapshot.ActiveBundles,
	}
}

type BundleSelectionBody struct {
	Bundles []string `json:"bundles"`
}
