package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/helixerp/entitlements-backend/models"
)

type DBOrganizationEntitlement struct {
	Id             string    `db:"id"`
	OrganizationId uuid.UUID `db:"organization_id"`
	ModuleKey      string    `db:"module_key"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const TABLE_ORGANIZATION_ENTITLEMENTS = "organization_entitlements"

var SelectOrganizationEntitlementColumn = []string{
	"id",
	"organization_id",
	"module_key",
	"status",
	"created_at",
	"updated_at",
}

func AdaptOrganizationEntitlement(db DBOrganizationEntitlement) (models.OrganizationEntitlement, error) {
	return models.OrganizationEntitlement{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		ModuleKey:      db.ModuleKey,
		Status:         models.EntitlementStatusFrom(db.Status),
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}
