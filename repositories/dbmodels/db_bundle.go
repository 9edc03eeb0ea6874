package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/helixerp/entitlements-backend/models"
)

type DBBundle struct {
	Id          string      `db:"id"`
	Key         string      `db:"key"`
	DisplayName string      `db:"display_name"`
	Description pgtype.Text `db:"description"`
	Modules     []string    `db:"modules"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const TABLE_BUNDLES = "bundles"

var SelectBundleColumn = []string{
	"id",
	"key",
	"display_name",
	"description",
	"modules",
	"created_at",
	"updated_at",
}

func AdaptBundle(db DBBundle) (models.Bundle, error) {
	return models.Bundle{
		Key:         db.Key,
		DisplayName: db.DisplayName,
		Description: null.NewString(db.Description.String, db.Description.Valid),
		Modules:     db.Modules,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
