package utils

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/helixerp/entitlements-backend/models"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func ValidateUuid(uuidParam string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(uuidParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("'%s' is not a valid UUID: %w", uuidParam, models.BadParameterError)
	}
	return parsed, nil
}
