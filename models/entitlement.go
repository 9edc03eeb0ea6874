package models

import (
	"time"

	"github.com/google/uuid"
)

type EntitlementStatus int

const (
	Enabled EntitlementStatus = iota
	Disabled
	UnknownEntitlementStatus
)

var ValidEntitlementStatuses = []EntitlementStatus{Enabled, Disabled}

func (s EntitlementStatus) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

func EntitlementStatusFrom(s string) EntitlementStatus {
	switch s {
	case "enabled":
		return Enabled
	case "disabled":
		return Disabled
	}
	return UnknownEntitlementStatus
}

// OrganizationEntitlement is the persisted enabled/disabled state of one
// module for one organization.
type OrganizationEntitlement struct {
	Id             string
	OrganizationId uuid.UUID
	ModuleKey      string
	Status         EntitlementStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ModuleChange is one unit of required entitlement mutation, produced by
// Resolver.Diff and consumed once by the mutation endpoint.
type ModuleChange struct {
	ModuleKey string
	Status    EntitlementStatus
}

// EntitlementSnapshot is an organization's current entitlement state
// together with the bundles inferred as active from it.
type EntitlementSnapshot struct {
	OrganizationId uuid.UUID
	EnabledModules []string
	ActiveBundles  []string
}
