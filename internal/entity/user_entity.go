package entity

import (
	"time"
)

type User struct {
	Id           uint
	PrimaryEmail string
	FullName     string
	Identities   []OAuthIdentity
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

// OAuthIdentity is a linked external login (e.g. "github" + provider user id).
// Managed by the identity provider; the core only reads it.
type OAuthIdentity struct {
	Id             uint
	UserId         uint
	Provider       string
	ProviderUserId string
	CreatedAt      time.Time
}
