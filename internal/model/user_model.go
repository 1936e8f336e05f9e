package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	Id           uint           `gorm:"primaryKey;autoIncrement"`
	PrimaryEmail string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName     string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type OAuthIdentity struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	UserId         uint      `gorm:"not null;index"`
	Provider       string    `gorm:"type:varchar(64);not null"`
	ProviderUserId string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (OAuthIdentity) TableName() string {
	return "oauth_identities"
}
