package model

import (
	"time"
)

// Id is the installation id assigned by GitHub, so no autoIncrement.
type GithubAppInstallation struct {
	Id        uint      `gorm:"primaryKey"`
	UserId    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GithubAppInstallation) TableName() string {
	return "github_app_installations"
}
