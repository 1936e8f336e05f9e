package entity

import (
	"time"
)

// GithubAppInstallation links a user to an installation of the GitHub App.
// The installation id is assigned by GitHub, not by us.
type GithubAppInstallation struct {
	Id        uint
	UserId    uint
	CreatedAt time.Time
}
