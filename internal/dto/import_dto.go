package dto

// ImportCandidate is a read-only projection of a repository hosted on the
// external code host, offered for import. Never persisted, never mutated.
type ImportCandidate struct {
	GithubRepositoryId int64  `json:"github_repository_id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Size               int64  `json:"size"`
	Language           string `json:"language"`
	License            string `json:"license"`
	Url                string `json:"url"`
	WebsiteUrl         string `json:"website_url"`
	DefaultBranch      string `json:"default_branch"`
	IsPrivate          bool   `json:"is_private"`
	IsFork             bool   `json:"is_fork"`
	IsTemplate         bool   `json:"is_template"`
	IsArchived         bool   `json:"is_archived"`
	InstallationId     uint   `json:"installation_id"`
}
