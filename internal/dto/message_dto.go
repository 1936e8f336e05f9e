package dto

// PublishCacheInvalidationMessage travels over the in-process bus from a
// template/collection write to the cached shared listing.
type PublishCacheInvalidationMessage struct {
	Reason string `json:"reason"`
}
