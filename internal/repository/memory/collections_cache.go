package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"chat-workspace-be/internal/dto"
)

const collectionsKey = "shared-collections"

type CollectionsCache struct {
	cache *cache.Cache
}

func NewCollectionsCache(ttl time.Duration) *CollectionsCache {
	// Purge expired entries every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &CollectionsCache{
		cache: c,
	}
}

func (r *CollectionsCache) Save(listing *dto.CollectionsListResponse) {
	r.cache.Set(collectionsKey, listing, cache.DefaultExpiration)
}

func (r *CollectionsCache) Get() (*dto.CollectionsListResponse, bool) {
	if x, found := r.cache.Get(collectionsKey); found {
		return x.(*dto.CollectionsListResponse), true
	}
	return nil, false
}

func (r *CollectionsCache) Invalidate() {
	r.cache.Delete(collectionsKey)
}
