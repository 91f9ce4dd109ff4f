package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
)

const (
	profileKeyPrefix   = "profile:slug:"
	candidateKeyPrefix = "profile:candidate:"
	cacheCheckPeriod   = 30 * time.Second
)

// ProfileCache is a lazy read-through cache for assembled public profiles.
// Entries are keyed by slug; a candidate-id index entry points back at the
// slug so approval toggles and photo updates can evict by candidate id.
type ProfileCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewProfileCache creates a profile cache with the given TTL
func NewProfileCache(ttlSeconds int) *ProfileCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &ProfileCache{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

// Get returns the cached profile for a slug, or nil on miss
func (pc *ProfileCache) Get(slug string) *models.PublicProfile {
	data, found := pc.cache.Get(profileKeyPrefix + slug)
	if !found {
		metrics.CacheMisses.WithLabelValues("public_profile").Inc()
		return nil
	}

	profile, ok := data.(*models.PublicProfile)
	if !ok {
		logger.Error("Invalid cache data type for profile", zap.String("slug", slug))
		pc.cache.Delete(profileKeyPrefix + slug)
		metrics.CacheMisses.WithLabelValues("public_profile").Inc()
		return nil
	}

	metrics.CacheHits.WithLabelValues("public_profile").Inc()
	return profile
}

// Set stores an assembled profile alongside its candidate-id index entry.
// Both entries share the same TTL so the index never outlives the profile.
func (pc *ProfileCache) Set(profile *models.PublicProfile) {
	pc.cache.Set(profileKeyPrefix+profile.Candidate.Slug, profile, pc.ttl)
	pc.cache.Set(candidateKeyPrefix+profile.Candidate.ID, profile.Candidate.Slug, pc.ttl)
}

// InvalidateCandidate evicts the cached profile, if any, for a candidate id
func (pc *ProfileCache) InvalidateCandidate(candidateID string) {
	data, found := pc.cache.Get(candidateKeyPrefix + candidateID)
	if !found {
		return
	}

	if slug, ok := data.(string); ok {
		pc.cache.Delete(profileKeyPrefix + slug)
		logger.Debug("Evicted cached profile",
			zap.String("candidate_id", candidateID),
			zap.String("slug", slug))
	}
	pc.cache.Delete(candidateKeyPrefix + candidateID)
}

// Clear drops all cached profiles
func (pc *ProfileCache) Clear() {
	pc.cache.Flush()
}
