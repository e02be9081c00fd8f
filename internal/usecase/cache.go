package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type catalogCacheKeyInput struct {
	Search        string `json:"search"`
	SearchIn      string `json:"searchIn"`
	Skill         string `json:"skill"`
	SkillCategory string `json:"skillCategory"`
	Type          string `json:"type"`
	Date          string `json:"date"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// CatalogCacheKey hashes the normalized filter so equivalent queries share
// one cache entry.
func CatalogCacheKey(params CatalogParams) string {
	in := catalogCacheKeyInput{
		Search:        normalizeCacheValue(params.Search),
		SearchIn:      normalizeCacheValue(params.SearchIn),
		Skill:         normalizeCacheValue(params.Skill),
		SkillCategory: normalizeCacheValue(params.SkillCategory),
		Type:          normalizeCacheValue(params.Type),
		Date:          normalizeCacheValue(params.Date),
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "trainings:catalog:raw"
	}
	sum := sha256.Sum256(b)
	return "trainings:catalog:" + hex.EncodeToString(sum[:])
}

func CatalogLockKey(cacheKey string) string {
	return "trainings:lock:" + strings.TrimPrefix(cacheKey, "trainings:catalog:")
}

// CatalogStaleKey is the long-lived copy of a catalog entry, kept so reads
// can fall back to the last known result when Postgres is unreachable.
func CatalogStaleKey(cacheKey string) string {
	return "trainings:stale:" + strings.TrimPrefix(cacheKey, "trainings:catalog:")
}

func TeamSummaryCacheKey(managerID string) string {
	return "team:summary:" + managerID
}
