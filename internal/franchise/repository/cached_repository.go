package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
	"franchises/internal/infrastructure/metrics"
)

// Store is the subset of the franchise port the cache decorates.
type Store interface {
	Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error)
	FindByID(ctx context.Context, id string) (*domain.Franchise, error)
	FindByName(ctx context.Context, name string) (*domain.Franchise, error)
}

// CachedRepository keeps recently used aggregates in Redis. Redis outages
// degrade to the underlying store and are only logged.
type CachedRepository struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(next Store, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// storeIfNewer writes the entry unless the cached document already carries the
// same or a higher version. KEYS[1] is the entry, ARGV is data, version and TTL
// in milliseconds.
var storeIfNewer = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local ok, doc = pcall(cjson.decode, current)
	if ok and type(doc) == 'table' and tonumber(doc['version']) and tonumber(doc['version']) >= tonumber(ARGV[2]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

func cacheKey(id string) string {
	return "franchise:" + id
}

func (r *CachedRepository) FindByID(ctx context.Context, id string) (*domain.Franchise, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		f, decodeErr := unmarshalFranchise(data)
		if decodeErr == nil {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return &f, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		r.logger.Warn("dropping undecodable cache entry", zap.String("franchiseId", id), zap.Error(decodeErr))
		r.evict(ctx, id)
	case err == redis.Nil:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		r.logger.Warn("cache read failed", zap.String("franchiseId", id), zap.Error(err))
	}

	f, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, f)
	return f, nil
}

func (r *CachedRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	return r.next.FindByName(ctx, name)
}

func (r *CachedRepository) Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error) {
	saved, err := r.next.Save(ctx, franchise)
	if err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			r.evict(ctx, franchise.ID)
		}
		return nil, err
	}
	r.store(ctx, saved)
	return saved, nil
}

func (r *CachedRepository) store(ctx context.Context, f *domain.Franchise) {
	data, err := marshalFranchise(*f)
	if err != nil {
		r.logger.Warn("encoding cache entry failed", zap.String("franchiseId", f.ID), zap.Error(err))
		return
	}
	stored, err := storeIfNewer.Run(ctx, r.client, []string{cacheKey(f.ID)}, data, f.Version, r.ttl.Milliseconds()).Int()
	if err != nil {
		r.logger.Warn("cache write failed", zap.String("franchiseId", f.ID), zap.Error(err))
		return
	}
	if stored == 0 {
		r.logger.Debug("cache already holds a newer version",
			zap.String("franchiseId", f.ID), zap.Int64("version", f.Version))
	}
}

func (r *CachedRepository) evict(ctx context.Context, id string) {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		r.logger.Warn("cache eviction failed", zap.String("franchiseId", id), zap.Error(err))
	}
}
