package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
)

// Identity is the resolved caller: the verified auth UID plus the role
// and office the user document assigns to it. Every privileged action
// starts from one of these.
type Identity struct {
	UID      string     `json:"uid"`
	Role     authz.Role `json:"role"`
	OfficeID string     `json:"officeId"`
	FullName string     `json:"fullName"`
}

// Can reports whether this identity's role allows the action.
func (id Identity) Can(action authz.Action) bool {
	return authz.Can(id.Role, action)
}

const identityCacheTTL = 60 * time.Second

// IdentityResolver turns a verified auth UID into an Identity by
// reading the user document, with a short-TTL redis cache in front so
// the lookup does not hit the store on every request. The cache client
// may be nil, in which case every resolution reads the store.
type IdentityResolver struct {
	users  db.UserRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewIdentityResolver creates an IdentityResolver. cache may be nil.
func NewIdentityResolver(users db.UserRepository, cache *redis.Client, logger *zap.Logger) *IdentityResolver {
	return &IdentityResolver{users: users, cache: cache, logger: logger}
}

func identityCacheKey(uid string) string {
	return "identity:" + uid
}

// Resolve returns the Identity for a verified UID. A UID with no user
// document resolves to ErrNotFound.
func (r *IdentityResolver) Resolve(ctx context.Context, uid string) (Identity, error) {
	if uid == "" {
		return Identity{}, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, identityCacheKey(uid)).Result(); err == nil {
			var id Identity
			if err := json.Unmarshal([]byte(raw), &id); err == nil {
				return id, nil
			}
			// Corrupt entry; fall through to the store.
		}
	}

	user, err := r.users.GetByID(ctx, uid)
	if err != nil {
		return Identity{}, storeErr(err, "user profile for "+uid)
	}

	id := Identity{
		UID:      user.ID,
		Role:     authz.Normalize(string(user.Role)),
		OfficeID: user.OfficeID,
		FullName: user.FullName,
	}

	if r.cache != nil {
		if raw, err := json.Marshal(id); err == nil {
			if err := r.cache.Set(ctx, identityCacheKey(uid), raw, identityCacheTTL).Err(); err != nil && r.logger != nil {
				r.logger.Warn("identity cache set failed", zap.String("uid", uid), zap.Error(err))
			}
		}
	}
	return id, nil
}

// Invalidate drops the cached identity for a UID. Called after any
// write that changes a user's role, office or name.
func (r *IdentityResolver) Invalidate(ctx context.Context, uid string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, identityCacheKey(uid)).Err(); err != nil && r.logger != nil {
		r.logger.Warn("identity cache invalidation failed", zap.String("uid", uid), zap.Error(err))
	}
}
