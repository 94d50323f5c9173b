package core

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
)

func TestResolveWithoutCacheReadsStore(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	r := NewIdentityResolver(users, nil, zap.NewNop())

	id, err := r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleLawyer, id.Role)
	assert.Equal(t, "office-1", id.OfficeID)
	assert.Equal(t, "User lawyer-1", id.FullName)
}

func TestResolveUnknownUIDIsNotFound(t *testing.T) {
	r := NewIdentityResolver(newFakeUserRepo(), nil, zap.NewNop())

	_, err := r.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveCachesAndInvalidates(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	users := newFakeUserRepo()
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	r := NewIdentityResolver(users, cache, zap.NewNop())

	id, err := r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleLawyer, id.Role)

	// A store-side change is invisible until the cache entry is
	// dropped or expires.
	users.users["lawyer-1"].Role = authz.RoleSecretary

	id, err = r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleLawyer, id.Role, "cached identity served")

	r.Invalidate(context.Background(), "lawyer-1")

	id, err = r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleSecretary, id.Role, "fresh identity after invalidation")
}

func TestResolveCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	users := newFakeUserRepo()
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	r := NewIdentityResolver(users, cache, zap.NewNop())

	_, err := r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)

	users.users["lawyer-1"].Role = authz.RoleMaster
	mr.FastForward(identityCacheTTL * 2)

	id, err := r.Resolve(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleMaster, id.Role)
}
