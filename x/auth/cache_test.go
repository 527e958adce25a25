package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/internal/testutil"
)

type countingProvider struct {
	calls      int
	credential Credential
	err        error
}

func (p *countingProvider) Resolve(ctx context.Context, sessionID string) (Credential, error) {
	p.calls++
	return p.credential, p.err
}

func TestCachedProviderHitsInnerOnce(t *testing.T) {
	rdb, cleanup := testutil.CreateRDB()
	defer cleanup()

	inner := &countingProvider{credential: Credential{Token: "upstream-token", User: core.User{ID: "u1"}}}
	provider := NewCachedProvider(inner, rdb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		credential, err := provider.Resolve(ctx, "session-abc")
		assert.NoError(t, err)
		assert.Equal(t, "upstream-token", credential.Token)
		assert.Equal(t, "u1", credential.User.ID)
	}

	assert.Equal(t, 1, inner.calls)
}

func TestCachedProviderDoesNotCacheFailures(t *testing.T) {
	rdb, cleanup := testutil.CreateRDB()
	defer cleanup()

	inner := &countingProvider{err: core.NewErrorUnauthorized()}
	provider := NewCachedProvider(inner, rdb)
	ctx := context.Background()

	_, err := provider.Resolve(ctx, "session-abc")
	assert.Error(t, err)
	_, err = provider.Resolve(ctx, "session-abc")
	assert.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestSessionKeyHidesRawSession(t *testing.T) {
	key := sessionKey("session-abc")
	assert.NotContains(t, key, "session-abc")
	assert.Contains(t, key, "session:")
	assert.Equal(t, sessionKey("session-abc"), key)
	assert.NotEqual(t, sessionKey("session-xyz"), key)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestCacheTTLBoundedByExpClaim(t *testing.T) {
	ttl := 5 * time.Minute

	// opaque tokens fall back to the default
	assert.Equal(t, ttl, cacheTTL("not-a-jwt", ttl))

	// a far-future exp leaves the default in place
	assert.Equal(t, ttl, cacheTTL(signedToken(t, time.Now().Add(time.Hour)), ttl))

	// a near exp shortens the TTL
	short := cacheTTL(signedToken(t, time.Now().Add(time.Minute)), ttl)
	assert.Less(t, short, ttl)
	assert.Greater(t, short, 30*time.Second)

	// an already expired token is held for only a second
	assert.Equal(t, time.Second, cacheTTL(signedToken(t, time.Now().Add(-time.Minute)), ttl))
}
