package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 5 * time.Minute

// cachedProvider decorates a CredentialProvider with a redis-backed cache so
// every proxied request does not round-trip to the auth provider. The TTL is
// capped by the access token's exp claim (read unverified; verification is
// the provider's job, the claim only bounds cache lifetime).
type cachedProvider struct {
	inner CredentialProvider
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedProvider wraps inner with a redis session cache.
func NewCachedProvider(inner CredentialProvider, rdb *redis.Client) CredentialProvider {
	return &cachedProvider{inner: inner, rdb: rdb, ttl: defaultSessionTTL}
}

func (p *cachedProvider) Resolve(ctx context.Context, sessionID string) (Credential, error) {
	ctx, span := tracer.Start(ctx, "Auth.Cache.Resolve")
	defer span.End()

	key := sessionKey(sessionID)

	cached, err := p.rdb.Get(ctx, key).Result()
	if err == nil {
		var credential Credential
		err = json.Unmarshal([]byte(cached), &credential)
		if err == nil {
			return credential, nil
		}
		// unreadable entry, drop it and fall through to the provider
		p.rdb.Del(ctx, key)
	}

	credential, err := p.inner.Resolve(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return Credential{}, err
	}

	data, err := json.Marshal(credential)
	if err == nil {
		p.rdb.Set(ctx, key, data, cacheTTL(credential.Token, p.ttl))
	}

	return credential, nil
}

// sessionKey hashes the session reference so raw session material never lands
// in redis keyspace listings.
func sessionKey(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return "session:" + hex.EncodeToString(sum[:])
}

// cacheTTL bounds ttl by the token's exp claim when one is present.
func cacheTTL(token string, ttl time.Duration) time.Duration {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return ttl
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ttl
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return time.Second
	}
	if remaining < ttl {
		return remaining
	}
	return ttl
}
