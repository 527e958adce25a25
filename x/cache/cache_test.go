package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/characterhub/characterhub/internal/testutil"
)

func TestCache(t *testing.T) {
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	c := NewCache(mc)
	ctx := context.Background()

	var calls int32
	fetch := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte(`{"characters":[]}`), nil
	}

	// first read misses and fetches
	data, err := c.Fetch(ctx, "characters:list", time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, `{"characters":[]}`, string(data))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// second read is served from the cache
	data, err = c.Fetch(ctx, "characters:list", time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, `{"characters":[]}`, string(data))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// invalidation forces a refetch
	c.Invalidate(ctx, "characters:list")
	_, err = c.Fetch(ctx, "characters:list", time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCacheCoalescesConcurrentMisses(t *testing.T) {
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	c := NewCache(mc)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte("payload"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := c.Fetch(ctx, "coalesce", time.Minute, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "payload", string(data))
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCacheFetchError(t *testing.T) {
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	c := NewCache(mc)
	ctx := context.Background()

	_, err := c.Fetch(ctx, "broken", time.Minute, func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("upstream down")
	})
	assert.Error(t, err)

	// errors are not cached
	data, err := c.Fetch(ctx, "broken", time.Minute, func(ctx context.Context) ([]byte, error) {
		return []byte("recovered"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", string(data))
}
