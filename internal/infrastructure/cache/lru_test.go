package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/vibeterm/internal/application/port"
)

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2, 0)

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a") // a is now the most recent
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_UpdateAndRemove(t *testing.T) {
	c := NewLRU[string, int](2, 0)
	c.Set("a", 1)
	c.Set("a", 10)
	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())

	c.Remove("a")
	c.Remove("missing")
	assert.Equal(t, 0, c.Len())
}

func TestLRU_TTL(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := NewLRU[string, string](4, time.Minute)
	c.now = clock.now

	c.Set("/src/app", "/src")
	clock.t = clock.t.Add(59 * time.Second)
	v, ok := c.Get("/src/app")
	assert.True(t, ok)
	assert.Equal(t, "/src", v)

	clock.t = clock.t.Add(time.Second)
	_, ok = c.Get("/src/app")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entries are dropped on read")

	c.Set("/src/app", "/src")
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("/src/app", "/src") // restarts the lifetime
	clock.t = clock.t.Add(45 * time.Second)
	_, ok = c.Get("/src/app")
	assert.True(t, ok)
}

func TestLRU_ZeroCapacity(t *testing.T) {
	c := NewLRU[int, int](0, 0)
	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](16, time.Hour)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i+j)%32)
				c.Set(key, j)
				_, _ = c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
