package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryBlacklistAddAndCheck(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	exp := time.Now().Add(time.Hour)
	assert.NoError(t, store.AddToBlacklist("revoked-token", exp))

	isBlacklisted, err := store.IsBlacklisted("revoked-token")
	assert.NoError(t, err)
	assert.True(t, isBlacklisted)

	isBlacklisted, err = store.IsBlacklisted("never-seen-token")
	assert.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestInMemoryBlacklistCleanUpExpired(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	assert.NoError(t, store.AddToBlacklist("expired-1", time.Now().Add(-time.Hour)))
	assert.NoError(t, store.AddToBlacklist("expired-2", time.Now().Add(-time.Minute)))
	assert.NoError(t, store.AddToBlacklist("still-valid", time.Now().Add(time.Hour)))

	store.CleanUpExpired()

	// Expired entries are swept, the live one survives
	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.blacklist, 1)
	_, exists := store.blacklist["still-valid"]
	assert.True(t, exists)
}

func TestInMemoryBlacklistCleanUpEmpty(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	assert.NotPanics(t, func() {
		store.CleanUpExpired()
	})
}

func TestInMemoryBlacklistUpdateExpiration(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)
	assert.NoError(t, store.AddToBlacklist("token", first))
	assert.NoError(t, store.AddToBlacklist("token", second))

	store.mu.RLock()
	expTime := store.blacklist["token"]
	store.mu.RUnlock()
	assert.Equal(t, second, expTime)
}

func TestInMemoryBlacklistConcurrentAccess(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	exp := time.Now().Add(time.Hour)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			token := fmt.Sprintf("token-%d", id)
			assert.NoError(t, store.AddToBlacklist(token, exp))
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	for i := 0; i < 10; i++ {
		isBlacklisted, err := store.IsBlacklisted(fmt.Sprintf("token-%d", i))
		assert.NoError(t, err)
		assert.True(t, isBlacklisted)
	}
}
