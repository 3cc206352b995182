package cache

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory request counter with per-key windows. It
// backs the rate limiter when no Redis instance is configured.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*memoryItem
}

type memoryItem struct {
	count      int64
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Increment bumps the counter for key, starting a fresh window when the
// previous one expired. It returns the new count and when the window
// resets.
func (ms *MemoryStore) Increment(key string, window time.Duration) (int64, time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	item, exists := ms.items[key]
	if !exists || now.After(item.expireTime) {
		item = &memoryItem{expireTime: now.Add(window)}
		ms.items[key] = item
	}
	item.count++
	return item.count, item.expireTime
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
