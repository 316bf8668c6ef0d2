package services

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultContactCapacity = 10000

// ContactStore tracks which senders have messaged the bot before, so the
// welcome message goes out exactly once per sender. The store is bounded:
// senders evicted from a full cache are treated as new contacts again.
type ContactStore struct {
	mu    sync.Mutex
	cache *lru.Cache[string, bool]
}

// NewContactStore creates a contact store holding up to capacity senders.
// A capacity of zero or less uses the default.
func NewContactStore(capacity int) (*ContactStore, error) {
	if capacity <= 0 {
		capacity = defaultContactCapacity
	}
	cache, err := lru.New[string, bool](capacity)
	if err != nil {
		return nil, err
	}
	return &ContactStore{cache: cache}, nil
}

// FirstContact reports whether this is the first message seen from the
// sender, and marks the sender as seen.
func (s *ContactStore) FirstContact(senderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.cache.Get(senderID); seen {
		return false
	}
	s.cache.Add(senderID, true)
	return true
}
