// Package session owns the client-side conversation identity and the small
// recall list of recently created promotions. Both persist through the
// injectable key-value store under the same keys the web client used.
package session

import (
	"github.com/google/uuid"

	"github.com/ElaineMBarros/promoterm/internal/localstore"
)

const sessionKey = "promoagente-session"

// Store persists the active session id. At most one id is active per client.
type Store struct {
	kv localstore.KV
}

func NewStore(kv localstore.KV) *Store {
	return &Store{kv: kv}
}

// Get returns the persisted session id, if any. No shape validation: the id
// is opaque and may have been issued by the server.
func (s *Store) Get() (string, bool) {
	id, ok := s.kv.Get(sessionKey)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Set persists the id, overwriting any prior value.
func (s *Store) Set(id string) error {
	return s.kv.Set(sessionKey, id)
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}
