package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/token"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// Store keeps live sessions in memory. Sessions are not persisted: a
// gateway restart signs everyone out, same as clearing browser storage.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(defaultTTL time.Duration) *Store {
	return &Store{sessions: make(map[string]*Session), ttl: defaultTTL}
}

// Create mints a session for a fresh token pair. Expiry follows the access
// token's exp claim when it is readable, the store default otherwise.
func (st *Store) Create(access, refresh string, user transform.UserView) *Session {
	now := time.Now()
	expires := now.Add(st.ttl)
	if info, err := token.Inspect(access); err == nil && !info.ExpiresAt.IsZero() {
		expires = info.ExpiresAt
	}

	sess := &Session{
		ID:           uuid.NewString(),
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
		CreatedAt:    now,
		ExpiresAt:    expires,
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get resolves a session ID, dropping the session if it has expired.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if sess.Expired(time.Now()) {
		st.Delete(id)
		return nil, false
	}
	return sess, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops expired sessions and reports how many were removed.
func (st *Store) Sweep() int {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		if sess.Expired(now) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps on an interval until the context is cancelled.
func (st *Store) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := st.Sweep(); removed > 0 {
					log.Printf("session sweep completed removed=%d remaining=%d", removed, st.Len())
				}
			}
		}
	}()
}
