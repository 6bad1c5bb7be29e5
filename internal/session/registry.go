// Package session maps browser sessions to their state stores. Sessions are
// identified by an opaque cookie and live only as long as the process; a
// restart resets everything, matching the page-reload semantics of the
// original storefront.
package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"guitar-storefront/internal/state"
)

// CookieName carries the session identity.
const CookieName = "storefront_session"

// Registry holds one state store per live session.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*state.Store
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*state.Store)}
}

// Get looks up the store for a session id.
func (r *Registry) Get(id string) (*state.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.stores[id]
	return st, ok
}

// Create registers a fresh store under a new session id.
func (r *Registry) Create() (string, *state.Store) {
	id := uuid.New().String()
	st := state.NewStore()

	r.mu.Lock()
	r.stores[id] = st
	r.mu.Unlock()

	return id, st
}

// Store resolves the request's session store, creating a new session (and
// setting its cookie) when the request carries none or an unknown one.
func (r *Registry) Store(w http.ResponseWriter, req *http.Request) *state.Store {
	if c, err := req.Cookie(CookieName); err == nil {
		if st, ok := r.Get(c.Value); ok {
			return st
		}
	}

	id, st := r.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st
}
