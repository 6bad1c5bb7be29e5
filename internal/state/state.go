// Package state holds the per-session application state: three independent
// slices (catalog view, cart, auth) advanced by pure transition functions.
// The Store wrapper applies transitions atomically; callers orchestrate
// cross-slice sequencing themselves.
package state

import (
	"sync"

	"guitar-storefront/internal/cart"
	"guitar-storefront/internal/catalog"
)

// CatalogState is the catalog view slice: the loaded products plus the
// loading/error flags and the active filters.
type CatalogState struct {
	Products         []catalog.Product `json:"products"`
	Loading          bool              `json:"loading"`
	Err              string            `json:"error,omitempty"`
	SelectedCategory catalog.Category  `json:"selected_category"`
	SearchQuery      string            `json:"search_query"`
}

// SetLoading flips the loading flag.
func SetLoading(s CatalogState, loading bool) CatalogState {
	s.Loading = loading
	return s
}

// SetProducts records a successful load, clearing the loading and error
// flags.
func SetProducts(s CatalogState, products []catalog.Product) CatalogState {
	s.Products = products
	s.Loading = false
	s.Err = ""
	return s
}

// SetError records a failed load. The error flag and a successful load are
// mutually exclusive.
func SetError(s CatalogState, msg string) CatalogState {
	s.Err = msg
	s.Loading = false
	return s
}

// SetSelectedCategory records the active category filter.
func SetSelectedCategory(s CatalogState, c catalog.Category) CatalogState {
	s.SelectedCategory = c
	return s
}

// SetSearchQuery records the active free-text query.
func SetSearchQuery(s CatalogState, q string) CatalogState {
	s.SearchQuery = q
	return s
}

// AuthStatus is the login lifecycle position.
type AuthStatus string

const (
	AuthIdle          AuthStatus = "idle"
	AuthLoggingIn     AuthStatus = "logging_in"
	AuthAuthenticated AuthStatus = "authenticated"
	AuthFailed        AuthStatus = "failed"
)

// User is the fabricated account record returned by the mocked auth flow.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthState is the auth slice. The machine runs
// idle -> logging_in -> authenticated, or idle -> logging_in -> failed and
// back to idle on the next attempt. Logout drops straight back to idle.
type AuthState struct {
	Status AuthStatus `json:"status"`
	User   *User      `json:"user,omitempty"`
	Err    string     `json:"error,omitempty"`
}

// LoginStart enters the logging_in state, clearing any previous failure.
func LoginStart(AuthState) AuthState {
	return AuthState{Status: AuthLoggingIn}
}

// LoginSuccess enters the authenticated state with the given user.
func LoginSuccess(_ AuthState, u User) AuthState {
	return AuthState{Status: AuthAuthenticated, User: &u}
}

// LoginFailure records the failure; the next LoginStart clears it.
func LoginFailure(_ AuthState, msg string) AuthState {
	return AuthState{Status: AuthFailed, Err: msg}
}

// Logout returns to idle.
func Logout(AuthState) AuthState {
	return AuthState{Status: AuthIdle}
}

// Store is one session's state container. Transitions are serialized under
// the mutex, so each one is applied atomically relative to the others; state
// is only ever read through snapshots.
type Store struct {
	mu      sync.Mutex
	catalog CatalogState
	cart    cart.Cart
	auth    AuthState
}

// NewStore returns a store in its initial state: empty catalog, empty cart,
// idle auth, category filter "all".
func NewStore() *Store {
	return &Store{
		catalog: CatalogState{SelectedCategory: catalog.CategoryAll},
		auth:    AuthState{Status: AuthIdle},
	}
}

// Catalog returns a snapshot of the catalog view slice.
func (s *Store) Catalog() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Cart returns a snapshot of the cart slice.
func (s *Store) Cart() cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = SetLoading(s.catalog, loading)
}

func (s *Store) SetProducts(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = SetProducts(s.catalog, products)
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = SetError(s.catalog, msg)
}

func (s *Store) SetSelectedCategory(c catalog.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = SetSelectedCategory(s.catalog, c)
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = SetSearchQuery(s.catalog, q)
}

// AddToCart merges the product into the cart and returns the new snapshot.
func (s *Store) AddToCart(p catalog.Product) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.Add(s.cart, p)
	return s.cart
}

// RemoveFromCart deletes the product's line and returns the new snapshot.
func (s *Store) RemoveFromCart(productID string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.Remove(s.cart, productID)
	return s.cart
}

// UpdateQuantity sets a line's quantity and returns the new snapshot.
func (s *Store) UpdateQuantity(productID string, quantity int) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.UpdateQuantity(s.cart, productID, quantity)
	return s.cart
}

// ClearCart empties the cart and returns the new snapshot.
func (s *Store) ClearCart() cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.Clear(s.cart)
	return s.cart
}

func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = LoginStart(s.auth)
}

func (s *Store) LoginSuccess(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = LoginSuccess(s.auth, u)
}

func (s *Store) LoginFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = LoginFailure(s.auth, msg)
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = Logout(s.auth)
}
