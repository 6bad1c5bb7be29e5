package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"guitar-storefront/internal/state"
)

// Service implements the mocked login flow: after an artificial delay it
// fabricates a user record and signs a token for it. No credential store
// exists; any non-empty email and password succeed.
type Service struct {
	secret []byte
	delay  time.Duration
}

// NewService builds an auth service signing with the given secret. The delay
// stands in for a real identity backend's round trip; tests pass zero.
func NewService(secret string, delay time.Duration) *Service {
	return &Service{secret: []byte(secret), delay: delay}
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

// Login returns a fabricated user for the given email plus a signed token.
func (s *Service) Login(ctx context.Context, email string) (state.User, string, error) {
	if err := s.wait(ctx); err != nil {
		return state.User{}, "", err
	}

	u := fabricateUser(email, "", "")
	token, err := IssueToken(s.secret, u.ID, []string{"customer"})
	if err != nil {
		return state.User{}, "", err
	}
	return u, token, nil
}

// Register behaves like Login but keeps the submitted names.
func (s *Service) Register(ctx context.Context, email, firstName, lastName string) (state.User, string, error) {
	if err := s.wait(ctx); err != nil {
		return state.User{}, "", err
	}

	u := fabricateUser(email, firstName, lastName)
	token, err := IssueToken(s.secret, u.ID, []string{"customer"})
	if err != nil {
		return state.User{}, "", err
	}
	return u, token, nil
}

// fabricateUser derives a plausible account record from the email address
// when no names were submitted.
func fabricateUser(email, firstName, lastName string) state.User {
	if firstName == "" {
		local := email
		if i := strings.IndexByte(email, '@'); i > 0 {
			local = email[:i]
		}
		if local != "" {
			firstName = strings.ToUpper(local[:1]) + local[1:]
		}
	}
	if lastName == "" {
		lastName = "User"
	}
	return state.User{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}
