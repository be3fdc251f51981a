// Package session owns the current-user state of the front-end.
//
// A session is created by an explicit login and destroyed by an explicit
// logout; nothing else mutates it. API clients never read it implicitly -
// handlers fetch the session and pass the token into each call.
package session

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "study_session"

// Session holds the authenticated participant of this front-end instance.
type Session struct {
	ID        string
	UserID    string
	JWT       string
	CreatedAt time.Time
}

// Store keeps the active sessions. Login and logout are discrete actions, so a
// plain mutex-guarded map is all the coordination required.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

// Create registers a new session for a logged-in participant and returns it.
func (s *Store) Create(userID, token string) Session {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		JWT:       token,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess

	return sess
}

// Get looks up a session by id.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session. Deleting an unknown id is a no-op: logout must
// always leave the state absent, regardless of what was there before.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// FromRequest resolves the session referenced by the request's cookie.
func (s *Store) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return s.Get(cookie.Value)
}

// NewCookie builds the session cookie set after login.
func NewCookie(environment string, sess Session) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   environment == "prod" || environment == "staging",
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds the cookie that clears the session after logout.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}

// TokenStatus classifies a session token used in a front-end request.
type TokenStatus int

const (
	TokenMissing TokenStatus = iota
	TokenInvalid
	TokenExpired
	TokenValid
)

var tokenStatusNames = []string{"TokenMissing", "TokenInvalid", "TokenExpired", "TokenValid"}

func (t TokenStatus) String() string {
	if t < 0 || int(t) >= len(tokenStatusNames) {
		return fmt.Sprintf("TokenStatus(%d)", int(t))
	}
	return tokenStatusNames[t]
}

// CheckTokenStatus inspects a session token without verifying its signature -
// only the backend holds the signing secret. The front-end just needs to know
// whether to bother sending the token at all.
func CheckTokenStatus(token string) TokenStatus {
	if token == "" {
		return TokenMissing
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	_, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return TokenInvalid
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return TokenExpired
	}

	return TokenValid
}
