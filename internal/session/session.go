// Package session issues and reads the signed browser session cookie.
//
// A session carries either the local account id or a social provider tag
// with its subject id, plus transient OAuth round-trip data (the
// anti-forgery state and the provider access token kept for unlinking).
// The cookie value is an HS256 JWT; tampering invalidates the session.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/haeun-dev/memo-server/models"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no session cookie")
	// ErrInvalidSession is returned for expired, malformed or tampered cookies.
	ErrInvalidSession = errors.New("invalid session")
)

// Session is the decoded cookie payload. A local login sets UserID; a
// social login sets Provider and SubjectID instead. State is only present
// between the OAuth redirect and the callback.
type Session struct {
	UserID      int64
	Provider    models.Provider
	SubjectID   string
	AccessToken string
	State       string
}

// IsLocal reports whether the session identifies a local account.
func (s Session) IsLocal() bool {
	return s.UserID != 0
}

// IsSocial reports whether the session identifies a social account.
func (s Session) IsSocial() bool {
	return s.Provider != "" && s.SubjectID != ""
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"uid,omitempty"`
	Provider    string `json:"provider,omitempty"`
	SubjectID   string `json:"subject_id,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	State       string `json:"oauth_state,omitempty"`
}

// Manager signs and verifies session cookies.
type Manager struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	secure   bool
}

// NewManager returns a cookie manager signing with the given key. Sessions
// expire after the given duration from issue time.
func NewManager(signKey, issuer string, duration time.Duration) *Manager {
	return &Manager{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
	}
}

// Issue signs the session and sets it as an HttpOnly cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, session Session) error {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
		UserID:      session.UserID,
		Provider:    string(session.Provider),
		SubjectID:   session.SubjectID,
		AccessToken: session.AccessToken,
		State:       session.State,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.duration.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Read decodes and verifies the session cookie from the request.
func (m *Manager) Read(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, ErrNoSession
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.signKey, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidSession
	}

	return Session{
		UserID:      claims.UserID,
		Provider:    models.Provider(claims.Provider),
		SubjectID:   claims.SubjectID,
		AccessToken: claims.AccessToken,
		State:       claims.State,
	}, nil
}

// Clear expires the session cookie on the response.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
