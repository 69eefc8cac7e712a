package session

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/model"
)

// Storage keys shared with earlier releases; changing them would log
// existing users out on upgrade.
const (
	KeyToken       = "token"
	KeyCurrentUser = "currentUser"
)

// Manager holds the authentication state backed by application preferences.
// Token and username are always written and cleared together.
type Manager struct {
	prefs fyne.Preferences
}

// NewManager creates a session manager over the given preferences store.
func NewManager(prefs fyne.Preferences) *Manager {
	return &Manager{prefs: prefs}
}

// Login stores the bearer token and username of a freshly authenticated user.
func (m *Manager) Login(token, username string) {
	m.prefs.SetString(KeyToken, token)
	m.prefs.SetString(KeyCurrentUser, username)
}

// Logout clears the stored session.
func (m *Manager) Logout() {
	m.prefs.RemoveValue(KeyToken)
	m.prefs.RemoveValue(KeyCurrentUser)
}

// Token returns the stored bearer token, or the empty string when logged out.
func (m *Manager) Token() string {
	return m.prefs.String(KeyToken)
}

// Username returns the stored username, or the empty string when logged out.
func (m *Manager) Username() string {
	return m.prefs.String(KeyCurrentUser)
}

// IsAuthenticated reports whether a session is stored.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Role derives the current role from the stored username. It is recomputed
// on every call so the role always tracks the session state.
func (m *Manager) Role() model.Role {
	if !m.IsAuthenticated() {
		return model.RoleAnonymous
	}
	return model.RoleFor(m.Username())
}

// UserID extracts the numeric user id from the stored token's "uid" claim.
// Tokens without the claim return false.
func (m *Manager) UserID() (int, bool) {
	token := m.Token()
	if token == "" {
		return 0, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, false
	}
	return int(uid), true
}

// Restore validates the stored session at startup and drops it when the
// token has expired, so the app never starts with a token the backend will
// reject on the first write.
func (m *Manager) Restore() {
	token := m.Token()
	if token == "" {
		return
	}

	log := logger.Get()
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Debug().Err(err).Msg("stored token unparseable, clearing session")
		m.Logout()
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		log.Debug().Msg("stored token has no expiry, clearing session")
		m.Logout()
		return
	}
	if exp.Before(time.Now()) {
		log.Debug().Time("expired_at", exp.Time).Msg("stored token expired, clearing session")
		m.Logout()
		return
	}
	log.Debug().Str("user", m.Username()).Msg("session restored")
}
