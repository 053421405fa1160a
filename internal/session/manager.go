package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/loginapp/authserver/internal/config"
)

// Manager owns the cookie side of the session contract: reading the opaque
// token from a request, minting tokens for new sessions, and expiring the
// cookie on logout. All state goes through the injected [Store].
//
// Handlers perform one coherent load-then-save of the bag per request; the
// manager itself does no cross-request locking.
type Manager struct {
	store      Store
	cookieName string
	secure     bool
	ttl        time.Duration
}

// NewManager constructs a Manager from the session configuration.
func NewManager(store Store, cfg config.Session) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		secure:     cfg.CookieSecure,
		ttl:        cfg.TTL,
	}
}

// Load returns the session referenced by the request's cookie. The second
// return value is false when the request carries no cookie, or the token
// resolves to no live session.
func (m *Manager) Load(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}

	return m.store.Get(cookie.Value)
}

// Save persists the session bag and ensures the client holds its token.
// A session without a token gets a freshly minted one and a Set-Cookie
// header; an existing token is reused so repeated saves within a flow keep
// the same cookie.
func (m *Manager) Save(w http.ResponseWriter, sess Session) Session {
	if sess.Token == "" {
		sess.Token = newToken()
		http.SetCookie(w, m.cookie(sess.Token, m.ttl))
	}

	sess.ExpiresAt = time.Now().Add(m.ttl)
	m.store.Put(sess.Token, sess)

	return sess
}

// Destroy removes the session from the store and expires the client's
// cookie. Destroying a request with no session is a no-op.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	if err := m.store.Delete(cookie.Value); err != nil {
		return err
	}

	http.SetCookie(w, m.cookie("", -time.Hour))
	return nil
}

// cookie builds the session cookie with the manager's attributes. A negative
// maxAge expires it.
func (m *Manager) cookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// newToken mints an opaque session token. UUIDv7 keeps tokens sortable by
// creation time in debugging output; falls back to v4 if the monotonic
// source fails.
func newToken() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
