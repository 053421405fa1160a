package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginapp/authserver/internal/config"
)

func testManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	m := NewManager(store, config.Session{
		CookieName: "session_id",
		TTL:        time.Hour,
	})
	return m, store
}

// requestWithCookie builds a request carrying the session cookie set by a
// previous response.
func requestWithCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a Set-Cookie header")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return req
}

// TestAuthenticated verifies that only a session with UserID set counts as
// authenticated — a pending-OTP session does not.
func TestAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{TempUserID: 42, AwaitingOTP: true}.Authenticated())
	assert.True(t, Session{UserID: 42, Username: "alice"}.Authenticated())
}

// TestSaveAndLoad_RoundTrip verifies that a saved session can be loaded back
// via the cookie it set.
func TestSaveAndLoad_RoundTrip(t *testing.T) {
	m, _ := testManager()
	rec := httptest.NewRecorder()

	saved := m.Save(rec, Session{TempUserID: 7, AwaitingOTP: true})
	require.NotEmpty(t, saved.Token)

	req := requestWithCookie(t, rec)
	loaded, ok := m.Load(req)
	require.True(t, ok)
	assert.Equal(t, int64(7), loaded.TempUserID)
	assert.True(t, loaded.AwaitingOTP)
	assert.False(t, loaded.Authenticated())
}

// TestSave_ReusesToken verifies that saving an already-tokened session does
// not mint a new cookie.
func TestSave_ReusesToken(t *testing.T) {
	m, _ := testManager()
	rec := httptest.NewRecorder()

	saved := m.Save(rec, Session{TempUserID: 7})

	rec2 := httptest.NewRecorder()
	saved.UserID = 7
	saved.TempUserID = 0
	again := m.Save(rec2, saved)

	assert.Equal(t, saved.Token, again.Token)
	assert.Empty(t, rec2.Result().Cookies(), "no new cookie expected for an existing session")
}

// TestSave_CookieAttributes verifies the cookie is HTTP-only with the
// configured name; Secure stays off by default.
func TestSave_CookieAttributes(t *testing.T) {
	m, _ := testManager()
	rec := httptest.NewRecorder()

	m.Save(rec, Session{TempUserID: 1})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
}

// TestLoad_NoCookie verifies that a request without a session cookie loads
// nothing.
func TestLoad_NoCookie(t *testing.T) {
	m, _ := testManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := m.Load(req)
	assert.False(t, ok)
}

// TestLoad_UnknownToken verifies that a cookie pointing at no stored session
// loads nothing.
func TestLoad_UnknownToken(t *testing.T) {
	m, _ := testManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "stale-token"})

	_, ok := m.Load(req)
	assert.False(t, ok)
}

// TestDestroy_RemovesSessionAndExpiresCookie verifies logout semantics: the
// bag is gone and the cookie is expired.
func TestDestroy_RemovesSessionAndExpiresCookie(t *testing.T) {
	m, store := testManager()
	rec := httptest.NewRecorder()

	m.Save(rec, Session{UserID: 7, Username: "alice"})
	require.Equal(t, 1, store.Len())

	req := requestWithCookie(t, rec)
	rec2 := httptest.NewRecorder()
	require.NoError(t, m.Destroy(rec2, req))

	assert.Equal(t, 0, store.Len())

	cookies := rec2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0, "cookie should be expired")

	// the old cookie no longer resolves
	_, ok := m.Load(req)
	assert.False(t, ok)
}

// TestDestroy_NoCookie verifies destroying a session-less request is a no-op.
func TestDestroy_NoCookie(t *testing.T) {
	m, _ := testManager()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, m.Destroy(rec, req))
}

// TestMemoryStore_ExpiredSessionDropped verifies lazy expiry on read.
func TestMemoryStore_ExpiredSessionDropped(t *testing.T) {
	store := NewMemoryStore()
	store.Put("tok", Session{Token: "tok", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})

	_, ok := store.Get("tok")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
