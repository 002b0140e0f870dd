package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/domain"
)

func TestLoginSetsCookieAndReturnsIdentity(t *testing.T) {
	env := newEnv(t)
	u := env.seedUser(t, "admin@x.com", "admin123", domain.RoleSuperadmin)

	w := env.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@x.com", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		ID    string      `json:"id"`
		Email string      `json:"email"`
		Role  domain.Role `json:"role"`
	}
	decode(t, w, &out)
	require.Equal(t, u.ID, out.ID)
	require.Equal(t, "admin@x.com", out.Email)
	require.Equal(t, domain.RoleSuperadmin, out.Role)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin-token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the admin-token cookie")
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	// Round-trip: the issued token verifies back to the same identity.
	claims, err := env.jwter.Verify(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UID)
	require.Equal(t, "admin@x.com", claims.Email)
	require.Equal(t, domain.RoleSuperadmin, claims.Role)
}

func TestLoginCookieMaxAgeTracksTokenTTL(t *testing.T) {
	env := newEnv(t, func(t *testing.T, e *testEnv) {
		e.jwter = auth.New("test-secret", "terravolt", 48*time.Hour)
	})
	env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@x.com", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin-token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.Equal(t, int(48*time.Hour/time.Second), cookie.MaxAge)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newEnv(t)
	env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@x.com", "password": "nope"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown email answers identically.
	w = env.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "ghost@x.com", "password": "nope"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserListRequiresSuperadminCookie(t *testing.T) {
	env := newEnv(t)
	super := env.seedUser(t, "admin@x.com", "admin123", domain.RoleSuperadmin)
	env.seedUser(t, "other@x.com", "pw", domain.RoleAdmin)

	// No cookie: 403 with the fixed body, not 401.
	w := env.do(t, http.MethodGet, "/admin/users", nil, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

	// Superadmin cookie: full list, password hashes excluded.
	w = env.do(t, http.MethodGet, "/admin/users", nil, env.cookieFor(t, super))
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	decode(t, w, &users)
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotContains(t, u, "passwordHash")
	}
}

func TestUserManagementForbiddenForAdminRole(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)
	victim := env.seedUser(t, "other@x.com", "pw", domain.RoleAdmin)

	w := env.do(t, http.MethodGet, "/admin/users", nil, env.cookieFor(t, admin))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/admin/users/"+victim.ID, nil, env.cookieFor(t, admin))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionEndpoint(t *testing.T) {
	env := newEnv(t)
	u := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	// Invalid session is 401 here, unlike the admin guard's 403.
	w := env.do(t, http.MethodGet, "/auth/session", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/auth/session", nil, &http.Cookie{Name: "admin-token", Value: "garbage"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/auth/session", nil, env.cookieFor(t, u))
	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	decode(t, w, &out)
	require.Equal(t, "admin@x.com", out["email"])
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newEnv(t)
	u := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/auth/logout", nil, env.cookieFor(t, u))
	require.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin-token" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)
}

func TestRegisterCreatesAdmin(t *testing.T) {
	env := newEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register",
		map[string]string{"email": "new@x.com", "password": "pw123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var out map[string]any
	decode(t, w, &out)
	require.Equal(t, "admin", out["role"])

	// Duplicate email is a 400.
	w = env.do(t, http.MethodPost, "/auth/register",
		map[string]string{"email": "new@x.com", "password": "pw123"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRoutesRateLimitedPerClient(t *testing.T) {
	env := newEnv(t)

	limited := false
	for i := 0; i < 40; i++ {
		w := env.do(t, http.MethodGet, "/auth/session", nil, nil)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}
	require.True(t, limited, "a burst past the per-client bucket must get 429")
}

func TestExpiredTokenIsForbiddenOnAdminRoutes(t *testing.T) {
	env := newEnv(t)
	u := env.seedUser(t, "admin@x.com", "admin123", domain.RoleSuperadmin)

	// Same secret, already-past expiry.
	stale := *env.jwter
	stale.TTL = -time.Hour
	tok, err := stale.Issue(u.ID, u.Email, u.Role)
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/admin/users", nil, &http.Cookie{Name: "admin-token", Value: tok})
	require.Equal(t, http.StatusForbidden, w.Code)
}
