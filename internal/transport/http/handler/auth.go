package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/core/cache"
	"terravolt-cms/internal/domain"
	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/middleware"
	"terravolt-cms/internal/transport/http/response"
)

const (
	maxLoginAttempts = 10
	attemptWindow    = 15 * time.Minute
)

type AuthHandler struct {
	auth     *service.AuthService
	attempts cache.AttemptCounter
}

func NewAuthHandler(auth *service.AuthService, attempts cache.AttemptCounter) *AuthHandler {
	return &AuthHandler{auth: auth, attempts: attempts}
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	// Every attempt bumps the per-IP counter; success resets it.
	n, _ := h.attempts.Incr(c.Request.Context(), c.ClientIP(), attemptWindow)
	if n > maxLoginAttempts {
		response.Fail(c, http.StatusTooManyRequests, "too many login attempts, try again later")
		return
	}

	u, token, err := h.auth.Login(in.Email, in.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	_ = h.attempts.Reset(c.Request.Context(), c.ClientIP())

	// Cookie and token expire together.
	h.setCookie(c, token, int(h.auth.TokenTTL()/time.Second))
	response.OK(c, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
}

type registerIn struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Register creates an admin account.
// TODO: restrict to superadmin callers once the admin UI sends the
// session cookie with this request.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.auth.Register(in.Email, in.Password, in.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
}

// Session decodes the token cookie back into an identity. Unlike the
// admin route guard, an invalid session answers 401 here.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		response.Fail(c, http.StatusUnauthorized, "no active session")
		return
	}
	claims, err := h.auth.Verify(token)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "session invalid")
		return
	}
	response.OK(c, gin.H{"id": claims.UID, "email": claims.Email, "role": claims.Role})
}

// Logout clears the cookie. Tokens are stateless and stay valid until
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		response.Fail(c, http.StatusUnauthorized, "no active session")
		return
	}
	if _, err := h.auth.Verify(token); err != nil {
		response.Fail(c, http.StatusUnauthorized, "session invalid")
		return
	}
	h.setCookie(c, "", -1)
	response.OK(c, gin.H{"ok": true})
}

func (h *AuthHandler) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", false, true)
}
