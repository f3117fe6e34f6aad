package handlers

import (
	"net/http"

	"goblog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"

	identityCtxKey  = "identity"
	requestIDCtxKey = "requestID"
)

// requestID tags every request with a correlation id for the logs.
func (h *Handler) requestID(c *gin.Context) {
	id := uuid.NewString()
	c.Set(requestIDCtxKey, id)
	c.Header("X-Request-Id", id)
	c.Next()
}

// currentUser resolves the session cookie into an identity. A missing,
// expired or tampered token means the request proceeds as anonymous.
func (h *Handler) currentUser(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	ident, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_token_rejected", "err", err)
		}
		c.Next()
		return
	}

	c.Set(identityCtxKey, ident)
	c.Next()
}

// adminOnly aborts with 403 before the wrapped handler runs unless the
// current actor is the admin.
func (h *Handler) adminOnly(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok || !ident.IsAdmin {
		h.renderError(c, http.StatusForbidden, "You are not allowed to do that.")
		c.Abort()
		return
	}
	c.Next()
}

// currentIdentity returns the authenticated actor, if any.
func currentIdentity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return service.Identity{}, false
	}
	ident, ok := v.(service.Identity)
	return ident, ok
}
