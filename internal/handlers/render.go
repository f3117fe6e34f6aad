package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates parses the embedded page set once. Post bodies and comments
// hold markup produced by the editor, so templates get a "raw" helper.
func pageTemplates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"raw": func(s string) template.HTML { return template.HTML(s) },
		}).
		ParseFS(templateFS, "templates/*.html"))
}

// view assembles the common template data (identity, flash) and merges the
// page-specific values over it.
func (h *Handler) view(c *gin.Context, data gin.H) gin.H {
	ident, authed := currentIdentity(c)
	out := gin.H{
		"Title":    "The Blog",
		"LoggedIn": authed,
		"IsAdmin":  authed && ident.IsAdmin,
		"UserName": ident.Name,
	}
	if msg := h.takeFlash(c); msg != "" {
		out["Flash"] = msg
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// setFlash stores a one-shot message for the next rendered page.
func (h *Handler) setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookieName, msg, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func (h *Handler) takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msg
}

// setSessionCookie installs the session token. Expiry is enforced by the
// token itself, so the cookie carries no Max-Age of its own.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// clearSessionCookie logs the actor out unconditionally.
func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// renderError renders the terminal error page with the given status.
func (h *Handler) renderError(c *gin.Context, code int, msg string) {
	c.HTML(code, "error.html", h.view(c, gin.H{
		"Status":  code,
		"Message": msg,
	}))
}

// logAndRenderError logs the underlying error and renders the error page.
func (h *Handler) logAndRenderError(c *gin.Context, code int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.renderError(c, code, userMsg)
}

// redirect is a thin wrapper so every form flow redirects the same way.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
