package handlers

import (
	"errors"
	"net/http"

	"goblog/internal/service"

	"github.com/gin-gonic/gin"
)

// Flash messages kept verbatim from the original site copy.
const (
	flashAlreadyRegistered = "You have already registered with this email"
	flashInvalidEmail      = "The email is invalid!"
	flashInvalidPassword   = "Your password is invalid!"
	flashLoginToComment    = "You need to log in before you can comment!"
)

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.view(c, gin.H{"Title": "Register", "Form": registerForm{}}))
}

func (h *Handler) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", h.view(c, gin.H{
			"Title": "Register",
			"Error": "Name, a valid email and a password are required.",
			"Form":  form,
		}))
		return
	}

	token, err := h.services.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		h.setFlash(c, flashAlreadyRegistered)
		redirect(c, "/login")
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError,
			"Could not complete registration.", "register_failed", err, "email", form.Email)
	default:
		h.setSessionCookie(c, token)
		redirect(c, "/")
	}
}

func (h *Handler) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.view(c, gin.H{"Title": "Log In", "Form": loginForm{}}))
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", h.view(c, gin.H{
			"Title": "Log In",
			"Error": "A valid email and a password are required.",
			"Form":  form,
		}))
		return
	}

	token, err := h.services.Login(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrUnknownEmail):
		h.setFlash(c, flashInvalidEmail)
		redirect(c, "/login")
	case errors.Is(err, service.ErrInvalidPassword):
		h.setFlash(c, flashInvalidPassword)
		redirect(c, "/login")
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError,
			"Could not sign you in.", "login_failed", err, "email", form.Email)
	default:
		h.setSessionCookie(c, token)
		redirect(c, "/")
	}
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	redirect(c, "/")
}
