package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.view(c, gin.H{}))
}

func (h *Handler) contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.view(c, gin.H{}))
}

func (h *Handler) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", h.view(c, gin.H{}))
}
