package handlers

import (
	"errors"
	"net/http"

	"goblog/internal/service"

	"github.com/gin-gonic/gin"
)

// submitComment handles the comment form on the post page. The page itself is
// public; posting a comment silently requires a session.
func (h *Handler) submitComment(c *gin.Context) {
	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.services.Blog.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrPostNotFound) {
		h.renderError(c, http.StatusNotFound, msgNoSuchPost)
		return
	}
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errLoadPost, "get_post_failed", err, "id", id)
		return
	}

	ident, authed := currentIdentity(c)
	if !authed {
		h.setFlash(c, flashLoginToComment)
		redirect(c, "/login")
		return
	}

	text := c.PostForm("text")
	_, err = h.services.Comments.Add(c.Request.Context(), post.ID, ident.UserID, text)
	switch {
	case errors.Is(err, service.ErrEmptyComment):
		h.renderPostPage(c, http.StatusOK, post, gin.H{"Error": "Comment text is required."})
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError, "Could not save the comment.", "add_comment_failed", err, "post_id", post.ID)
	default:
		// No redirect: the page re-renders with the updated thread.
		h.renderPostPage(c, http.StatusOK, post, gin.H{})
	}
}
