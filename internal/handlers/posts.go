package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"goblog/internal/models"
	"goblog/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadPosts   = "Could not load posts."
	errLoadPost    = "Could not load the post."
	errSavePost    = "Could not save the post."
	errDeletePost  = "Could not delete the post."
	msgNoSuchPost  = "That post does not exist."
	msgTitleTaken  = "A post with that title already exists."
	msgPostInvalid = "All fields are required and the image URL must be a valid URL."
)

type postForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	Body     string `form:"body" binding:"required"`
	ImageURL string `form:"img_url" binding:"required,url"`
}

// postIDParam parses the :id route segment; writes a 404 page on garbage.
func (h *Handler) postIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusNotFound, msgNoSuchPost)
		return 0, false
	}
	return id, true
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Blog.List(c.Request.Context())
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errLoadPosts, "list_posts_failed", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", h.view(c, gin.H{"Posts": posts}))
}

func (h *Handler) showPost(c *gin.Context) {
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

	h.renderPostPage(c, http.StatusOK, post, gin.H{})
}

// renderPostPage renders the post page with its comment thread.
func (h *Handler) renderPostPage(c *gin.Context, code int, post *models.Post, extra gin.H) {
	comments, err := h.services.Comments.ListForPost(c.Request.Context(), post.ID)
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errLoadPost, "list_comments_failed", err, "post_id", post.ID)
		return
	}

	data := gin.H{"Post": post, "Comments": comments}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(code, "post.html", h.view(c, data))
}

func (h *Handler) newPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{"Title": "New Post", "Form": postForm{}}))
}

func (h *Handler) createPost(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{
			"Error": msgPostInvalid,
			"Form":  form,
		}))
		return
	}

	ident, _ := currentIdentity(c) // adminOnly guarantees presence
	_, err := h.services.Blog.Create(c.Request.Context(), ident.UserID, service.PostInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	})
	switch {
	case errors.Is(err, service.ErrTitleTaken):
		c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{
			"Error": msgTitleTaken,
			"Form":  form,
		}))
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError, errSavePost, "create_post_failed", err, "title", form.Title)
	default:
		redirect(c, "/")
	}
}

func (h *Handler) editPostForm(c *gin.Context) {
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

	c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{
		"IsEdit": true,
		"PostID": post.ID,
		"Form": postForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImageURL: post.ImageURL,
		},
	}))
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{
			"IsEdit": true,
			"PostID": id,
			"Error":  msgPostInvalid,
			"Form":   form,
		}))
		return
	}

	err := h.services.Blog.Edit(c.Request.Context(), id, service.PostInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	})
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		h.renderError(c, http.StatusNotFound, msgNoSuchPost)
	case errors.Is(err, service.ErrTitleTaken):
		c.HTML(http.StatusOK, "make_post.html", h.view(c, gin.H{
			"IsEdit": true,
			"PostID": id,
			"Error":  msgTitleTaken,
			"Form":   form,
		}))
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError, errSavePost, "edit_post_failed", err, "id", id)
	default:
		redirect(c, fmt.Sprintf("/post/%d", id))
	}
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	err := h.services.Blog.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		h.renderError(c, http.StatusNotFound, msgNoSuchPost)
	case err != nil:
		h.logAndRenderError(c, http.StatusInternalServerError, errDeletePost, "delete_post_failed", err, "id", id)
	default:
		redirect(c, "/")
	}
}
