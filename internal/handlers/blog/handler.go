// Package blog serves the blog schema over HTTP.
package blog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/demodb/internal/handlers"
	"github.com/yukikurage/demodb/internal/middleware"
	service "github.com/yukikurage/demodb/internal/services/blog"
	"github.com/yukikurage/demodb/internal/utils"
)

type Handler struct {
	service *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Register mounts the schema's routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	id := middleware.RequireID()

	authors := rg.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.POST("", h.CreateAuthor)
		authors.GET("/:id", id, h.GetAuthor)
		authors.PUT("/:id", id, h.UpdateAuthor)
		authors.DELETE("/:id", id, h.DeleteAuthor)
	}

	tags := rg.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.POST("", h.CreateTag)
		tags.GET("/:id", id, h.GetTag)
		tags.PUT("/:id", id, h.UpdateTag)
		tags.DELETE("/:id", id, h.DeleteTag)
	}

	posts := rg.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:id", id, h.GetPost)
		posts.PUT("/:id", id, h.UpdatePost)
		posts.DELETE("/:id", id, h.DeletePost)
		posts.GET("/:id/comments", id, h.ListComments)
		posts.PUT("/:id/tags/:tag_id", middleware.RequireID("id", "tag_id"), h.AttachTag)
		posts.DELETE("/:id/tags/:tag_id", middleware.RequireID("id", "tag_id"), h.DetachTag)
	}

	comments := rg.Group("/comments")
	{
		comments.POST("", h.CreateComment)
		comments.GET("/:id", id, h.GetComment)
		comments.PUT("/:id", id, h.UpdateComment)
		comments.DELETE("/:id", id, h.DeleteComment)
	}

	lookups := rg.Group("/lookups")
	{
		lookups.GET("/authors", h.LookupAuthors)
		lookups.GET("/posts", h.LookupPosts)
		lookups.GET("/tags", h.LookupTags)
	}
}

// Authors

func (h *Handler) ListAuthors(c *gin.Context) {
	p := utils.GetListParams(c)
	authors, err := h.service.ListAuthors(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, authors, p.Page, err)
}

func (h *Handler) GetAuthor(c *gin.Context) {
	author, err := h.service.GetAuthor(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, author, err)
}

func (h *Handler) CreateAuthor(c *gin.Context) {
	var input service.AuthorInput
	if !handlers.Bind(c, &input) {
		return
	}
	author, err := h.service.CreateAuthor(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, author, err)
}

func (h *Handler) UpdateAuthor(c *gin.Context) {
	var input service.AuthorInput
	if !handlers.Bind(c, &input) {
		return
	}
	author, err := h.service.UpdateAuthor(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, author, err)
}

func (h *Handler) DeleteAuthor(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteAuthor(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupAuthors(c *gin.Context) {
	options, err := h.service.LookupAuthors(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

// Tags

func (h *Handler) ListTags(c *gin.Context) {
	p := utils.GetListParams(c)
	tags, err := h.service.ListTags(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, tags, p.Page, err)
}

func (h *Handler) GetTag(c *gin.Context) {
	tag, err := h.service.GetTag(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, tag, err)
}

func (h *Handler) CreateTag(c *gin.Context) {
	var input service.TagInput
	if !handlers.Bind(c, &input) {
		return
	}
	tag, err := h.service.CreateTag(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, tag, err)
}

func (h *Handler) UpdateTag(c *gin.Context) {
	var input service.TagInput
	if !handlers.Bind(c, &input) {
		return
	}
	tag, err := h.service.UpdateTag(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, tag, err)
}

func (h *Handler) DeleteTag(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteTag(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupTags(c *gin.Context) {
	options, err := h.service.LookupTags(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

// Posts

func (h *Handler) ListPosts(c *gin.Context) {
	p := utils.GetListParams(c)
	posts, err := h.service.ListPosts(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, posts, p.Page, err)
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, post, err)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var input service.PostInput
	if !handlers.Bind(c, &input) {
		return
	}
	post, err := h.service.CreatePost(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, post, err)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var input service.PostInput
	if !handlers.Bind(c, &input) {
		return
	}
	post, err := h.service.UpdatePost(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, post, err)
}

func (h *Handler) DeletePost(c *gin.Context) {
	handlers.NoContent(c, h.service.DeletePost(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupPosts(c *gin.Context) {
	options, err := h.service.LookupPosts(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

func (h *Handler) AttachTag(c *gin.Context) {
	tagID, _ := middleware.GetID(c, "tag_id")
	handlers.NoContent(c, h.service.AttachTag(c.Request.Context(), handlers.ID(c), tagID))
}

func (h *Handler) DetachTag(c *gin.Context) {
	tagID, _ := middleware.GetID(c, "tag_id")
	handlers.NoContent(c, h.service.DetachTag(c.Request.Context(), handlers.ID(c), tagID))
}

// Comments

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), handlers.ID(c))
	handlers.List(c, comments, 1, err)
}

func (h *Handler) GetComment(c *gin.Context) {
	comment, err := h.service.GetComment(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, comment, err)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var input service.CommentInput
	if !handlers.Bind(c, &input) {
		return
	}
	comment, err := h.service.CreateComment(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, comment, err)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	var input service.CommentInput
	if !handlers.Bind(c, &input) {
		return
	}
	comment, err := h.service.UpdateComment(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, comment, err)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteComment(c.Request.Context(), handlers.ID(c)))
}
