package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/middleware"
	"terravolt-cms/internal/transport/http/response"
)

type BlogHandler struct {
	blogs *service.BlogService
}

func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogs.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, blogs)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	b, err := h.blogs.GetBySlug(c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, b)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var in service.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	actor := middleware.Actor(c)
	b, err := h.blogs.Create(in, actor.UID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, b)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.blogs.Update(c.Param("id"), raw)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, b)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogs.Delete(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
