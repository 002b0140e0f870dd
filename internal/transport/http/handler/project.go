package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/middleware"
	"terravolt-cms/internal/transport/http/response"
)

type ProjectHandler struct {
	projects *service.ProjectService
}

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, projects)
}

// Detail serves the public project page: the entity plus prev/next
// neighbors and up to two related entries.
func (h *ProjectHandler) Detail(c *gin.Context) {
	view, err := h.projects.Detail(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var in service.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	actor := middleware.Actor(c)
	p, err := h.projects.Create(in, actor.UID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var patch service.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.projects.Update(c.Param("id"), patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
