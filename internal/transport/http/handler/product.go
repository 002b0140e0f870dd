package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/middleware"
	"terravolt-cms/internal/transport/http/response"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListPublic returns active products only, oldest first. The ordering
// differs from blogs and projects on purpose; the public pages depend
// on it.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.products.ListPublic()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, products)
}

func (h *ProductHandler) ListAdmin(c *gin.Context) {
	products, err := h.products.ListAdmin()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	actor := middleware.Actor(c)
	p, err := h.products.Create(in, actor.UID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.products.Update(c.Param("id"), raw)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
