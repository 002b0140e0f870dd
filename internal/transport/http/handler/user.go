package handler

import (
	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
