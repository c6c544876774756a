package handler

import (
	"frent-client/internal/middleware"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for account administration.
type UserHandler struct {
	service service.UserAdminServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserAdminServicer) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers godoc
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, users)
}

// DeleteUser godoc
// @Summary      Delete user
// @Tags         admin
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}

// SuspendUser blocks an account.
func (h *UserHandler) SuspendUser(c *gin.Context) {
	user, err := h.service.Suspend(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, user)
}

// UnsuspendUser lifts a suspension.
func (h *UserHandler) UnsuspendUser(c *gin.Context) {
	user, err := h.service.Unsuspend(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, user)
}
