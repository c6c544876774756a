// Package handler contains HTTP handlers for the API.
package handler

import (
	"frent-client/internal/models"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account on the rental service
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "Account details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, user)
}

// Login godoc
// @Summary      User login
// @Description  Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Login credentials"
// @Success      200      {object}  response.Response{data=models.SessionResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sess, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, models.SessionResponse{
		Token:     sess.Token(),
		Username:  sess.Username(),
		Role:      sess.Role(),
		ExpiresAt: sess.ExpiresAt(),
	})
}
