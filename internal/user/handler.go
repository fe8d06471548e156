package user

import (
	"errors"
	"net/http"

	"clubsphere/internal/api"
	"clubsphere/internal/auth"
	"clubsphere/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Register user
// @Description  Records a signed-up user with the member role. Idempotent per email.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body user.RegisterRequest true "User profile"
// @Success      200 {object} user.RegisterResponse
// @Success      201 {object} user.RegisterResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Invalid registration data.", err)
		return
	}

	role, created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("user registration failed", "error", err, "email", req.Email)
		api.Internal(c, "Failed to register user in DB")
		return
	}

	if !created {
		c.JSON(http.StatusOK, RegisterResponse{Message: "User already exists in DB", Role: role})
		return
	}
	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered in DB successfully", Role: role})
}

// @Summary      Current user role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.RoleResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/role [get]
func (h *Handler) GetRole(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	role, err := h.service.GetRole(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			api.NotFound(c, "User not found in database.")
			return
		}
		logger.Error("role fetch failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch user role")
		return
	}

	c.JSON(http.StatusOK, RoleResponse{Role: role})
}

// @Summary      List users
// @Tags         admin,users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} user.User
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users [get]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("list users failed", "error", err)
		api.Internal(c, "Failed to fetch users from database.")
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary      Change user role
// @Tags         admin,users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Param        request body user.UpdateRoleRequest true "New role"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/role/{email} [patch]
func (h *Handler) UpdateRole(c *gin.Context) {
	email := c.Param("email")
	actor, _ := auth.GetEmail(c)

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid role specified.")
		return
	}

	err := h.service.UpdateRole(c.Request.Context(), actor, email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			api.BadRequest(c, "Invalid role specified.")
		case errors.Is(err, ErrRoleUnchanged):
			api.NotFound(c, "User not found or role already set.")
		default:
			logger.Error("update role failed", "error", err, "email", email)
			api.Internal(c, "Failed to update user role in database.")
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: email + " role updated to " + req.Role + " successfully."})
}

// @Summary      Delete user
// @Description  Deletes the identity-provider account and the user record.
// @Tags         admin,users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "User email"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{email} [delete]
func (h *Handler) Delete(c *gin.Context) {
	email := c.Param("email")
	actor, _ := auth.GetEmail(c)

	identityDeleted, err := h.service.Delete(c.Request.Context(), actor, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			api.NotFound(c, "User not found in database.")
			return
		}
		logger.Error("delete user failed", "error", err, "email", email)
		api.Internal(c, "Failed to delete user.")
		return
	}

	msg := email + " deleted successfully from identity provider and DB."
	if !identityDeleted {
		msg = email + " deleted from DB (was missing in identity provider)."
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: msg})
}
