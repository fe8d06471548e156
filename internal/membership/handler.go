package membership

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubsphere/internal/api"
	"clubsphere/internal/auth"
	"clubsphere/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Join a free club
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Club ID"
// @Success      201 {object} membership.JoinResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs/join/{id} [post]
func (h *Handler) JoinFree(c *gin.Context) {
	clubID, ok := api.ParamID(c, "id", "club")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	m, err := h.service.JoinFree(c.Request.Context(), email, clubID)
	if err != nil {
		switch {
		case errors.Is(err, ErrClubNotFound):
			api.NotFound(c, "Club not found or not approved.")
		case errors.Is(err, ErrPaidClub):
			api.BadRequest(c, "This club requires a membership fee. Please use the payment option.")
		case errors.Is(err, ErrAlreadyMember):
			api.BadRequest(c, "You are already a member of this club.")
		default:
			logger.Error("free join failed", "error", err, "email", email, "club_id", clubID)
			api.Internal(c, "Failed to join club.")
		}
		return
	}

	c.JSON(http.StatusCreated, JoinResponse{Message: "Successfully joined the club!", Membership: m})
}

// @Summary      Expire a membership
// @Tags         manager,memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/memberships/{id} [patch]
func (h *Handler) Expire(c *gin.Context) {
	id, ok := api.ParamID(c, "id", "membership")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	changed, err := h.service.Expire(c.Request.Context(), email, id)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			api.NotFound(c, "Membership not found.")
			return
		}
		logger.Error("membership expire failed", "error", err, "membership_id", id)
		api.Internal(c, "Failed to update membership.")
		return
	}

	if !changed {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership is already expired."})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership expired successfully."})
}

// @Summary      Members of a managed club
// @Tags         manager,memberships
// @Produce      json
// @Security     BearerAuth
// @Param        clubId path string true "Club ID"
// @Success      200 {array} membership.ClubMember
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/clubs/{clubId}/members [get]
func (h *Handler) ListClubMembers(c *gin.Context) {
	clubID, ok := api.ParamID(c, "clubId", "club")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	members, err := h.service.ListClubMembers(c.Request.Context(), clubID, email)
	if err != nil {
		if errors.Is(err, ErrClubNotFound) {
			api.NotFound(c, "Club not found or you are not its manager.")
			return
		}
		logger.Error("club member list failed", "error", err, "club_id", clubID)
		api.Internal(c, "Failed to fetch club members.")
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Summary      My club memberships
// @Tags         member,memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} membership.MemberClub
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /member/clubs [get]
func (h *Handler) ListForMember(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	clubs, err := h.service.ListForMember(c.Request.Context(), email)
	if err != nil {
		logger.Error("member club list failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch your clubs.")
		return
	}
	c.JSON(http.StatusOK, clubs)
}
