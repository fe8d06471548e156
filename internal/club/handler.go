package club

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

// @Summary      Register club
// @Description  Submits a new club for admin approval. The caller becomes its manager and first member.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body club.CreateClubRequest true "Club details"
// @Success      201 {object} club.CreateClubResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs [post]
func (h *Handler) Create(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Please provide all required club information (Name, Description, Category, Location, Fee).")
		return
	}
	if *req.MembershipFee < 0 {
		api.BadRequest(c, "Membership Fee must be a non-negative number.")
		return
	}

	club, err := h.service.Register(c.Request.Context(), email, req)
	if err != nil {
		logger.Error("club creation failed", "error", err, "manager", email)
		api.Internal(c, "Failed to create club.")
		return
	}

	c.JSON(http.StatusCreated, CreateClubResponse{
		Message: "Club creation request submitted successfully! Awaiting Admin approval.",
		ClubID:  club.ID,
		Club:    club,
	})
}

// @Summary      List all clubs
// @Tags         admin,clubs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} club.ClubWithStats
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/clubs [get]
func (h *Handler) ListForAdmin(c *gin.Context) {
	clubs, err := h.service.ListForAdmin(c.Request.Context())
	if err != nil {
		logger.Error("admin club list failed", "error", err)
		api.Internal(c, "Failed to fetch clubs.")
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// @Summary      List managed clubs
// @Tags         manager,clubs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} club.ClubWithStats
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/clubs [get]
func (h *Handler) ListForManager(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	clubs, err := h.service.ListForManager(c.Request.Context(), email)
	if err != nil {
		logger.Error("manager club list failed", "error", err, "manager", email)
		api.Internal(c, "Failed to fetch your clubs.")
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// @Summary      Approve or reject club
// @Tags         admin,clubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clubId path string true "Club ID"
// @Param        request body club.StatusRequest true "approved or rejected"
// @Success      200 {object} club.ClubResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/clubs/status/{clubId} [patch]
func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := api.ParamID(c, "clubId", "club")
	if !ok {
		return
	}
	actor, _ := auth.GetEmail(c)

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid status provided.")
		return
	}

	club, err := h.service.SetStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			api.BadRequest(c, "Invalid status provided.")
		case errors.Is(err, ErrClubNotFound):
			api.NotFound(c, "Club not found.")
		default:
			logger.Error("club status update failed", "error", err, "club_id", id)
			api.Internal(c, "Failed to update club status.")
		}
		return
	}

	c.JSON(http.StatusOK, ClubResponse{Message: "Club status updated to " + req.Status + ".", Club: club})
}

// @Summary      Update own club
// @Tags         manager,clubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Club ID"
// @Param        request body club.UpdateClubRequest true "Fields to change"
// @Success      200 {object} club.ClubResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "id", "club")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Invalid club update data.", err)
		return
	}

	club, err := h.service.Update(c.Request.Context(), id, email, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFields):
			api.BadRequest(c, "No valid fields provided for update.")
		case errors.Is(err, ErrClubNotFound):
			api.NotFound(c, "Club not found or you are not its manager.")
		default:
			logger.Error("club update failed", "error", err, "club_id", id)
			api.Internal(c, "Failed to update club.")
		}
		return
	}

	c.JSON(http.StatusOK, ClubResponse{Message: "Club updated successfully.", Club: club})
}

// @Summary      Delete any club
// @Tags         admin,clubs
// @Produce      json
// @Security     BearerAuth
// @Param        clubId path string true "Club ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/clubs/{clubId} [delete]
func (h *Handler) DeleteAsAdmin(c *gin.Context) {
	id, ok := api.ParamID(c, "clubId", "club")
	if !ok {
		return
	}
	actor, _ := auth.GetEmail(c)

	h.respondDelete(c, id.String(), h.service.DeleteAsAdmin(c.Request.Context(), actor, id), "Club not found.")
}

// @Summary      Delete own club
// @Tags         manager,clubs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Club ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs/{id} [delete]
func (h *Handler) DeleteAsManager(c *gin.Context) {
	id, ok := api.ParamID(c, "id", "club")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	h.respondDelete(c, id.String(), h.service.DeleteAsManager(c.Request.Context(), id, email),
		"Club not found or you are not its manager.")
}

func (h *Handler) respondDelete(c *gin.Context, id string, err error, notFound string) {
	if err != nil {
		if errors.Is(err, ErrClubNotFound) {
			api.NotFound(c, notFound)
			return
		}
		logger.Error("club delete failed", "error", err, "club_id", id)
		api.Internal(c, "Failed to delete club.")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Club deleted successfully."})
}

// @Summary      Browse approved clubs
// @Tags         clubs
// @Produce      json
// @Param        search   query string false "Case-insensitive name filter"
// @Param        category query string false "Exact category"
// @Param        sort     query string false "fee_asc, fee_desc, newest or oldest"
// @Success      200 {array} club.ClubWithStats
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs [get]
func (h *Handler) ListApproved(c *gin.Context) {
	filter := ListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	clubs, err := h.service.ListApproved(c.Request.Context(), filter)
	if err != nil {
		logger.Error("public club list failed", "error", err)
		api.Internal(c, "Failed to fetch clubs.")
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// @Summary      Approved club details
// @Tags         clubs
// @Produce      json
// @Param        id path string true "Club ID"
// @Success      200 {object} club.ClubWithStats
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs/{id} [get]
func (h *Handler) GetApproved(c *gin.Context) {
	id, ok := api.ParamID(c, "id", "club")
	if !ok {
		return
	}

	club, err := h.service.GetApproved(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrClubNotFound) {
			api.NotFound(c, "Club not found.")
			return
		}
		logger.Error("club fetch failed", "error", err, "club_id", id)
		api.Internal(c, "Failed to fetch club.")
		return
	}
	c.JSON(http.StatusOK, club)
}

// @Summary      Club categories
// @Tags         clubs
// @Produce      json
// @Success      200 {array} string
// @Failure      500 {object} api.ErrorResponse
// @Router       /clubs/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("category list failed", "error", err)
		api.Internal(c, "Failed to fetch categories.")
		return
	}
	c.JSON(http.StatusOK, categories)
}
