package dashboard

import (
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

// @Summary      Manager dashboard
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.ManagerStats
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/stats [get]
func (h *Handler) ManagerStats(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	stats, err := h.service.ManagerStats(c.Request.Context(), email)
	if err != nil {
		logger.Error("manager stats failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch manager stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Member dashboard
// @Description  Counts plus the next five events in the member's clubs.
// @Tags         member
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.MemberOverview
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /member/stats-and-upcoming-events [get]
func (h *Handler) MemberOverview(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	overview, err := h.service.MemberOverview(c.Request.Context(), email)
	if err != nil {
		logger.Error("member overview failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch member stats.")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.AdminStats
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/stats [get]
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		logger.Error("admin stats failed", "error", err)
		api.Internal(c, "Failed to fetch admin stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
