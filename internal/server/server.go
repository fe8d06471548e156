package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubsphere/internal/auth"
	"clubsphere/internal/club"
	"clubsphere/internal/config"
	"clubsphere/internal/dashboard"
	"clubsphere/internal/event"
	"clubsphere/internal/membership"
	"clubsphere/internal/payment"
	"clubsphere/internal/user"
)

// Handlers groups the HTTP handlers of every domain package.
type Handlers struct {
	User       *user.Handler
	Club       *club.Handler
	Membership *membership.Handler
	Event      *event.Handler
	Payment    *payment.Handler
	Dashboard  *dashboard.Handler
}

// Deps are the collaborators the router needs besides the handlers.
type Deps struct {
	Config   *config.Config
	Verifier auth.Verifier
	Roles    auth.RoleLookup
	DB       Pinger
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router. ctx bounds background work started by middleware.
func New(ctx context.Context, deps Deps, h Handlers) *Server {
	RegisterValidation()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware(deps.Config.CORSOrigins))

	router.GET("/", Root)
	router.GET("/health", Health(deps.DB))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	limited := router.Group("/")
	limited.Use(RateLimitMiddleware(ctx, deps.Config.RateLimitRPS, deps.Config.RateLimitBurst))
	registerRoutes(limited, deps, h)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + deps.Config.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func registerRoutes(r *gin.RouterGroup, deps Deps, h Handlers) {
	authn := auth.AuthMiddleware(deps.Verifier)
	admin := auth.RequireAdmin(deps.Roles)
	manager := auth.RequireManager(deps.Roles)
	member := auth.RequireMember(deps.Roles)

	// Public.
	r.POST("/users/register", h.User.Register)
	r.GET("/clubs", h.Club.ListApproved)
	r.GET("/clubs/categories", h.Club.ListCategories)
	r.GET("/clubs/:id", h.Club.GetApproved)
	r.GET("/events", h.Event.List)
	r.GET("/events/:id", h.Event.Get)
	r.GET("/payment/success", h.Payment.Success)
	r.GET("/event-payment/success", h.Payment.Success)

	r.GET("/users/role", authn, h.User.GetRole)

	adminUsers := r.Group("/users", authn, admin)
	{
		adminUsers.GET("", h.User.List)
		adminUsers.PATCH("/role/:email", h.User.UpdateRole)
		adminUsers.DELETE("/:email", h.User.Delete)
	}

	adminGroup := r.Group("/admin", authn, admin)
	{
		adminGroup.GET("/clubs", h.Club.ListForAdmin)
		adminGroup.PATCH("/clubs/status/:clubId", h.Club.SetStatus)
		adminGroup.DELETE("/clubs/:clubId", h.Club.DeleteAsAdmin)
		adminGroup.GET("/stats", h.Dashboard.AdminStats)
	}

	r.POST("/clubs", authn, manager, h.Club.Create)
	r.PATCH("/clubs/:id", authn, manager, h.Club.Update)
	r.DELETE("/clubs/:id", authn, manager, h.Club.DeleteAsManager)

	managerGroup := r.Group("/manager", authn, manager)
	{
		managerGroup.GET("/clubs", h.Club.ListForManager)
		managerGroup.GET("/stats", h.Dashboard.ManagerStats)
		managerGroup.GET("/clubs/:clubId/members", h.Membership.ListClubMembers)
		managerGroup.PATCH("/memberships/:id", h.Membership.Expire)
		managerGroup.POST("/events", h.Event.Create)
		managerGroup.GET("/events", h.Event.ListForManager)
		managerGroup.PATCH("/events/:eventId", h.Event.Update)
		managerGroup.DELETE("/events/:eventId", h.Event.Delete)
		managerGroup.GET("/events/:eventId/registrations", h.Event.ListRegistrations)
	}

	r.POST("/clubs/join/:id", authn, member, h.Membership.JoinFree)
	r.POST("/payment/create-checkout-session", authn, member, h.Payment.CreateMembershipCheckout)
	r.POST("/event-payment/create-checkout-session", authn, member, h.Payment.CreateEventCheckout)
	r.POST("/events/register/:eventId", authn, member, h.Event.RegisterFree)

	memberGroup := r.Group("/member", authn, member)
	{
		memberGroup.GET("/clubs", h.Membership.ListForMember)
		memberGroup.GET("/events", h.Event.ListForMember)
		memberGroup.GET("/payments", h.Payment.ListForMember)
		memberGroup.GET("/stats-and-upcoming-events", h.Dashboard.MemberOverview)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
