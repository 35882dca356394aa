package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/wellnest-hq/wellnest_backend/config"
	"github.com/wellnest-hq/wellnest_backend/internal/api/http/handler"
	"github.com/wellnest-hq/wellnest_backend/internal/api/http/middleware"
	"github.com/wellnest-hq/wellnest_backend/internal/service/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/service/auth"
	"github.com/wellnest-hq/wellnest_backend/internal/service/availability"
	"github.com/wellnest-hq/wellnest_backend/internal/service/booking"
	"github.com/wellnest-hq/wellnest_backend/internal/service/therapist"
	"github.com/wellnest-hq/wellnest_backend/internal/service/user"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	AuthSvc         auth.Service
	UserSvc         user.Service
	TherapistSvc    therapist.Service
	AvailabilitySvc availability.Service
	BookingSvc      booking.Service
	AppointmentSvc  appointment.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	userOnly := middleware.RequireRole(pasetotoken.RoleUser)
	therapistOnly := middleware.RequireRole(pasetotoken.RoleTherapist)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	therapistH := handler.NewTherapistHandler(r.p.TherapistSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.BookingSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, userOnly)
	r.registerTherapistRoutes(api, therapistH, availabilityH, authRequired, therapistOnly)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, userOnly, therapistOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			return r.p.Redis.Ping(ctx).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
