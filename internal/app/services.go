package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/wellnest-hq/wellnest_backend/config"
	"github.com/wellnest-hq/wellnest_backend/internal/events"
	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	"github.com/wellnest-hq/wellnest_backend/internal/service/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/service/auth"
	"github.com/wellnest-hq/wellnest_backend/internal/service/availability"
	"github.com/wellnest-hq/wellnest_backend/internal/service/booking"
	"github.com/wellnest-hq/wellnest_backend/internal/service/therapist"
	"github.com/wellnest-hq/wellnest_backend/internal/service/user"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
	s3pkg "github.com/wellnest-hq/wellnest_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideTherapistService,
		ProvideAvailabilityService,
		ProvideBookingService,
		ProvideAppointmentService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(db *repo.Client, rdb *redis.Client, paseto *pasetotoken.Manager) auth.Service {
	return auth.New(db, rdb, paseto)
}

func ProvideUserService(db *repo.Client, s3 *s3pkg.Client) user.Service {
	return user.New(db, s3)
}

func ProvideTherapistService(db *repo.Client) therapist.Service {
	return therapist.New(db)
}

func ProvideAvailabilityService(db *repo.Client) availability.Service {
	return availability.New(db)
}

func ProvideBookingService(db *repo.Client, avail availability.Service, pub *events.Publisher) booking.Service {
	return booking.New(db, avail, pub)
}

func ProvideAppointmentService(db *repo.Client, pub *events.Publisher) appointment.Service {
	return appointment.New(db, pub)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
