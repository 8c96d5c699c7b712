package components

import (
	"fmt"

	"cleanpro-api/internal/infra/db"
	"cleanpro-api/internal/infra/memory"
	"cleanpro-api/internal/infra/postgres"
	"cleanpro-api/internal/pkg/config"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles every persistence port. One provider builds them all so the
// backend choice is made exactly once.
type Stores struct {
	fx.Out

	BookingRepo      commands.BookingRepository
	AvailabilityRepo commands.AvailabilityRepository
	NotificationRepo commands.NotificationRepository
	SliderRepo       commands.SliderRepository

	BookingRead      queries.BookingReadStore
	AvailabilityRead queries.AvailabilityReadStore
	NotificationRead queries.NotificationReadStore
	SliderRead       queries.SliderReadStore
}

// NewStores selects the persistence backend. The Postgres pool is only opened
// in postgres mode, so memory mode runs without a database.
func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return newMemoryStores(), nil
	case "postgres":
		return newPostgresStores(lc, cfg)
	default:
		return Stores{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newMemoryStores() Stores {
	bookings := memory.NewBookingStore()
	availability := memory.NewAvailabilityStore()
	notifications := memory.NewNotificationStore()
	sliders := memory.NewSliderStore()

	return Stores{
		BookingRepo:      bookings,
		AvailabilityRepo: availability,
		NotificationRepo: notifications,
		SliderRepo:       sliders,
		BookingRead:      bookings,
		AvailabilityRead: availability,
		NotificationRead: notifications,
		SliderRead:       sliders,
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Stores{}, err
	}

	lc.Append(fx.StopHook(func() {
		cleanup()
	}))

	availability := postgres.NewAvailabilityRepository(pool)

	return Stores{
		BookingRepo:      postgres.NewBookingRepository(pool),
		AvailabilityRepo: availability,
		NotificationRepo: postgres.NewNotificationRepository(pool),
		SliderRepo:       postgres.NewSliderRepository(pool),
		BookingRead:      postgres.NewBookingReadStore(pool),
		AvailabilityRead: availability,
		NotificationRead: postgres.NewNotificationReadStore(pool),
		SliderRead:       postgres.NewSliderReadStore(pool),
	}, nil
}
