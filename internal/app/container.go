package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/greenwheel/ev-rental-backend/internal/api"
	"github.com/greenwheel/ev-rental-backend/internal/auth"
	"github.com/greenwheel/ev-rental-backend/internal/booking"
	"github.com/greenwheel/ev-rental-backend/internal/cache"
	"github.com/greenwheel/ev-rental-backend/internal/car"
	"github.com/greenwheel/ev-rental-backend/internal/gallery"
	"github.com/greenwheel/ev-rental-backend/internal/location"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/storage"
	"github.com/greenwheel/ev-rental-backend/internal/staff"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zerolog.Logger

	// DBPool selects the storage mode: nil runs the in-memory demo dataset,
	// non-nil runs against postgres.
	DBPool *pgxpool.Pool

	// Cache is optional; nil disables catalog caching.
	Cache *cache.Cache

	StoragePath string
	JWTSecret   string
	JWTTTL      time.Duration
	BcryptCost  int
	DemoLatency time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Car module
	var carRepo car.Repository
	if cfg.DBPool != nil {
		carRepo = car.NewPgxRepository(cfg.DBPool)
	} else {
		carRepo = car.NewDemoRepository()
	}
	carService := car.NewService(carRepo, cfg.Cache)

	// Booking module
	var bookingRepo booking.Repository
	if cfg.DBPool != nil {
		bookingRepo = booking.NewPgxRepository(cfg.DBPool)
	} else {
		bookingRepo = booking.NewDemoRepository()
	}
	bookingService := booking.NewService(bookingRepo, cfg.DemoLatency)

	// Location module: showroom reference data, always in-memory.
	locService := location.NewService(location.NewDemoRepository())

	// Staff module: the demo credential table backs the admin screens.
	staffRepo, err := staff.NewDemoRepository(passwordHasher)
	if err != nil {
		return nil, fmt.Errorf("init staff repository: %w", err)
	}
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Gallery module
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init photo storage: %w", err)
	}
	galleryService := gallery.NewService(gallery.NewMemoryRepository(), store)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		CarService:      carService,
		BookingService:  bookingService,
		LocationService: locService,
		StaffService:    staffService,
		GalleryService:  galleryService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
