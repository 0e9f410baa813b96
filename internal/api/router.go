package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greenwheel/ev-rental-backend/internal/auth"
	"github.com/greenwheel/ev-rental-backend/internal/booking"
	bookingHttp "github.com/greenwheel/ev-rental-backend/internal/booking/http"
	"github.com/greenwheel/ev-rental-backend/internal/car"
	carHttp "github.com/greenwheel/ev-rental-backend/internal/car/http"
	"github.com/greenwheel/ev-rental-backend/internal/gallery"
	galleryHttp "github.com/greenwheel/ev-rental-backend/internal/gallery/http"
	"github.com/greenwheel/ev-rental-backend/internal/location"
	locHttp "github.com/greenwheel/ev-rental-backend/internal/location/http"
	"github.com/greenwheel/ev-rental-backend/internal/staff"
	staffHttp "github.com/greenwheel/ev-rental-backend/internal/staff/http"
)

// Config holds everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated list of allowed origins in prod
	Logger       *zerolog.Logger

	CarService      car.Service
	BookingService  booking.Service
	LocationService location.Service
	StaffService    staff.Service
	GalleryService  gallery.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (logging, CORS,
// recovery) plus the route registration of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// CORS: the marketing frontend runs on its own origin.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	staffMiddleware := auth.StaffRequired(cfg.JWTManager)
	adminOnly := RequireAdmin()

	carHandler := carHttp.NewHandler(cfg.CarService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	locHandler := locHttp.NewHandler(cfg.LocationService)
	staffHandler := staffHttp.NewHandler(cfg.StaffService, cfg.JWTManager)
	galleryHandler := galleryHttp.NewHandler(cfg.GalleryService, cfg.CarService)

	v1 := r.Group("/v1")
	{
		carHttp.RegisterRoutes(v1, carHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		locHttp.RegisterRoutes(v1, locHandler)
		staffHttp.RegisterRoutes(v1, staffHandler)
		galleryHttp.RegisterRoutes(v1, galleryHandler)

		admin := v1.Group("/admin")
		{
			bookingHttp.RegisterAdminRoutes(admin, bookingHandler, staffMiddleware)
			galleryHttp.RegisterAdminRoutes(admin, galleryHandler, staffMiddleware, adminOnly)
		}
	}

	return r
}
