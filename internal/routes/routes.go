package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/config"
	domainAvailability "github.com/BruksfildServices01/booktable/internal/domain/availability"
	domainBooking "github.com/BruksfildServices01/booktable/internal/domain/booking"
	domainRestaurant "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/handlers"
	"github.com/BruksfildServices01/booktable/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/booktable/internal/infra/repository"
	"github.com/BruksfildServices01/booktable/internal/metrics"
	"github.com/BruksfildServices01/booktable/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/booktable/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/booktable/internal/usecase/booking"
	ucRestaurant "github.com/BruksfildServices01/booktable/internal/usecase/restaurant"
	ucReview "github.com/BruksfildServices01/booktable/internal/usecase/review"
)

// Deps are the process-wide collaborators built by the entry point.
// Redis, Photos and Registry are optional.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier domainBooking.Notifier
	Photos   domainRestaurant.PhotoStore
	Audit    *audit.Dispatcher
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	restaurantRepo := infraRepo.NewRestaurantGormRepository(d.DB)
	configRepo := infraRepo.NewRestaurantConfigGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)

	var (
		hours       domainAvailability.HoursStore = configRepo
		slots       domainAvailability.SlotStore  = configRepo
		tables      domainAvailability.TableStore = configRepo
		invalidator domainAvailability.Invalidator
	)
	if d.Redis != nil {
		cc := cache.NewConfigCache(d.Redis, cfg.ConfigCacheTTL, d.Log, configRepo, configRepo, configRepo)
		hours, slots, tables, invalidator = cc, cc, cc, cc
	}

	var m *metrics.Metrics
	if d.Registry != nil {
		m = metrics.New(d.Registry)
	}

	// ======================================================
	// USE CASES: AVAILABILITY
	// ======================================================
	engine := ucAvailability.NewEngine(
		restaurantRepo,
		hours,
		slots,
		tables,
		bookingRepo,
		cfg.SlotToleranceMinutes,
		m,
	)

	searchUC := ucAvailability.NewSearchRestaurants(
		restaurantRepo,
		engine,
		bookingRepo,
		reviewRepo,
		d.Log,
	)

	nearbyUC := ucAvailability.NewNearbyNow(
		restaurantRepo,
		engine,
		reviewRepo,
		d.Log,
	)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		restaurantRepo,
		slots,
		d.Notifier,
		d.Audit,
		m,
		cfg.CapacityGuard,
		d.Log,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		d.Notifier,
		d.Audit,
		m,
		d.Log,
	)

	checkConflictUC := ucBooking.NewCheckConflict(bookingRepo)
	listBookingsUC := ucBooking.NewListCustomerBookings(bookingRepo)
	analyticsUC := ucBooking.NewReservationAnalytics(bookingRepo)

	// ======================================================
	// USE CASES: RESTAURANTS
	// ======================================================
	createRestaurantUC := ucRestaurant.NewCreateRestaurant(restaurantRepo, d.Audit)
	updateRestaurantUC := ucRestaurant.NewUpdateRestaurant(restaurantRepo, d.Audit)
	approveRestaurantUC := ucRestaurant.NewApproveRestaurant(restaurantRepo, d.Audit)
	removeRestaurantUC := ucRestaurant.NewRemoveRestaurant(restaurantRepo, invalidator, d.Audit, d.Log)
	listRestaurantsUC := ucRestaurant.NewListRestaurants(restaurantRepo)

	replaceConfigUC := ucRestaurant.NewReplaceConfiguration(
		restaurantRepo,
		configRepo,
		invalidator,
		d.Audit,
		d.Log,
	)

	detailsUC := ucRestaurant.NewFetchDetails(
		restaurantRepo,
		hours,
		slots,
		tables,
		bookingRepo,
		d.Photos,
		reviewRepo,
		d.Log,
	)

	photosUC := ucRestaurant.NewPhotos(
		restaurantRepo,
		d.Photos,
		d.Audit,
		d.Log,
	)

	// ======================================================
	// USE CASES: REVIEWS
	// ======================================================
	addReviewUC := ucReview.NewAddReview(reviewRepo, restaurantRepo, d.Audit)
	listReviewsUC := ucReview.NewListReviews(reviewRepo, restaurantRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(engine, searchUC, nearbyUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		checkConflictUC,
		listBookingsUC,
	)
	restaurantHandler := handlers.NewRestaurantHandler(
		createRestaurantUC,
		updateRestaurantUC,
		approveRestaurantUC,
		removeRestaurantUC,
		listRestaurantsUC,
		replaceConfigUC,
		detailsUC,
	)
	reviewHandler := handlers.NewReviewHandler(addReviewUC, listReviewsUC)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	photoHandler := handlers.NewPhotoHandler(photosUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), restaurantRepo)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Registry != nil && cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/")
		public.Use(middleware.RateLimit(
			middleware.NewIPRateLimiter(cfg.PublicRateLimitRPS, cfg.PublicRateLimitBurst),
		))
		{
			public.GET("/search", availabilityHandler.Search)
			public.GET("/nearby", availabilityHandler.Nearby)
			public.GET("/restaurants/:id", restaurantHandler.Details)
			public.GET("/restaurants/:id/availability", availabilityHandler.Slots)
			public.GET("/restaurants/:id/open", availabilityHandler.IsOpen)
			public.GET("/restaurants/:id/reviews", reviewHandler.List)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.GET("/me/bookings/conflict", bookingHandler.Conflict)
			secured.POST("/restaurants/:id/reviews", reviewHandler.Add)

			manager := secured.Group("/")
			manager.Use(middleware.RequireRole(middleware.RoleManager, middleware.RoleAdmin))
			{
				manager.GET("/manager/restaurants", restaurantHandler.ListMine)
				manager.POST("/restaurants", restaurantHandler.Create)
				manager.PUT("/restaurants/:id", restaurantHandler.Update)
				manager.PUT("/restaurants/:id/configuration", restaurantHandler.ReplaceConfiguration)
				manager.POST("/restaurants/:id/photos", photoHandler.Upload)
				manager.POST("/restaurants/:id/photos/presign", photoHandler.Presign)
				manager.POST("/restaurants/:id/photos/attach", photoHandler.Attach)
				manager.GET("/restaurants/:id/audit-logs", auditLogsHandler.List)
			}

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/restaurants/pending", restaurantHandler.ListPending)
				admin.PATCH("/restaurants/:id/approval", restaurantHandler.Approve)
				admin.DELETE("/restaurants/:id", restaurantHandler.Remove)
				admin.GET("/analytics/reservations", analyticsHandler.Reservations)
			}
		}
	}
}
