package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/audit"
	"github.com/fadebook/fadebook-api/internal/handlers"
	infraRepo "github.com/fadebook/fadebook-api/internal/infra/repository"
	"github.com/fadebook/fadebook-api/internal/metrics"
	"github.com/fadebook/fadebook-api/internal/middleware"
	ucAccount "github.com/fadebook/fadebook-api/internal/usecase/account"
	ucAppointment "github.com/fadebook/fadebook-api/internal/usecase/appointment"
	ucBarber "github.com/fadebook/fadebook-api/internal/usecase/barber"
	ucBookingflow "github.com/fadebook/fadebook-api/internal/usecase/bookingflow"
	ucCatalog "github.com/fadebook/fadebook-api/internal/usecase/catalog"
)

// RegisterRoutes wires repositories, usecases and handlers onto the
// engine. Middleware order matters: the error envelope must run before
// any handler so it can translate errors pushed with c.Error.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zerolog.Logger) {

	// ------------------------------
	// Middleware
	// ------------------------------
	// Metrics sit outside the envelope so the counter samples the final
	// status, not the body-less state before the envelope is written.
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware())
	r.Use(middleware.ErrorEnvelope(log))

	// ------------------------------
	// Infra
	// ------------------------------
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	barberRepo := infraRepo.NewBarberGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	barberServiceRepo := infraRepo.NewBarberServiceGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ------------------------------
	// Usecases
	// ------------------------------
	appointmentSvc := ucAppointment.NewService(db, appointmentRepo, customerRepo, auditDispatcher)
	barberSvc := ucBarber.NewService(db, barberRepo, barberServiceRepo, auditDispatcher)
	catalogSvc := ucCatalog.NewService(db, serviceRepo, auditDispatcher)
	accountSvc := ucAccount.NewService(db, customerRepo)
	flowSvc := ucBookingflow.NewService(serviceRepo, barberServiceRepo, appointmentSvc)

	// ------------------------------
	// Handlers
	// ------------------------------
	appointmentHandler := handlers.NewAppointmentHandler(appointmentSvc)
	barberHandler := handlers.NewBarberHandler(barberSvc)
	serviceHandler := handlers.NewServiceHandler(catalogSvc)
	accountHandler := handlers.NewCustomerAccountHandler(accountSvc)
	customerHandler := handlers.NewCustomerHandler(flowSvc, accountSvc)
	themeHandler := handlers.NewThemeHandler()

	// ------------------------------
	// Routes
	// ------------------------------
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Absolute customer fetch, so the Location header issued on signup
	// resolves without the /api prefix.
	r.GET("/customer/:id", customerHandler.GetByID)

	api := r.Group("/api")
	{
		appointment := api.Group("/appointment")
		{
			appointment.POST("", appointmentHandler.Create)
			appointment.GET("", appointmentHandler.GetAll)
			appointment.GET("/by-date", appointmentHandler.GetByDate)
			appointment.GET("/by-username/:username", appointmentHandler.GetByUsername)
			appointment.GET("/by-customer/:id", appointmentHandler.GetByCustomerID)
			appointment.GET("/by-barber/:id", appointmentHandler.GetByBarberID)
			appointment.GET("/by-service/:id", appointmentHandler.GetByServiceID)
			appointment.GET("/:id", appointmentHandler.GetByID)
			appointment.PUT("/:id", appointmentHandler.Update)
			appointment.DELETE("/:id", appointmentHandler.Delete)
		}

		barber := api.Group("/barber")
		{
			barber.GET("", barberHandler.GetAll)
			barber.POST("", barberHandler.Create)
			barber.GET("/:id", barberHandler.GetByID)
			barber.PUT("/:id", barberHandler.Update)
			barber.DELETE("/:id", barberHandler.Delete)
			barber.GET("/:id/services", barberHandler.GetServices)
			barber.PUT("/:id/services", barberHandler.UpdateServices)
		}

		service := api.Group("/service")
		{
			service.GET("", serviceHandler.GetAll)
			service.POST("", serviceHandler.Create)
			service.GET("/:id", serviceHandler.GetByID)
			service.DELETE("/:id", serviceHandler.Delete)
		}

		account := api.Group("/customeraccount")
		{
			account.POST("/signup", accountHandler.SignUp)
			account.POST("/login", accountHandler.Login)
			account.GET("/username-exists/:username", accountHandler.UsernameExists)
		}

		customer := api.Group("/customer")
		{
			customer.GET("/customers", customerHandler.GetAllCustomers)
			customer.GET("/services", customerHandler.GetServices)
			customer.GET("/barbers-by-service/:id", customerHandler.GetBarbersByService)
			customer.POST("/request-appointment", customerHandler.RequestAppointment)
			customer.GET("/:id/appointments", customerHandler.GetAppointments)
			customer.PUT("/:id", customerHandler.Update)
		}

		api.GET("/theme", themeHandler.Get)
		api.POST("/theme", themeHandler.Set)
	}
}
