package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	"github.com/BruksfildServices01/provider-scheduler/internal/config"
	"github.com/BruksfildServices01/provider-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/provider-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/provider-scheduler/internal/mailer"
	"github.com/BruksfildServices01/provider-scheduler/internal/media"
	"github.com/BruksfildServices01/provider-scheduler/internal/middleware"
	"github.com/BruksfildServices01/provider-scheduler/internal/notify"
	ucAppointment "github.com/BruksfildServices01/provider-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cch *cache.Cache,
	m *mailer.Mailer,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.New(db, m)
	avatars := media.NewAvatarStore(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	approveUC := ucAppointment.NewApproveAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	rejectUC := ucAppointment.NewRejectAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	createPublicUC := ucAppointment.NewCreatePublicAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	scheduleUC := ucAppointment.NewGetDaySchedule(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, cch, m, auditDispatcher)
	meHandler := handlers.NewMeHandler(db, appointmentRepo, cch, avatars, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(appointmentRepo, cch, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(appointmentRepo, scheduleUC)
	blockedDatesHandler := handlers.NewBlockedDatesHandler(db, cch, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		cch,
		approveUC,
		rejectUC,
		cancelUC,
		completeUC,
		rescheduleUC,
	)

	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, scheduleUC, createPublicUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/schedule", publicHandler.GetSchedule)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)
			secured.GET("/me/dashboard", meHandler.Dashboard)

			// ------------------------------
			// DISPONIBILIDADE
			// ------------------------------
			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/slots", scheduleHandler.GetSlots)
			secured.GET("/me/schedule", scheduleHandler.GetSchedule)
			secured.GET("/me/schedule/week", scheduleHandler.GetWeekSchedule)

			secured.GET("/me/unavailable-dates", blockedDatesHandler.Get)
			secured.PUT("/me/unavailable-dates", blockedDatesHandler.Update)
			secured.DELETE("/me/unavailable-dates", blockedDatesHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PUT("/me/appointments/:id/approve", appointmentHandler.Approve)
			secured.PUT("/me/appointments/:id/reject", appointmentHandler.Reject)
			secured.PUT("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PUT("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// NOTIFICAÇÕES
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.PUT("/me/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PUT("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/me/notifications/:id", notificationHandler.Delete)
			secured.DELETE("/me/notifications", notificationHandler.DeleteAll)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
