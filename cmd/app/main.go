package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lemmequit/cmd/fx/account_fx"
	"lemmequit/cmd/fx/advice_fx"
	"lemmequit/cmd/fx/calendar_fx"
	"lemmequit/cmd/fx/db_fx"
	"lemmequit/cmd/fx/mail_fx"
	"lemmequit/cmd/fx/memcache_fx"
	"lemmequit/cmd/fx/records_fx"
	"lemmequit/cmd/fx/relationship_fx"
	"lemmequit/internal/api/controllers"
	"lemmequit/internal/infra"
	"lemmequit/internal/models/db_models"
	"lemmequit/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		fx.Provide(provideLogger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		relationship_fx.Module,
		records_fx.Module,
		advice_fx.Module,
		calendar_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	relationshipController *controllers.RelationshipController,
	notesController *controllers.NotesController,
	appointmentsController *controllers.AppointmentsController,
	adviceController *controllers.AdviceController,
	calendarController *controllers.CalendarController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		relationshipController,
		notesController,
		appointmentsController,
		adviceController,
		calendarController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	relationshipController *controllers.RelationshipController,
	notesController *controllers.NotesController,
	appointmentsController *controllers.AppointmentsController,
	adviceController *controllers.AdviceController,
	calendarController *controllers.CalendarController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	accounts.PATCH("/me", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	patients := r.Group("/patients",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleTherapist))
	patients.GET("", relationshipController.ListPatients)
	patients.POST("", relationshipController.AddPatientByEmail)
	patients.POST("/assign", relationshipController.Assign)
	patients.POST("/invite", relationshipController.Invite)
	patients.DELETE("/:id", relationshipController.RemovePatient)
	patients.GET("/active", relationshipController.GetActivePatient)
	patients.PUT("/active", relationshipController.SetActivePatient)

	links := r.Group("/links", middleware.JWTAuthMiddleware())
	links.POST("/accept", middleware.RoleMiddleware(db_models.RolePatient), relationshipController.AcceptInvitation)

	notes := r.Group("/notes", middleware.JWTAuthMiddleware())
	notes.POST("", notesController.SaveNote)
	notes.GET("", notesController.ListNotes)
	notes.DELETE("/:id", notesController.DeleteNote)
	notes.POST("/episode", middleware.RoleMiddleware(db_models.RolePatient), notesController.LogEpisode)
	notes.GET("/episodes", notesController.ListEpisodes)
	notes.POST("/voice", middleware.RoleMiddleware(db_models.RoleTherapist), notesController.SaveVoiceNote)
	notes.GET("/patient/:id", middleware.RoleMiddleware(db_models.RoleTherapist), notesController.ListPatientNotes)

	appointments := r.Group("/appointments", middleware.JWTAuthMiddleware())
	appointments.POST("", appointmentsController.SaveAppointment)
	appointments.GET("", appointmentsController.ListAppointments)
	appointments.GET("/day", appointmentsController.ListAppointmentsForDay)
	appointments.DELETE("/:id", appointmentsController.DeleteAppointment)
	appointments.POST("/book", middleware.RoleMiddleware(db_models.RoleTherapist), appointmentsController.BookSession)
	appointments.POST("/reconcile", appointmentsController.Reconcile)

	advice := r.Group("/advice", middleware.JWTAuthMiddleware())
	advice.POST("", middleware.RoleMiddleware(db_models.RolePatient), adviceController.Ask)
	advice.POST("/consult", middleware.RoleMiddleware(db_models.RoleTherapist), adviceController.Consult)
	advice.GET("/history", adviceController.History)

	calendar := r.Group("/calendar", middleware.JWTAuthMiddleware())
	calendar.GET("", calendarController.Agenda)
	calendar.GET("/notes/search", calendarController.SearchNotes)
	calendar.GET("/patients/notes", middleware.RoleMiddleware(db_models.RoleTherapist), calendarController.PatientNotes)
}
