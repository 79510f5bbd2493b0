package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	"github.com/upb-facilities/cleaning-records/internal/auth"
	"github.com/upb-facilities/cleaning-records/internal/config"
	"github.com/upb-facilities/cleaning-records/internal/handlers"
	infraRepo "github.com/upb-facilities/cleaning-records/internal/infra/repository"
	"github.com/upb-facilities/cleaning-records/internal/middleware"
	"github.com/upb-facilities/cleaning-records/internal/ratelimit"
	"github.com/upb-facilities/cleaning-records/internal/storage"
	ucAccount "github.com/upb-facilities/cleaning-records/internal/usecase/account"
	ucCleaning "github.com/upb-facilities/cleaning-records/internal/usecase/cleaning"
	ucReport "github.com/upb-facilities/cleaning-records/internal/usecase/report"
	"github.com/upb-facilities/cleaning-records/internal/validators"
)

// Deps carries the process-wide singletons the routes are built from.
// Uploader may be nil when export archiving is not configured.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      logrus.FieldLogger
	Limiter  ratelimit.Limiter
	Audit    audit.Sink
	Uploader storage.Uploader

	// EmailDomainCheck defaults to a DNS lookup.
	EmailDomainCheck func(email string) bool

	Location *time.Location
	Now      func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": d.Now().UTC(),
		})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	cleaningRepo := infraRepo.NewCleaningGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)

	checkDomain := d.EmailDomainCheck
	if checkDomain == nil {
		checkDomain = validators.IsEmailDomainValid
	}

	tokens := auth.NewTokenManager(d.Config.JWTSecret, d.Config.JWTTTL)
	auditLogger := audit.New(d.DB)

	// ======================================================
	// USE CASES: ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo, tokens, checkDomain, d.Log)
	loginUC := ucAccount.NewLogin(accountRepo, tokens)
	getUserUC := ucAccount.NewGetUser(accountRepo)
	listUsersUC := ucAccount.NewListUsers(accountRepo)
	setUserActiveUC := ucAccount.NewSetUserActive(accountRepo, d.Audit, d.Log)

	// ======================================================
	// USE CASES: CLEANING RECORDS
	// ======================================================
	catalogUC := ucCleaning.NewCatalog(cleaningRepo)
	createRecordUC := ucCleaning.NewCreateRecord(cleaningRepo, d.Audit, d.Log, d.Now)
	updateRecordUC := ucCleaning.NewUpdateRecord(cleaningRepo, d.Audit, d.Log, d.Now)
	deleteRecordUC := ucCleaning.NewDeleteRecord(cleaningRepo, d.Audit, d.Log, d.Now)
	listMyRecordsUC := ucCleaning.NewListMyRecords(cleaningRepo, d.Now)

	// ======================================================
	// USE CASES: REPORTS
	// ======================================================
	dashboardUC := ucReport.NewDashboard(reportRepo, d.Config.WeekStart, d.Now)
	listRecordsUC := ucReport.NewListRecords(reportRepo)
	exportUC := ucReport.NewExportRecords(reportRepo, d.Location)
	archiveUC := ucReport.NewArchiveExport(exportUC, d.Uploader, d.Log, d.Now)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getUserUC)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	recordsHandler := handlers.NewRecordsHandler(
		createRecordUC,
		updateRecordUC,
		deleteRecordUC,
		listMyRecordsUC,
	)
	adminHandler := handlers.NewAdminHandler(handlers.AdminDeps{
		Dashboard: dashboardUC,
		Records:   listRecordsUC,
		Export:    exportUC,
		Archive:   archiveUC,
		Users:     listUsersUC,
		SetActive: setUserActiveUC,
	}, d.Location, d.Now, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, d.Location)

	requireAuth := middleware.AuthMiddleware(tokens, accountRepo, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimit(d.Limiter, ratelimit.General, middleware.KeyByIP, d.Log))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/register",
				middleware.RateLimit(d.Limiter, ratelimit.Register, middleware.KeyByIP, d.Log),
				authHandler.Register,
			)
			authAPI.POST("/login",
				middleware.RateLimit(d.Limiter, ratelimit.Login, middleware.KeyByIP, d.Log),
				authHandler.Login,
			)
			authAPI.POST("/logout", requireAuth, authHandler.Logout)
			authAPI.GET("/me", requireAuth, authHandler.Me)
		}

		// ------------------------------
		// CLEANING (any authenticated user)
		// ------------------------------
		cleaning := api.Group("/cleaning")
		cleaning.Use(requireAuth)
		{
			cleaning.GET("/locations", catalogHandler.Locations)
			cleaning.GET("/cleaning-types", catalogHandler.CleaningTypes)
			cleaning.GET("/products", catalogHandler.Products)

			cleaning.POST("/records",
				middleware.RateLimit(d.Limiter, ratelimit.CreateRecord, middleware.KeyByUser, d.Log),
				recordsHandler.Create,
			)
			cleaning.GET("/my-records", recordsHandler.Mine)
			cleaning.PUT("/records/:id", recordsHandler.Update)
			cleaning.DELETE("/records/:id", recordsHandler.Delete)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireAdmin())
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/records", adminHandler.Records)
			admin.GET("/records/export", adminHandler.Export)
			admin.POST("/records/export/archive", adminHandler.ArchiveExport)

			admin.GET("/users", adminHandler.Users)
			admin.PATCH("/users/:id/status", adminHandler.SetUserStatus)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
