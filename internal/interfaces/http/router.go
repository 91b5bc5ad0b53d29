package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apikeyusecases "github.com/pharris560/ace-attendance/internal/application/apikey/usecases"
	attendanceusecases "github.com/pharris560/ace-attendance/internal/application/attendance/usecases"
	authusecases "github.com/pharris560/ace-attendance/internal/application/auth/usecases"
	classusecases "github.com/pharris560/ace-attendance/internal/application/class/usecases"
	enrollmentusecases "github.com/pharris560/ace-attendance/internal/application/enrollment/usecases"
	studentusecases "github.com/pharris560/ace-attendance/internal/application/student/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	infraauth "github.com/pharris560/ace-attendance/internal/infrastructure/auth"
	"github.com/pharris560/ace-attendance/internal/infrastructure/config"
	"github.com/pharris560/ace-attendance/internal/infrastructure/ratelimit"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/handlers"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

// Repositories bundles one storage backend's repository set.
type Repositories struct {
	Users       user.Repository
	Sessions    user.SessionRepository
	APIKeys     apikey.Repository
	Classes     class.Repository
	Students    student.Repository
	Enrollments enrollment.Repository
	Attendance  attendance.Repository
}

// NewRepositories selects the backend by driver. "memory" backs everything
// with one in-process store; "mysql" and "sqlite" share the gorm set.
func NewRepositories(driver string, db *gorm.DB) Repositories {
	if driver == "memory" {
		store := memory.NewStore()
		return Repositories{
			Users:       memory.NewUserRepository(store),
			Sessions:    memory.NewSessionRepository(store),
			APIKeys:     memory.NewAPIKeyRepository(store),
			Classes:     memory.NewClassRepository(store),
			Students:    memory.NewStudentRepository(store),
			Enrollments: memory.NewEnrollmentRepository(store),
			Attendance:  memory.NewAttendanceRepository(store),
		}
	}

	return Repositories{
		Users:       repository.NewUserRepository(db),
		Sessions:    repository.NewSessionRepository(db),
		APIKeys:     repository.NewAPIKeyRepository(db),
		Classes:     repository.NewClassRepository(db),
		Students:    repository.NewStudentRepository(db),
		Enrollments: repository.NewEnrollmentRepository(db),
		Attendance:  repository.NewAttendanceRepository(db),
	}
}

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	authHandler       *handlers.AuthHandler
	apiKeyHandler     *handlers.APIKeyHandler
	classHandler      *handlers.ClassHandler
	studentHandler    *handlers.StudentHandler
	enrollmentHandler *handlers.EnrollmentHandler
	attendanceHandler *handlers.AttendanceHandler
	healthHandler     *handlers.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	loginLimiter      gin.HandlerFunc
	allowedOrigins    []string
	sessionCleanup    *authusecases.CleanupExpiredSessionsUseCase
	logger            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()

	repos := NewRepositories(cfg.Database.Driver, db)

	hasher := infraauth.NewPBKDF2PasswordHasher(cfg.Auth.Password.Iterations)
	tokens := token.NewGenerator()
	sanitizer := sanitize.NewStrict()
	sessionTTL := time.Duration(cfg.Auth.Session.ExpDays) * 24 * time.Hour

	registerUC := authusecases.NewRegisterUserUseCase(repos.Users, hasher, log)
	loginUC := authusecases.NewLoginUseCase(repos.Users, repos.Sessions, hasher, tokens, sessionTTL, log)
	logoutUC := authusecases.NewLogoutUseCase(repos.Sessions, tokens, log)
	authenticateUC := authusecases.NewAuthenticateSessionUseCase(repos.Users, repos.Sessions, tokens, log)
	cleanupUC := authusecases.NewCleanupExpiredSessionsUseCase(repos.Sessions, log)

	createKeyUC := apikeyusecases.NewCreateAPIKeyUseCase(repos.APIKeys, tokens, log)
	verifyKeyUC := apikeyusecases.NewVerifyAPIKeyUseCase(repos.APIKeys, repos.Users, tokens, log)
	listKeysUC := apikeyusecases.NewListAPIKeysUseCase(repos.APIKeys, log)
	updateKeyUC := apikeyusecases.NewUpdateAPIKeyUseCase(repos.APIKeys, log)
	deleteKeyUC := apikeyusecases.NewDeleteAPIKeyUseCase(repos.APIKeys, log)

	createClassUC := classusecases.NewCreateClassUseCase(repos.Classes, sanitizer, log)
	getClassUC := classusecases.NewGetClassUseCase(repos.Classes, log)
	listClassesUC := classusecases.NewListClassesUseCase(repos.Classes, repos.Enrollments, repos.Attendance, log)
	updateClassUC := classusecases.NewUpdateClassUseCase(repos.Classes, sanitizer, log)
	deleteClassUC := classusecases.NewDeleteClassUseCase(repos.Classes, log)
	classStatsUC := classusecases.NewGetClassStatsUseCase(repos.Classes, repos.Attendance, log)

	createStudentUC := studentusecases.NewCreateStudentUseCase(repos.Students, sanitizer, log)
	getStudentUC := studentusecases.NewGetStudentUseCase(repos.Students, log)
	listStudentsUC := studentusecases.NewListStudentsUseCase(repos.Students, log)
	updateStudentUC := studentusecases.NewUpdateStudentUseCase(repos.Students, sanitizer, log)
	deleteStudentUC := studentusecases.NewDeleteStudentUseCase(repos.Students, log)

	enrollUC := enrollmentusecases.NewEnrollStudentUseCase(repos.Classes, repos.Students, repos.Enrollments, log)
	unenrollUC := enrollmentusecases.NewUnenrollStudentUseCase(repos.Classes, repos.Enrollments, log)
	rosterUC := enrollmentusecases.NewGetClassRosterUseCase(repos.Classes, repos.Students, repos.Enrollments, repos.Attendance, log)

	markUC := attendanceusecases.NewMarkAttendanceUseCase(repos.Classes, repos.Students, repos.Attendance, sanitizer, log)
	bulkMarkUC := attendanceusecases.NewBulkMarkAttendanceUseCase(markUC, log)
	updateAttendanceUC := attendanceusecases.NewUpdateAttendanceUseCase(repos.Attendance, sanitizer, log)
	deleteAttendanceUC := attendanceusecases.NewDeleteAttendanceUseCase(repos.Attendance, log)
	listClassAttendanceUC := attendanceusecases.NewListClassAttendanceUseCase(repos.Attendance, repos.Classes, repos.Students, repos.Users, log)
	listStudentAttendanceUC := attendanceusecases.NewListStudentAttendanceUseCase(repos.Attendance, repos.Classes, repos.Students, repos.Users, log)

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}
	loginLimiter := middleware.LoginRateLimit(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.LoginPerMinute,
		RequestsPerHour:   cfg.RateLimit.LoginPerHour,
	}, log)

	return &Router{
		engine: engine,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, logoutUC, cfg.Auth.Cookie, log,
		),
		apiKeyHandler: handlers.NewAPIKeyHandler(
			createKeyUC, listKeysUC, updateKeyUC, deleteKeyUC, log,
		),
		classHandler: handlers.NewClassHandler(
			createClassUC, getClassUC, listClassesUC, updateClassUC, deleteClassUC, classStatsUC, log,
		),
		studentHandler: handlers.NewStudentHandler(
			createStudentUC, getStudentUC, listStudentsUC, updateStudentUC, deleteStudentUC, listStudentAttendanceUC, log,
		),
		enrollmentHandler: handlers.NewEnrollmentHandler(
			enrollUC, unenrollUC, rosterUC, log,
		),
		attendanceHandler: handlers.NewAttendanceHandler(
			markUC, bulkMarkUC, updateAttendanceUC, deleteAttendanceUC, listClassAttendanceUC, log,
		),
		healthHandler:  handlers.NewHealthHandler(db),
		authMiddleware: middleware.NewAuthMiddleware(authenticateUC, verifyKeyUC, log),
		loginLimiter:   loginLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		sessionCleanup: cleanupUC,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/healthz", r.healthHandler.Check)

	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.loginLimiter, r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	apikeys := v1.Group("/apikeys")
	apikeys.Use(r.authMiddleware.RequireAuth())
	{
		apikeys.POST("", r.apiKeyHandler.Create)
		apikeys.GET("", r.apiKeyHandler.List)
		apikeys.PATCH("/:id", r.apiKeyHandler.Update)
		apikeys.DELETE("/:id", r.apiKeyHandler.Delete)
	}

	classes := v1.Group("/classes")
	classes.Use(r.authMiddleware.RequireAuth())
	{
		classes.POST("", r.classHandler.Create)
		classes.GET("", r.classHandler.List)
		classes.GET("/:id", r.classHandler.Get)
		classes.PATCH("/:id", r.classHandler.Update)
		classes.DELETE("/:id", r.classHandler.Delete)
		classes.GET("/:id/stats", r.classHandler.Stats)
		classes.GET("/:id/roster", r.enrollmentHandler.Roster)
		classes.GET("/:id/attendance", r.attendanceHandler.ListByClass)
		classes.POST("/:id/enrollments", r.enrollmentHandler.Enroll)
		classes.DELETE("/:id/enrollments/:studentID", r.enrollmentHandler.Unenroll)
	}

	students := v1.Group("/students")
	students.Use(r.authMiddleware.RequireAuth())
	{
		students.POST("", r.studentHandler.Create)
		students.GET("", r.studentHandler.List)
		students.GET("/:id", r.studentHandler.Get)
		students.PATCH("/:id", r.studentHandler.Update)
		students.DELETE("/:id", r.studentHandler.Delete)
		students.GET("/:id/attendance", r.studentHandler.ListAttendance)
	}

	records := v1.Group("/attendance")
	records.Use(r.authMiddleware.RequireAuth())
	{
		records.POST("", r.attendanceHandler.Mark)
		records.POST("/bulk", r.attendanceHandler.BulkMark)
		records.PATCH("/:id", r.attendanceHandler.Update)
		records.DELETE("/:id", r.attendanceHandler.Delete)
	}
}

// SessionCleanupJob exposes the expired-session sweep for the scheduler.
func (r *Router) SessionCleanupJob() *authusecases.CleanupExpiredSessionsUseCase {
	return r.sessionCleanup
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
