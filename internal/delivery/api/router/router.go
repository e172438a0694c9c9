// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeos/config"
	"lifeos/internal/delivery/api/middleware"
	"lifeos/internal/delivery/api/router/handler"
	"lifeos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	ChallengeHandler *handler.ChallengeHandler
	StudyHandler     *handler.StudyHandler
	FestivalHandler  *handler.FestivalHandler
	ScheduleHandler  *handler.ScheduleHandler
	LifeHandler      *handler.LifeHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler    *handler.HealthHandler
	authHandler      *handler.AuthHandler
	challengeHandler *handler.ChallengeHandler
	studyHandler     *handler.StudyHandler
	festivalHandler  *handler.FestivalHandler
	scheduleHandler  *handler.ScheduleHandler
	lifeHandler      *handler.LifeHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:    params.HealthHandler,
		authHandler:      params.AuthHandler,
		challengeHandler: params.ChallengeHandler,
		studyHandler:     params.StudyHandler,
		festivalHandler:  params.FestivalHandler,
		scheduleHandler:  params.ScheduleHandler,
		lifeHandler:      params.LifeHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Public auth routes, throttled per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.NewRateLimiter(r.config))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	accountGroup := apiV1.Group("/auth")
	{
		accountGroup.GET("/me", r.authHandler.Me)
		accountGroup.PUT("/password", r.authHandler.ChangePassword)
		accountGroup.DELETE("/me", r.authHandler.DeleteAccount)
	}

	challengesGroup := apiV1.Group("/challenges")
	{
		challengesGroup.GET("", r.challengeHandler.List)
		challengesGroup.POST("", r.challengeHandler.Create)
		challengesGroup.GET("/:id", r.challengeHandler.Get)
		challengesGroup.PUT("/:id", r.challengeHandler.Update)
		challengesGroup.DELETE("/:id", r.challengeHandler.Delete)

		challengesGroup.POST("/:id/sections", r.challengeHandler.AddSection)
		challengesGroup.PUT("/:id/sections/:sectionId", r.challengeHandler.UpdateSection)
		challengesGroup.DELETE("/:id/sections/:sectionId", r.challengeHandler.RemoveSection)

		challengesGroup.POST("/:id/sections/:sectionId/subjects", r.challengeHandler.AddSubject)
		challengesGroup.POST("/:id/sections/:sectionId/subjects/batch", r.challengeHandler.AddSubjects)
		challengesGroup.PUT("/:id/subjects/:subjectId", r.challengeHandler.UpdateSubject)
		challengesGroup.DELETE("/:id/subjects/:subjectId", r.challengeHandler.RemoveSubject)
	}

	studyGroup := apiV1.Group("/study")
	{
		studyGroup.GET("", r.studyHandler.Get)
		studyGroup.GET("/statistics", r.studyHandler.Statistics)

		studyGroup.POST("/branches", r.studyHandler.AddBranch)
		studyGroup.PUT("/branches/:branchId", r.studyHandler.UpdateBranch)
		studyGroup.DELETE("/branches/:branchId", r.studyHandler.RemoveBranch)

		studyGroup.POST("/branches/:branchId/subjects", r.studyHandler.AddSubject)
		studyGroup.PUT("/branches/:branchId/subjects/:subjectId", r.studyHandler.UpdateSubject)
		studyGroup.DELETE("/branches/:branchId/subjects/:subjectId", r.studyHandler.RemoveSubject)

		studyGroup.POST("/branches/:branchId/subjects/:subjectId/materials", r.studyHandler.AddMaterial)
		studyGroup.PUT("/branches/:branchId/subjects/:subjectId/materials/:materialId", r.studyHandler.UpdateMaterial)
		studyGroup.DELETE("/branches/:branchId/subjects/:subjectId/materials/:materialId", r.studyHandler.RemoveMaterial)
	}

	festivalsGroup := apiV1.Group("/festivals")
	{
		festivalsGroup.GET("", r.festivalHandler.List)
		festivalsGroup.POST("", r.festivalHandler.Create)
		festivalsGroup.GET("/:id", r.festivalHandler.Get)
		festivalsGroup.PUT("/:id", r.festivalHandler.Update)
		festivalsGroup.DELETE("/:id", r.festivalHandler.Delete)

		festivalsGroup.POST("/:id/items", r.festivalHandler.AddItem)
		festivalsGroup.PUT("/:id/items/:itemId", r.festivalHandler.UpdateItem)
		festivalsGroup.DELETE("/:id/items/:itemId", r.festivalHandler.RemoveItem)
	}

	specialGroup := apiV1.Group("/special-schedules")
	{
		specialGroup.GET("", r.scheduleHandler.ListSpecialSchedules)
		specialGroup.POST("", r.scheduleHandler.CreateSpecialSchedule)
		specialGroup.GET("/:id", r.scheduleHandler.GetSpecialSchedule)
		specialGroup.PATCH("/:id", r.scheduleHandler.UpdateSpecialSchedule)
		specialGroup.DELETE("/:id", r.scheduleHandler.DeleteSpecialSchedule)

		specialGroup.POST("/:id/tasks", r.scheduleHandler.AddTask)
		specialGroup.PATCH("/:id/tasks/:taskId", r.scheduleHandler.UpdateTask)
		specialGroup.DELETE("/:id/tasks/:taskId", r.scheduleHandler.RemoveTask)
	}

	timetableGroup := apiV1.Group("/timetable")
	{
		timetableGroup.GET("", r.scheduleHandler.TimetableRange)
		timetableGroup.GET("/:date", r.scheduleHandler.TimetableDay)
		timetableGroup.PUT("/:date", r.scheduleHandler.ReplaceTimetableDay)
		timetableGroup.PATCH("/:date/slots/:slotId/status", r.scheduleHandler.SetSlotStatus)
		timetableGroup.DELETE("/:date", r.scheduleHandler.DeleteTimetableDay)
	}

	lifePlansGroup := apiV1.Group("/life-plans")
	{
		lifePlansGroup.GET("", r.lifeHandler.ListLifePlans)
		lifePlansGroup.POST("", r.lifeHandler.CreateLifePlan)
		lifePlansGroup.GET("/range", r.lifeHandler.LifePlansByTargetYear)
		lifePlansGroup.GET("/:id", r.lifeHandler.GetLifePlan)
		lifePlansGroup.PUT("/:id", r.lifeHandler.UpdateLifePlan)
		lifePlansGroup.DELETE("/:id", r.lifeHandler.DeleteLifePlan)
	}

	transactionsGroup := apiV1.Group("/transactions")
	{
		transactionsGroup.GET("", r.lifeHandler.ListTransactions)
		transactionsGroup.GET("/summary", r.lifeHandler.TransactionSummary)
		transactionsGroup.POST("", r.lifeHandler.CreateTransaction)
		transactionsGroup.PUT("/:id", r.lifeHandler.UpdateTransaction)
		transactionsGroup.DELETE("/:id", r.lifeHandler.DeleteTransaction)
	}

	diaryGroup := apiV1.Group("/diary")
	{
		diaryGroup.GET("", r.lifeHandler.ListDiary)
		diaryGroup.GET("/date/:date", r.lifeHandler.DiaryByDay)
		diaryGroup.POST("", r.lifeHandler.CreateDiaryEntry)
		diaryGroup.GET("/:id", r.lifeHandler.GetDiaryEntry)
		diaryGroup.PUT("/:id", r.lifeHandler.UpdateDiaryEntry)
		diaryGroup.DELETE("/:id", r.lifeHandler.DeleteDiaryEntry)
	}

	dashboardGroup := apiV1.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/slogans", r.dashboardHandler.Slogans)
		dashboardGroup.GET("/progress", r.dashboardHandler.Progress)
	}
}
