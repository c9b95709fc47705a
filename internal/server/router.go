package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Digital-Coach-Women/APP-API/internal/http/handlers"
	"github.com/Digital-Coach-Women/APP-API/internal/http/middleware"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	ServiceName       string
	AllowOrigins      []string
	AuthMiddleware    *middleware.AuthMiddleware
	HealthHandler     *handlers.HealthHandler
	AuthHandler       *handlers.AuthHandler
	SpecialityHandler *handlers.SpecialityHandler
	LevelHandler      *handlers.LevelHandler
	CourseHandler     *handlers.CourseHandler
	LessonHandler     *handlers.LessonHandler
	ChatHandler       *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowOrigins))
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestLogger(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	api := router.Group("/api/v1")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api/v1")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)
	protected.GET("/user", cfg.AuthHandler.Me)

	// Specialities
	specialities := protected.Group("/specialities")
	specialities.GET("", cfg.SpecialityHandler.List)
	specialities.POST("", cfg.SpecialityHandler.Create)

	// Levels. Static segments are registered before the :id routes so gin
	// does not treat "levels" or "matriculated" as an ID.
	levels := specialities.Group("/levels")
	levels.GET("", cfg.LevelHandler.List)
	levels.POST("", cfg.LevelHandler.Create)
	levels.GET("/matriculated", cfg.LevelHandler.ListEnrolled)

	// Courses
	courses := levels.Group("/courses")
	courses.GET("", cfg.CourseHandler.List)
	courses.POST("", cfg.CourseHandler.Create)

	// Lessons
	lessons := courses.Group("/lessons")
	lessons.PUT("/:id/finish", cfg.LessonHandler.Finish)

	courses.GET("/:id", cfg.CourseHandler.Get)
	courses.PUT("/:id", cfg.CourseHandler.Update)
	courses.PUT("/:id/time-video", cfg.CourseHandler.RecordTime)

	levels.GET("/:id", cfg.LevelHandler.Get)
	levels.PUT("/:id", cfg.LevelHandler.Update)
	levels.POST("/:id/matriculated", cfg.LevelHandler.Enroll)

	specialities.GET("/:id", cfg.SpecialityHandler.Get)
	specialities.PUT("/:id", cfg.SpecialityHandler.Update)

	// Chat
	contacts := protected.Group("/chats/contacts")
	contacts.GET("", cfg.ChatHandler.Contacts)
	contacts.GET("/:id/chats", cfg.ChatHandler.Messages)
	contacts.POST("/:id/chats", cfg.ChatHandler.Send)
	contacts.DELETE("/:id/chats/:chatId", cfg.ChatHandler.Delete)

	return router
}
