package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:               log,
		ServiceName:       cfg.ServiceName,
		AllowOrigins:      cfg.AllowOrigins,
		AuthMiddleware:    middleware.Auth,
		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		SpecialityHandler: handlers.Speciality,
		LevelHandler:      handlers.Level,
		CourseHandler:     handlers.Course,
		LessonHandler:     handlers.Lesson,
		ChatHandler:       handlers.Chat,
	})
}
