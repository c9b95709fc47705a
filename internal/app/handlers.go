package app

import (
	"github.com/Digital-Coach-Women/APP-API/internal/http/handlers"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Speciality *handlers.SpecialityHandler
	Level      *handlers.LevelHandler
	Course     *handlers.CourseHandler
	Lesson     *handlers.LessonHandler
	Chat       *handlers.ChatHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(services.Auth),
		Speciality: handlers.NewSpecialityHandler(log, services.Speciality),
		Level:      handlers.NewLevelHandler(log, services.Level, services.Enrollment),
		Course:     handlers.NewCourseHandler(log, services.Course, services.Progress),
		Lesson:     handlers.NewLessonHandler(log, services.Progress),
		Chat:       handlers.NewChatHandler(log, services.Chat),
	}
}
