package app

import (
	"fmt"

	"gorm.io/gorm"

	redisclient "github.com/Digital-Coach-Women/APP-API/internal/clients/redis"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Speciality services.SpecialityService
	Level      services.LevelService
	Course     services.CourseService
	Enrollment services.EnrollmentService
	Progress   services.ProgressService
	Chat       services.ChatService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	sink, err := redisclient.NewMessageSink(log, cfg.RedisAddr, cfg.RedisKeyPrefix)
	if err != nil {
		return Services{}, fmt.Errorf("init message sink: %w", err)
	}

	return Services{
		Auth: services.NewAuthService(
			db, log,
			repos.User, repos.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		Speciality: services.NewSpecialityService(db, log, repos.Speciality),
		Level:      services.NewLevelService(db, log, repos.SpecialityLevel),
		Course:     services.NewCourseService(db, log, repos.Course),
		Enrollment: services.NewEnrollmentService(
			db, log,
			repos.User, repos.SpecialityLevel,
			repos.UserSpecialityLevel, repos.UserCourse, repos.UserCourseLesson,
		),
		Progress: services.NewProgressService(
			db, log,
			repos.UserSpecialityLevel, repos.UserCourse, repos.UserCourseLesson,
			services.ProgressOptions{AutoFinishCourses: cfg.AutoFinishCourses},
		),
		Chat: services.NewChatService(db, log, repos.User, repos.Chat, repos.ChatMessage, sink),
	}, nil
}
