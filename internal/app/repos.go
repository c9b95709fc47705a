package app

import (
	"gorm.io/gorm"

	catalogrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/catalog"
	chatrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/chat"
	progressrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/progress"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type Repos struct {
	User                userrepo.UserRepo
	UserToken           userrepo.UserTokenRepo
	Speciality          catalogrepo.SpecialityRepo
	SpecialityLevel     catalogrepo.SpecialityLevelRepo
	Course              catalogrepo.CourseRepo
	CourseLesson        catalogrepo.CourseLessonRepo
	UserSpecialityLevel progressrepo.UserSpecialityLevelRepo
	UserCourse          progressrepo.UserCourseRepo
	UserCourseLesson    progressrepo.UserCourseLessonRepo
	Chat                chatrepo.ChatRepo
	ChatMessage         chatrepo.ChatMessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                userrepo.NewUserRepo(db, log),
		UserToken:           userrepo.NewUserTokenRepo(db, log),
		Speciality:          catalogrepo.NewSpecialityRepo(db, log),
		SpecialityLevel:     catalogrepo.NewSpecialityLevelRepo(db, log),
		Course:              catalogrepo.NewCourseRepo(db, log),
		CourseLesson:        catalogrepo.NewCourseLessonRepo(db, log),
		UserSpecialityLevel: progressrepo.NewUserSpecialityLevelRepo(db, log),
		UserCourse:          progressrepo.NewUserCourseRepo(db, log),
		UserCourseLesson:    progressrepo.NewUserCourseLessonRepo(db, log),
		Chat:                chatrepo.NewChatRepo(db, log),
		ChatMessage:         chatrepo.NewChatMessageRepo(db, log),
	}
}
