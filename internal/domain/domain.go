package domain

import (
	"github.com/Digital-Coach-Women/APP-API/internal/domain/catalog"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/chat"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/progress"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// Aliases so callers can import a single types package.

type (
	User      = user.User
	UserToken = user.UserToken

	Speciality      = catalog.Speciality
	SpecialityLevel = catalog.SpecialityLevel
	Course          = catalog.Course
	CourseLesson    = catalog.CourseLesson

	UserSpecialityLevel = progress.UserSpecialityLevel
	UserCourse          = progress.UserCourse
	UserCourseLesson    = progress.UserCourseLesson

	Chat        = chat.Chat
	ChatMessage = chat.ChatMessage
)
