package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Names:    "Ana",
		LastName: "Prueba",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSpeciality(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Speciality {
	tb.Helper()
	s := &types.Speciality{
		ID:          uuid.New(),
		Name:        name,
		Description: "desc",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed speciality: %v", err)
	}
	return s
}

func SeedLevel(tb testing.TB, ctx context.Context, tx *gorm.DB, specialityID uuid.UUID, order int, isBasic bool) *types.SpecialityLevel {
	tb.Helper()
	l := &types.SpecialityLevel{
		ID:           uuid.New(),
		SpecialityID: specialityID,
		Name:         fmt.Sprintf("level-%d", order),
		Order:        order,
		IsBasic:      isBasic,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed level: %v", err)
	}
	return l
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, levelID uuid.UUID, order int) *types.Course {
	tb.Helper()
	c := &types.Course{
		ID:                uuid.New(),
		SpecialityLevelID: levelID,
		Title:             fmt.Sprintf("course-%d", order),
		Order:             order,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedCourseLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uuid.UUID, order int) *types.CourseLesson {
	tb.Helper()
	l := &types.CourseLesson{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    fmt.Sprintf("lesson-%d", order),
		Order:    order,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed course lesson: %v", err)
	}
	return l
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, levelID uuid.UUID) *types.UserSpecialityLevel {
	tb.Helper()
	e := &types.UserSpecialityLevel{
		ID:                uuid.New(),
		UserID:            userID,
		SpecialityLevelID: levelID,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}

func SeedUserCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, enrollmentID, courseID, userID uuid.UUID) *types.UserCourse {
	tb.Helper()
	uc := &types.UserCourse{
		ID:                    uuid.New(),
		UserSpecialityLevelID: enrollmentID,
		CourseID:              courseID,
		UserID:                userID,
	}
	if err := tx.WithContext(ctx).Create(uc).Error; err != nil {
		tb.Fatalf("seed user course: %v", err)
	}
	return uc
}

func SeedUserCourseLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, userCourseID, courseLessonID, userID uuid.UUID, order int) *types.UserCourseLesson {
	tb.Helper()
	ul := &types.UserCourseLesson{
		ID:             uuid.New(),
		UserCourseID:   userCourseID,
		CourseLessonID: courseLessonID,
		UserID:         userID,
		Order:          order,
	}
	if err := tx.WithContext(ctx).Create(ul).Error; err != nil {
		tb.Fatalf("seed user course lesson: %v", err)
	}
	return ul
}

func SeedChat(tb testing.TB, ctx context.Context, tx *gorm.DB, userA, userB uuid.UUID) *types.Chat {
	tb.Helper()
	c := &types.Chat{
		ID:      uuid.New(),
		UserID1: userA,
		UserID2: userB,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed chat: %v", err)
	}
	return c
}
