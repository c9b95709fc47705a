package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/catalog"
	progressrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/progress"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

// EnrollmentService materializes a user's progress cascade for a level and
// serves the enrolled-levels read path.
type EnrollmentService interface {
	// Enroll creates the enrollment plus one user_course row per catalog
	// course and, for non-basic levels, one user_course_lesson row per
	// catalog lesson. The whole cascade commits or rolls back as one unit.
	Enroll(ctx context.Context, userID, levelID uuid.UUID) (*types.UserSpecialityLevel, error)
	ListEnrolled(ctx context.Context, userID uuid.UUID, name string, page, limit int) (*Page[*types.UserSpecialityLevel], error)
}

type enrollmentService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         userrepo.UserRepo
	levelRepo        catalogrepo.SpecialityLevelRepo
	enrollmentRepo   progressrepo.UserSpecialityLevelRepo
	userCourseRepo   progressrepo.UserCourseRepo
	courseLessonRepo progressrepo.UserCourseLessonRepo
}

func NewEnrollmentService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	levelRepo catalogrepo.SpecialityLevelRepo,
	enrollmentRepo progressrepo.UserSpecialityLevelRepo,
	userCourseRepo progressrepo.UserCourseRepo,
	courseLessonRepo progressrepo.UserCourseLessonRepo,
) EnrollmentService {
	serviceLog := log.With("service", "EnrollmentService")
	return &enrollmentService{
		db:               db,
		log:              serviceLog,
		userRepo:         userRepo,
		levelRepo:        levelRepo,
		enrollmentRepo:   enrollmentRepo,
		userCourseRepo:   userCourseRepo,
		courseLessonRepo: courseLessonRepo,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, levelID uuid.UUID) (*types.UserSpecialityLevel, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if _, err := s.userRepo.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	var enrollment *types.UserSpecialityLevel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		level, err := s.levelRepo.GetWithCourses(ctx, tx, levelID)
		if err != nil {
			return err
		}

		if _, err := s.enrollmentRepo.GetByUserAndLevel(ctx, tx, userID, levelID); err == nil {
			return apperrors.ErrAlreadyEnrolled
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		enrollment = &types.UserSpecialityLevel{
			ID:                uuid.New(),
			UserID:            userID,
			SpecialityLevelID: level.ID,
			IsFinish:          false,
		}
		if _, err := s.enrollmentRepo.Create(ctx, tx, []*types.UserSpecialityLevel{enrollment}); err != nil {
			return err
		}

		// IDs are generated here, not by the store, so lesson rows can
		// reference their user_course row before either batch is written.
		userCourses := make([]*types.UserCourse, 0, len(level.Courses))
		var userLessons []*types.UserCourseLesson
		for i := range level.Courses {
			course := &level.Courses[i]
			userCourse := &types.UserCourse{
				ID:                    uuid.New(),
				UserSpecialityLevelID: enrollment.ID,
				CourseID:              course.ID,
				UserID:                userID,
				IsFinish:              false,
				Time:                  0,
			}
			userCourses = append(userCourses, userCourse)

			if !level.IsBasic {
				for j := range course.Lessons {
					lesson := &course.Lessons[j]
					userLessons = append(userLessons, &types.UserCourseLesson{
						ID:             uuid.New(),
						UserCourseID:   userCourse.ID,
						CourseLessonID: lesson.ID,
						UserID:         userID,
						IsFinish:       false,
						Order:          lesson.Order,
					})
				}
			}
		}

		if _, err := s.userCourseRepo.Create(ctx, tx, userCourses); err != nil {
			return err
		}
		if _, err := s.courseLessonRepo.Create(ctx, tx, userLessons); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("level enrolled", "user_id", userID, "level_id", levelID, "enrollment_id", enrollment.ID)
	return enrollment, nil
}

func (s *enrollmentService) ListEnrolled(ctx context.Context, userID uuid.UUID, name string, page, limit int) (*Page[*types.UserSpecialityLevel], error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.enrollmentRepo.ListByUser(ctx, nil, userID, name, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.UserSpecialityLevel]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}
