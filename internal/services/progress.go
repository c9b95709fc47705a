package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	progressrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/progress"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

// ProgressService records course/lesson time events and propagates finished
// status upward. Finished flags only ever move false -> true through this
// path; a level flips once no sibling course under its enrollment remains
// unfinished.
type ProgressService interface {
	RecordCourseTime(ctx context.Context, userID, courseID uuid.UUID, elapsed int, isFinish bool) error
	RecordLessonFinish(ctx context.Context, userID, lessonProgressID uuid.UUID, isFinish bool) error
}

type ProgressOptions struct {
	// AutoFinishCourses finishes a course once its last lesson finishes,
	// then runs the same level recompute as a course time event. Off by
	// default: the legacy flow only propagates from course events.
	AutoFinishCourses bool
}

type progressService struct {
	db             *gorm.DB
	log            *logger.Logger
	enrollmentRepo progressrepo.UserSpecialityLevelRepo
	userCourseRepo progressrepo.UserCourseRepo
	userLessonRepo progressrepo.UserCourseLessonRepo
	opts           ProgressOptions
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	enrollmentRepo progressrepo.UserSpecialityLevelRepo,
	userCourseRepo progressrepo.UserCourseRepo,
	userLessonRepo progressrepo.UserCourseLessonRepo,
	opts ProgressOptions,
) ProgressService {
	serviceLog := log.With("service", "ProgressService")
	return &progressService{
		db:             db,
		log:            serviceLog,
		enrollmentRepo: enrollmentRepo,
		userCourseRepo: userCourseRepo,
		userLessonRepo: userLessonRepo,
		opts:           opts,
	}
}

func (s *progressService) RecordCourseTime(ctx context.Context, userID, courseID uuid.UUID, elapsed int, isFinish bool) error {
	if userID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if elapsed < 0 {
		return apperrors.ErrInvalidArgument
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userCourse, err := s.userCourseRepo.GetByUserAndCourse(ctx, tx, userID, courseID)
		if err != nil {
			return err
		}

		userCourse.Time = elapsed
		if isFinish {
			userCourse.IsFinish = true
		}
		if err := s.userCourseRepo.Save(ctx, tx, userCourse); err != nil {
			return err
		}

		return s.propagateToLevel(ctx, tx, userCourse.UserSpecialityLevelID)
	})
}

func (s *progressService) RecordLessonFinish(ctx context.Context, userID, lessonProgressID uuid.UUID, isFinish bool) error {
	if userID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.userLessonRepo.GetByIDForUser(ctx, tx, lessonProgressID, userID)
		if err != nil {
			return err
		}

		if isFinish && !lesson.IsFinish {
			lesson.IsFinish = true
			if err := s.userLessonRepo.Save(ctx, tx, lesson); err != nil {
				return err
			}
		}

		if !s.opts.AutoFinishCourses || !lesson.IsFinish {
			return nil
		}

		siblings, err := s.userLessonRepo.GetByUserCourseID(ctx, tx, lesson.UserCourseID)
		if err != nil {
			return err
		}
		for _, sibling := range siblings {
			if !sibling.IsFinish {
				return nil
			}
		}

		userCourse, err := s.userCourseRepo.GetByID(ctx, tx, lesson.UserCourseID)
		if err != nil {
			return err
		}
		if !userCourse.IsFinish {
			userCourse.IsFinish = true
			if err := s.userCourseRepo.Save(ctx, tx, userCourse); err != nil {
				return err
			}
		}

		return s.propagateToLevel(ctx, tx, userCourse.UserSpecialityLevelID)
	})
}

// propagateToLevel recomputes the AND over sibling courses and marks the
// enrollment finished when none remain unfinished. It never resets a
// previously finished enrollment.
func (s *progressService) propagateToLevel(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) error {
	siblings, err := s.userCourseRepo.GetByEnrollmentID(ctx, tx, enrollmentID)
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if !sibling.IsFinish {
			return nil
		}
	}
	return s.enrollmentRepo.SetFinished(ctx, tx, enrollmentID)
}
