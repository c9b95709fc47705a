package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type CourseLessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.CourseLesson) ([]*types.CourseLesson, error)
	GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseLesson, error)
}

type courseLessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseLessonRepo(db *gorm.DB, baseLog *logger.Logger) CourseLessonRepo {
	repoLog := baseLog.With("repo", "CourseLessonRepo")
	return &courseLessonRepo{db: db, log: repoLog}
}

func (r *courseLessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.CourseLesson) ([]*types.CourseLesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(lessons) == 0 {
		return []*types.CourseLesson{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *courseLessonRepo) GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseLesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseLesson
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Order(`course_id, "order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
