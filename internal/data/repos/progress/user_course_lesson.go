package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type UserCourseLessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.UserCourseLesson) ([]*types.UserCourseLesson, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, lessonProgressID, userID uuid.UUID) (*types.UserCourseLesson, error)
	GetByUserCourseID(ctx context.Context, tx *gorm.DB, userCourseID uuid.UUID) ([]*types.UserCourseLesson, error)
	Save(ctx context.Context, tx *gorm.DB, lesson *types.UserCourseLesson) error
}

type userCourseLessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserCourseLessonRepo(db *gorm.DB, baseLog *logger.Logger) UserCourseLessonRepo {
	repoLog := baseLog.With("repo", "UserCourseLessonRepo")
	return &userCourseLessonRepo{db: db, log: repoLog}
}

func (r *userCourseLessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.UserCourseLesson) ([]*types.UserCourseLesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(lessons) == 0 {
		return []*types.UserCourseLesson{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *userCourseLessonRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, lessonProgressID, userID uuid.UUID) (*types.UserCourseLesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserCourseLesson
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", lessonProgressID, userID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userCourseLessonRepo) GetByUserCourseID(ctx context.Context, tx *gorm.DB, userCourseID uuid.UUID) ([]*types.UserCourseLesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserCourseLesson
	if err := transaction.WithContext(ctx).
		Where("user_course_id = ?", userCourseID).
		Order(`"order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userCourseLessonRepo) Save(ctx context.Context, tx *gorm.DB, lesson *types.UserCourseLesson) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(lesson).Error
}
