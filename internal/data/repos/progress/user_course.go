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

type UserCourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, userCourses []*types.UserCourse) ([]*types.UserCourse, error)
	GetByID(ctx context.Context, tx *gorm.DB, userCourseID uuid.UUID) (*types.UserCourse, error)
	// GetByUserAndCourse resolves the caller's progress row for a catalog
	// course; ownership is part of the query, not a separate check.
	GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) (*types.UserCourse, error)
	GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) ([]*types.UserCourse, error)
	Save(ctx context.Context, tx *gorm.DB, userCourse *types.UserCourse) error
}

type userCourseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserCourseRepo(db *gorm.DB, baseLog *logger.Logger) UserCourseRepo {
	repoLog := baseLog.With("repo", "UserCourseRepo")
	return &userCourseRepo{db: db, log: repoLog}
}

func (r *userCourseRepo) Create(ctx context.Context, tx *gorm.DB, userCourses []*types.UserCourse) ([]*types.UserCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(userCourses) == 0 {
		return []*types.UserCourse{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&userCourses).Error; err != nil {
		return nil, err
	}
	return userCourses, nil
}

func (r *userCourseRepo) GetByID(ctx context.Context, tx *gorm.DB, userCourseID uuid.UUID) (*types.UserCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserCourse
	err := transaction.WithContext(ctx).First(&result, "id = ?", userCourseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userCourseRepo) GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) (*types.UserCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserCourse
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userCourseRepo) GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) ([]*types.UserCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserCourse
	if err := transaction.WithContext(ctx).
		Where("user_speciality_level_id = ?", enrollmentID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userCourseRepo) Save(ctx context.Context, tx *gorm.DB, userCourse *types.UserCourse) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(userCourse).Error
}
