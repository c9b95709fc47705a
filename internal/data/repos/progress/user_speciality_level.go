package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type UserSpecialityLevelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, enrollments []*types.UserSpecialityLevel) ([]*types.UserSpecialityLevel, error)
	GetByID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.UserSpecialityLevel, error)
	GetByUserAndLevel(ctx context.Context, tx *gorm.DB, userID, levelID uuid.UUID) (*types.UserSpecialityLevel, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string, offset, limit int) ([]*types.UserSpecialityLevel, int64, error)
	SetFinished(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) error
}

type userSpecialityLevelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserSpecialityLevelRepo(db *gorm.DB, baseLog *logger.Logger) UserSpecialityLevelRepo {
	repoLog := baseLog.With("repo", "UserSpecialityLevelRepo")
	return &userSpecialityLevelRepo{db: db, log: repoLog}
}

func (r *userSpecialityLevelRepo) Create(ctx context.Context, tx *gorm.DB, enrollments []*types.UserSpecialityLevel) ([]*types.UserSpecialityLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(enrollments) == 0 {
		return []*types.UserSpecialityLevel{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *userSpecialityLevelRepo) GetByID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.UserSpecialityLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserSpecialityLevel
	err := transaction.WithContext(ctx).
		First(&result, "id = ?", enrollmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userSpecialityLevelRepo) GetByUserAndLevel(ctx context.Context, tx *gorm.DB, userID, levelID uuid.UUID) (*types.UserSpecialityLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserSpecialityLevel
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND speciality_level_id = ?", userID, levelID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userSpecialityLevelRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string, offset, limit int) ([]*types.UserSpecialityLevel, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.UserSpecialityLevel{}).
		Where("user_id = ?", userID)
	if name != "" {
		query = query.
			Joins("JOIN speciality_level ON speciality_level.id = user_speciality_level.speciality_level_id").
			Where("speciality_level.name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.UserSpecialityLevel
	if err := query.
		Preload("SpecialityLevel").
		Preload("SpecialityLevel.Speciality").
		Preload("Courses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Courses.Course").
		Preload("Courses.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order(`"order" ASC`) }).
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *userSpecialityLevelRepo) SetFinished(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.UserSpecialityLevel{}).
		Where("id = ?", enrollmentID).
		Update("is_finish", true).Error
}
