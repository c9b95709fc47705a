package catalog

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

type SpecialityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, specialities []*types.Speciality) ([]*types.Speciality, error)
	GetByID(ctx context.Context, tx *gorm.DB, specialityID uuid.UUID) (*types.Speciality, error)
	List(ctx context.Context, tx *gorm.DB, name string, offset, limit int) ([]*types.Speciality, int64, error)
	Save(ctx context.Context, tx *gorm.DB, speciality *types.Speciality) error
}

type specialityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpecialityRepo(db *gorm.DB, baseLog *logger.Logger) SpecialityRepo {
	repoLog := baseLog.With("repo", "SpecialityRepo")
	return &specialityRepo{db: db, log: repoLog}
}

func (r *specialityRepo) Create(ctx context.Context, tx *gorm.DB, specialities []*types.Speciality) ([]*types.Speciality, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(specialities) == 0 {
		return []*types.Speciality{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&specialities).Error; err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepo) GetByID(ctx context.Context, tx *gorm.DB, specialityID uuid.UUID) (*types.Speciality, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Speciality
	err := transaction.WithContext(ctx).
		Preload("Levels", orderedLevels).
		Preload("Levels.Courses", orderedCourses).
		First(&result, "id = ?", specialityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *specialityRepo) List(ctx context.Context, tx *gorm.DB, name string, offset, limit int) ([]*types.Speciality, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).Model(&types.Speciality{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Speciality
	if err := query.
		Preload("Levels", orderedLevels).
		Preload("Levels.Courses", orderedCourses).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *specialityRepo) Save(ctx context.Context, tx *gorm.DB, speciality *types.Speciality) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(speciality).Error
}

func orderedLevels(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

func orderedCourses(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}
