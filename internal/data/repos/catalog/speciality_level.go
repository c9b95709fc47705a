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

type SpecialityLevelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, levels []*types.SpecialityLevel) ([]*types.SpecialityLevel, error)
	// GetWithCourses is the catalog read used by enrollment: the level with
	// courses ordered, and each course's lessons ordered.
	GetWithCourses(ctx context.Context, tx *gorm.DB, levelID uuid.UUID) (*types.SpecialityLevel, error)
	List(ctx context.Context, tx *gorm.DB, name string, offset, limit int) ([]*types.SpecialityLevel, int64, error)
	Save(ctx context.Context, tx *gorm.DB, level *types.SpecialityLevel) error
}

type specialityLevelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpecialityLevelRepo(db *gorm.DB, baseLog *logger.Logger) SpecialityLevelRepo {
	repoLog := baseLog.With("repo", "SpecialityLevelRepo")
	return &specialityLevelRepo{db: db, log: repoLog}
}

func (r *specialityLevelRepo) Create(ctx context.Context, tx *gorm.DB, levels []*types.SpecialityLevel) ([]*types.SpecialityLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(levels) == 0 {
		return []*types.SpecialityLevel{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *specialityLevelRepo) GetWithCourses(ctx context.Context, tx *gorm.DB, levelID uuid.UUID) (*types.SpecialityLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.SpecialityLevel
	err := transaction.WithContext(ctx).
		Preload("Speciality").
		Preload("Courses", orderedCourses).
		Preload("Courses.Lessons", orderedLessons).
		First(&result, "id = ?", levelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *specialityLevelRepo) List(ctx context.Context, tx *gorm.DB, name string, offset, limit int) ([]*types.SpecialityLevel, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).Model(&types.SpecialityLevel{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.SpecialityLevel
	if err := query.
		Preload("Courses", orderedCourses).
		Preload("Courses.Lessons", orderedLessons).
		Order(`"order" ASC`).
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *specialityLevelRepo) Save(ctx context.Context, tx *gorm.DB, level *types.SpecialityLevel) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(level).Error
}

func orderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}
