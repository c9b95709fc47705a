package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/catalog"
	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type LevelInput struct {
	Name         string    `json:"name"`
	Cup          string    `json:"cup"`
	Order        int       `json:"order"`
	IsBasic      bool      `json:"is_basic"`
	SpecialityID uuid.UUID `json:"speciality_id"`
}

type LevelService interface {
	List(ctx context.Context, name string, page, limit int) (*Page[*types.SpecialityLevel], error)
	Get(ctx context.Context, levelID uuid.UUID) (*types.SpecialityLevel, error)
	Create(ctx context.Context, input LevelInput) (*types.SpecialityLevel, error)
	Update(ctx context.Context, levelID uuid.UUID, input LevelInput) (*types.SpecialityLevel, error)
}

type levelService struct {
	db        *gorm.DB
	log       *logger.Logger
	levelRepo catalogrepo.SpecialityLevelRepo
}

func NewLevelService(db *gorm.DB, log *logger.Logger, levelRepo catalogrepo.SpecialityLevelRepo) LevelService {
	serviceLog := log.With("service", "LevelService")
	return &levelService{db: db, log: serviceLog, levelRepo: levelRepo}
}

func (s *levelService) List(ctx context.Context, name string, page, limit int) (*Page[*types.SpecialityLevel], error) {
	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.levelRepo.List(ctx, nil, name, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.SpecialityLevel]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

func (s *levelService) Get(ctx context.Context, levelID uuid.UUID) (*types.SpecialityLevel, error) {
	return s.levelRepo.GetWithCourses(ctx, nil, levelID)
}

func (s *levelService) Create(ctx context.Context, input LevelInput) (*types.SpecialityLevel, error) {
	if strings.TrimSpace(input.Name) == "" || input.SpecialityID == uuid.Nil {
		return nil, apperrors.ErrInvalidArgument
	}

	level := &types.SpecialityLevel{
		ID:           uuid.New(),
		SpecialityID: input.SpecialityID,
		Name:         input.Name,
		CupImage:     input.Cup,
		Order:        input.Order,
		IsBasic:      input.IsBasic,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.levelRepo.Create(ctx, tx, []*types.SpecialityLevel{level})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.levelRepo.GetWithCourses(ctx, nil, level.ID)
}

func (s *levelService) Update(ctx context.Context, levelID uuid.UUID, input LevelInput) (*types.SpecialityLevel, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		level, err := s.levelRepo.GetWithCourses(ctx, tx, levelID)
		if err != nil {
			return err
		}
		level.Name = input.Name
		level.CupImage = input.Cup
		level.Order = input.Order
		if input.SpecialityID != uuid.Nil {
			level.SpecialityID = input.SpecialityID
		}
		return s.levelRepo.Save(ctx, tx, level)
	})
	if err != nil {
		return nil, err
	}
	return s.levelRepo.GetWithCourses(ctx, nil, levelID)
}
