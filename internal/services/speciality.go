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

type SpecialityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SpecialityService interface {
	List(ctx context.Context, name string, page, limit int) (*Page[*types.Speciality], error)
	Get(ctx context.Context, specialityID uuid.UUID) (*types.Speciality, error)
	Create(ctx context.Context, input SpecialityInput) (*types.Speciality, error)
	Update(ctx context.Context, specialityID uuid.UUID, input SpecialityInput) (*types.Speciality, error)
}

type specialityService struct {
	db             *gorm.DB
	log            *logger.Logger
	specialityRepo catalogrepo.SpecialityRepo
}

func NewSpecialityService(db *gorm.DB, log *logger.Logger, specialityRepo catalogrepo.SpecialityRepo) SpecialityService {
	serviceLog := log.With("service", "SpecialityService")
	return &specialityService{db: db, log: serviceLog, specialityRepo: specialityRepo}
}

func (s *specialityService) List(ctx context.Context, name string, page, limit int) (*Page[*types.Speciality], error) {
	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.specialityRepo.List(ctx, nil, name, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.Speciality]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

func (s *specialityService) Get(ctx context.Context, specialityID uuid.UUID) (*types.Speciality, error) {
	return s.specialityRepo.GetByID(ctx, nil, specialityID)
}

func (s *specialityService) Create(ctx context.Context, input SpecialityInput) (*types.Speciality, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	speciality := &types.Speciality{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.specialityRepo.Create(ctx, tx, []*types.Speciality{speciality})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.specialityRepo.GetByID(ctx, nil, speciality.ID)
}

func (s *specialityService) Update(ctx context.Context, specialityID uuid.UUID, input SpecialityInput) (*types.Speciality, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		speciality, err := s.specialityRepo.GetByID(ctx, tx, specialityID)
		if err != nil {
			return err
		}
		speciality.Name = input.Name
		speciality.Description = input.Description
		speciality.Image = input.Image
		return s.specialityRepo.Save(ctx, tx, speciality)
	})
	if err != nil {
		return nil, err
	}
	return s.specialityRepo.GetByID(ctx, nil, specialityID)
}
