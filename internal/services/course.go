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

type CourseInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Video       string    `json:"video"`
	Process     string    `json:"process"`
	Order       int       `json:"order"`
	LevelID     uuid.UUID `json:"speciality_level_id"`
}

type CourseService interface {
	List(ctx context.Context, title string, page, limit int) (*Page[*types.Course], error)
	Get(ctx context.Context, courseID uuid.UUID) (*types.Course, error)
	Create(ctx context.Context, input CourseInput) (*types.Course, error)
	Update(ctx context.Context, courseID uuid.UUID, input CourseInput) (*types.Course, error)
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo catalogrepo.CourseRepo
}

func NewCourseService(db *gorm.DB, log *logger.Logger, courseRepo catalogrepo.CourseRepo) CourseService {
	serviceLog := log.With("service", "CourseService")
	return &courseService{db: db, log: serviceLog, courseRepo: courseRepo}
}

func (s *courseService) List(ctx context.Context, title string, page, limit int) (*Page[*types.Course], error) {
	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.courseRepo.List(ctx, nil, title, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.Course]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

func (s *courseService) Get(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
	return s.courseRepo.GetByID(ctx, nil, courseID)
}

func (s *courseService) Create(ctx context.Context, input CourseInput) (*types.Course, error) {
	if strings.TrimSpace(input.Title) == "" || input.LevelID == uuid.Nil {
		return nil, apperrors.ErrInvalidArgument
	}

	course := &types.Course{
		ID:                uuid.New(),
		SpecialityLevelID: input.LevelID,
		Title:             input.Title,
		Description:       input.Description,
		Video:             input.Video,
		Process:           input.Process,
		Order:             input.Order,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.courseRepo.Create(ctx, tx, []*types.Course{course})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, nil, course.ID)
}

func (s *courseService) Update(ctx context.Context, courseID uuid.UUID, input CourseInput) (*types.Course, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.GetByID(ctx, tx, courseID)
		if err != nil {
			return err
		}
		course.Title = input.Title
		course.Description = input.Description
		course.Video = input.Video
		course.Process = input.Process
		course.Order = input.Order
		if input.LevelID != uuid.Nil {
			course.SpecialityLevelID = input.LevelID
		}
		return s.courseRepo.Save(ctx, tx, course)
	})
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, nil, courseID)
}
