package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

type ChatRepo interface {
	Create(ctx context.Context, tx *gorm.DB, chats []*types.Chat) ([]*types.Chat, error)
	// GetByPair matches both permutations of the user pair.
	GetByPair(ctx context.Context, tx *gorm.DB, userA, userB uuid.UUID) (*types.Chat, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Chat, int64, error)
}

type chatRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatRepo(db *gorm.DB, baseLog *logger.Logger) ChatRepo {
	repoLog := baseLog.With("repo", "ChatRepo")
	return &chatRepo{db: db, log: repoLog}
}

func (r *chatRepo) Create(ctx context.Context, tx *gorm.DB, chats []*types.Chat) ([]*types.Chat, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(chats) == 0 {
		return []*types.Chat{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepo) GetByPair(ctx context.Context, tx *gorm.DB, userA, userB uuid.UUID) (*types.Chat, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Chat
	err := transaction.WithContext(ctx).
		Where("(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)", userA, userB, userB, userA).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *chatRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Chat, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Chat{}).
		Where("user_id_1 = ? OR user_id_2 = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Chat
	if err := query.
		Preload("User1").
		Preload("User2").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
