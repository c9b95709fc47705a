package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	chatrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/chat"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
)

// MessageSink is the external append-only message store. Append returns the
// sink's receipt ID; a sink failure must abort the send, so the relational
// copy is only written after a successful append.
type MessageSink interface {
	Append(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderName, message string) (string, error)
}

type ChatService interface {
	Contacts(ctx context.Context, userID uuid.UUID, page, limit int) (*Page[*types.Chat], error)
	Messages(ctx context.Context, userID, contactID uuid.UUID, page, limit int) (*Page[*types.ChatMessage], error)
	Send(ctx context.Context, userID, contactID uuid.UUID, message string) (*types.ChatMessage, error)
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
}

type chatService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    userrepo.UserRepo
	chatRepo    chatrepo.ChatRepo
	messageRepo chatrepo.ChatMessageRepo
	sink        MessageSink
}

func NewChatService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	chatRepo chatrepo.ChatRepo,
	messageRepo chatrepo.ChatMessageRepo,
	sink MessageSink,
) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		sink:        sink,
	}
}

func (s *chatService) Contacts(ctx context.Context, userID uuid.UUID, page, limit int) (*Page[*types.Chat], error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.chatRepo.ListByUser(ctx, nil, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.Chat]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

func (s *chatService) Messages(ctx context.Context, userID, contactID uuid.UUID, page, limit int) (*Page[*types.ChatMessage], error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	chat, err := s.getOrCreateChat(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	page, limit, offset := NormalizePage(page, limit)
	rows, total, err := s.messageRepo.ListByChat(ctx, nil, chat.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page[*types.ChatMessage]{Items: rows, Total: total, Page: page, Limit: limit}, nil
}

func (s *chatService) Send(ctx context.Context, userID, contactID uuid.UUID, message string) (*types.ChatMessage, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	sender, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	chat, err := s.getOrCreateChat(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	// Sink first. Without a receipt nothing is persisted locally.
	receipt, err := s.sink.Append(ctx, chat.ID, userID, sender.FullName(), message)
	if err != nil {
		s.log.Warn("message sink append failed", "chat_id", chat.ID, "error", err)
		return nil, fmt.Errorf("%w: message sink: %v", apperrors.ErrUnavailable, err)
	}

	metadata, _ := json.Marshal(map[string]string{
		"sink_receipt": receipt,
		"appended_at":  time.Now().UTC().Format(time.RFC3339),
	})

	row := &types.ChatMessage{
		ID:       uuid.New(),
		ChatID:   chat.ID,
		UserID:   userID,
		Message:  message,
		Metadata: datatypes.JSON(metadata),
	}
	if _, err := s.messageRepo.Create(ctx, nil, []*types.ChatMessage{row}); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *chatService) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	if userID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}

	row, err := s.messageRepo.GetByID(ctx, nil, messageID)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return apperrors.ErrForbidden
	}
	return s.messageRepo.DeleteByID(ctx, nil, messageID)
}

func (s *chatService) getOrCreateChat(ctx context.Context, userID, contactID uuid.UUID) (*types.Chat, error) {
	chat, err := s.chatRepo.GetByPair(ctx, nil, userID, contactID)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	chat = &types.Chat{
		ID:      uuid.New(),
		UserID1: userID,
		UserID2: contactID,
	}
	if _, err := s.chatRepo.Create(ctx, nil, []*types.Chat{chat}); err != nil {
		return nil, err
	}
	return chat, nil
}
