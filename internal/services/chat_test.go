package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	chatrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/chat"
	"github.com/Digital-Coach-Women/APP-API/internal/data/repos/testutil"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
)

type fakeSink struct {
	appendCalls int
	lastChatID  uuid.UUID
	lastSender  string
	failWith    error
}

func (s *fakeSink) Append(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderName, message string) (string, error) {
	s.appendCalls++
	s.lastChatID = chatID
	s.lastSender = senderName
	if s.failWith != nil {
		return "", s.failWith
	}
	return fmt.Sprintf("receipt-%d", s.appendCalls), nil
}

func newChatService(tb testing.TB, tx *gorm.DB, sink MessageSink) ChatService {
	log := testutil.Logger(tb)
	return NewChatService(
		tx, log,
		userrepo.NewUserRepo(tx, log),
		chatrepo.NewChatRepo(tx, log),
		chatrepo.NewChatMessageRepo(tx, log),
		sink,
	)
}

func TestSendAppendsToSinkBeforePersisting(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	sink := &fakeSink{}
	svc := newChatService(t, tx, sink)

	alice := testutil.SeedUser(t, ctx, tx, "chat-alice@test.local")
	bob := testutil.SeedUser(t, ctx, tx, "chat-bob@test.local")

	msg, err := svc.Send(ctx, alice.ID, bob.ID, "hola")
	require.NoError(t, err)
	require.Equal(t, 1, sink.appendCalls)
	require.Equal(t, msg.ChatID, sink.lastChatID)
	require.Equal(t, alice.FullName(), sink.lastSender)

	var metadata map[string]string
	require.NoError(t, json.Unmarshal(msg.Metadata, &metadata))
	require.Equal(t, "receipt-1", metadata["sink_receipt"])

	var count int64
	require.NoError(t, tx.WithContext(ctx).Model(&types.ChatMessage{}).
		Where("chat_id = ?", msg.ChatID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSendAbortsWhenSinkFails(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	sink := &fakeSink{failWith: errors.New("stream down")}
	svc := newChatService(t, tx, sink)

	alice := testutil.SeedUser(t, ctx, tx, "chat-down-a@test.local")
	bob := testutil.SeedUser(t, ctx, tx, "chat-down-b@test.local")

	_, err := svc.Send(ctx, alice.ID, bob.ID, "hola")
	require.ErrorIs(t, err, apperrors.ErrUnavailable)

	// Nothing reaches the relational store without a sink receipt.
	var count int64
	require.NoError(t, tx.WithContext(ctx).Model(&types.ChatMessage{}).
		Where("user_id = ?", alice.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newChatService(t, tx, &fakeSink{})

	_, err := svc.Send(context.Background(), uuid.New(), uuid.New(), "   ")
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestMessagesReusesPairChatFromEitherSide(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	sink := &fakeSink{}
	svc := newChatService(t, tx, sink)

	alice := testutil.SeedUser(t, ctx, tx, "chat-pair-a@test.local")
	bob := testutil.SeedUser(t, ctx, tx, "chat-pair-b@test.local")

	first, err := svc.Send(ctx, alice.ID, bob.ID, "hola")
	require.NoError(t, err)
	second, err := svc.Send(ctx, bob.ID, alice.ID, "que tal")
	require.NoError(t, err)
	require.Equal(t, first.ChatID, second.ChatID)

	page, err := svc.Messages(ctx, alice.ID, bob.ID, 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)

	var chats int64
	require.NoError(t, tx.WithContext(ctx).Model(&types.Chat{}).
		Where("user_id_1 IN (?, ?)", alice.ID, bob.ID).Count(&chats).Error)
	require.EqualValues(t, 1, chats)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newChatService(t, tx, &fakeSink{})

	alice := testutil.SeedUser(t, ctx, tx, "chat-del-a@test.local")
	bob := testutil.SeedUser(t, ctx, tx, "chat-del-b@test.local")

	msg, err := svc.Send(ctx, alice.ID, bob.ID, "mio")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, bob.ID, msg.ID), apperrors.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, alice.ID, msg.ID))
	require.ErrorIs(t, svc.Delete(ctx, alice.ID, msg.ID), apperrors.ErrNotFound)
}
