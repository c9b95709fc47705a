package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Digital-Coach-Women/APP-API/internal/data/repos/testutil"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
	"github.com/Digital-Coach-Women/APP-API/internal/requestdata"
)

func newAuthService(tb testing.TB, tx *gorm.DB) AuthService {
	log := testutil.Logger(tb)
	return NewAuthService(
		tx, log,
		userrepo.NewUserRepo(tx, log),
		userrepo.NewUserTokenRepo(tx, log),
		"test-secret", time.Hour, 24*time.Hour,
	)
}

func TestRegisterValidatesInput(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "", Password: "longenough"})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@test.local", Password: "short"})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestRegisterNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "  Ana@Test.Local ",
		Password: "supersecret",
		Names:    "Ana",
		LastName: "Prueba",
	})
	require.NoError(t, err)
	require.Equal(t, "ana@test.local", user.Email)

	_, err = svc.Register(ctx, RegisterInput{Email: "ana@test.local", Password: "supersecret"})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestLoginIssuesTokensAndRejectsBadPassword(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "login@test.local", Password: "supersecret"})
	require.NoError(t, err)

	access, refresh, err := svc.Login(ctx, "login@test.local", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	_, _, err = svc.Login(ctx, "login@test.local", "wrongpassword")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody@test.local", "supersecret")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	gotCtx, err := svc.SetContextFromToken(ctx, access)
	require.NoError(t, err)
	rd := requestdata.GetRequestData(gotCtx)
	require.NotNil(t, rd)
	require.Equal(t, user.ID, rd.UserID)
}

func TestRefreshRotatesTheStoredToken(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "refresh@test.local", Password: "supersecret"})
	require.NoError(t, err)
	_, refresh, err := svc.Login(ctx, "refresh@test.local", "supersecret")
	require.NoError(t, err)

	access2, refresh2, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	require.NotEmpty(t, access2)
	require.NotEqual(t, refresh, refresh2)

	// The old refresh token is gone after rotation.
	_, _, err = svc.Refresh(ctx, refresh)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogoutInvalidatesRefreshTokens(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "logout@test.local", Password: "supersecret"})
	require.NoError(t, err)
	_, refresh, err := svc.Login(ctx, "logout@test.local", "supersecret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user.ID))

	_, _, err = svc.Refresh(ctx, refresh)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newAuthService(t, tx)

	_, err := svc.SetContextFromToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.GetUser(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
