package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/service"
	"employee-system/pkg/types"
	"employee-system/pkg/utils"
)

type fakeUserRepository struct {
	users map[uint64]entities.User
}

func (r *fakeUserRepository) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepository) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

func newAuthServiceForTest(t *testing.T) (AuthServiceInterface, service.JWTService) {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := &fakeUserRepository{users: map[uint64]entities.User{
		7: {
			ID:           7,
			Fio:          "Test User",
			Email:        "user@example.com",
			PasswordHash: hash,
			Role:         types.RoleUser,
			OfficeID:     null.Uint64From(2),
		},
	}}
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour)
	return NewAuthService(users, jwtSvc, zap.NewNop()), jwtSvc
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, jwtSvc := newAuthServiceForTest(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := jwtSvc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, types.RoleUser, claims.Role)
	assert.Equal(t, uint64(2), claims.OfficeID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := jwtSvc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 401, httpCode(t, err))

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, 401, httpCode(t, err))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: pair.AccessToken})
	require.Error(t, err)
	assert.Equal(t, 401, httpCode(t, err))
}

func TestRefreshReissuesTokens(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	renewed, err := svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.NotEmpty(t, renewed.RefreshToken)
}
