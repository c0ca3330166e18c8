package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("unit-test-secret", time.Minute, time.Hour)

	caller := types.Caller{ID: 42, Role: types.RoleAdmin, OfficeID: 3}
	access, refresh, err := svc.GenerateTokens(caller)
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.False(t, claims.IsRefreshToken)
	assert.Equal(t, caller, claims.Caller())

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
	assert.Equal(t, caller, refreshClaims.Caller())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute, time.Hour)
	verifier := NewJWTService("secret-b", time.Minute, time.Hour)

	access, _, err := issuer.GenerateTokens(types.Caller{ID: 1, Role: types.RoleUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("unit-test-secret", -time.Minute, -time.Minute)

	access, _, err := svc.GenerateTokens(types.Caller{ID: 1, Role: types.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("unit-test-secret", time.Minute, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
