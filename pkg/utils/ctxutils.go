package utils

import (
	"context"

	"employee-system/pkg/contextkeys"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

func GetCallerFromCtx(ctx context.Context) (types.Caller, error) {
	caller, ok := ctx.Value(contextkeys.CallerKey).(types.Caller)
	if !ok {
		return types.Caller{}, apperrors.ErrCallerNotFoundInContext
	}
	return caller, nil
}

func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
