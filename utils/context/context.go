package context

import (
	"context"

	"github.com/muhammadheryan/inventory-management/constant"
)

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}
