package http

import (
	"context"

	"kig-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

func contextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// userFromContext returns the authenticated user placed by the auth
// middleware, or nil when the request carried no valid token.
func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}
