package service

import (
	"context"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/session"
)

type IAuthService interface {
	Logout(ctx context.Context, sessionId string) (*dto.LogoutResponse, error)
}

type authService struct {
	sessionStore *session.Store
}

func NewAuthService(sessionStore *session.Store) IAuthService {
	return &authService{
		sessionStore: sessionStore,
	}
}

// Logout is idempotent: clearing an already-cleared session succeeds and
// reports false.
func (c *authService) Logout(ctx context.Context, sessionId string) (*dto.LogoutResponse, error) {
	removed, err := c.sessionStore.Clear(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return &dto.LogoutResponse{LoggedOut: removed}, nil
}
