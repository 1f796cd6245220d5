package session

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/upstream"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
)

// Service owns the signed-in session lifecycle: explicit init on sign-in,
// explicit teardown on sign-out, and one authoritative snapshot in between.
// Independently-mounted views all read the same Redis-backed session rather
// than ambient per-view storage.
type Service interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	SignOut(ctx context.Context, userID string) error
	Current(ctx context.Context, userID string) (*utils.AuthSession, error)
	UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (*models.User, error)
}

// DefaultSessionService implements Service against the upstream auth
// endpoints and the auth cache.
type DefaultSessionService struct {
	Upstream *upstream.Client
	Cache    *redis.Client
}

// Register creates an upstream account and establishes a session. Weak
// passwords are rejected before any upstream call, mirroring the signup
// form's strength meter.
func (s *DefaultSessionService) Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error) {
	if utils.PasswordStrength(in.Password) == utils.PasswordWeak {
		return nil, "", fmt.Errorf("password too weak: use at least 8 characters mixing letters, digits and symbols")
	}

	user, upstreamToken, err := s.Upstream.Register(ctx, in)
	if err != nil {
		return nil, "", err
	}
	return s.establish(ctx, user, upstreamToken)
}

// SignIn authenticates upstream and establishes a session.
func (s *DefaultSessionService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	user, upstreamToken, err := s.Upstream.Login(ctx, upstream.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}
	return s.establish(ctx, user, upstreamToken)
}

// establish issues the gateway JWT and writes the auth session.
func (s *DefaultSessionService) establish(ctx context.Context, user *models.User, upstreamToken string) (*models.User, string, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, utils.AuthSessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	authSession := utils.AuthSession{
		User:          *user,
		UpstreamToken: upstreamToken,
		TokenHash:     utils.HashToken(token),
		CreatedAt:     time.Now(),
	}
	if err := utils.SaveAuthSession(s.Cache, user.ID, authSession); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut tears the session down. The gateway token becomes unusable
// immediately since middleware checks the stored token hash.
func (s *DefaultSessionService) SignOut(ctx context.Context, userID string) error {
	return utils.DeleteAuthSession(s.Cache, userID)
}

// Current returns the authoritative session snapshot.
func (s *DefaultSessionService) Current(ctx context.Context, userID string) (*utils.AuthSession, error) {
	return utils.GetAuthSession(s.Cache, userID)
}

// UpdateProfile forwards the change upstream and refreshes the cached
// snapshot so every view sees the new profile at once.
func (s *DefaultSessionService) UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (*models.User, error) {
	authSession, err := utils.GetAuthSession(s.Cache, userID)
	if err != nil {
		return nil, fmt.Errorf("no active session: %w", err)
	}

	user, err := s.Upstream.UpdateProfile(ctx, authSession.UpstreamToken, in)
	if err != nil {
		return nil, err
	}

	authSession.User = *user
	if err := utils.SaveAuthSession(s.Cache, userID, *authSession); err != nil {
		return nil, err
	}
	return user, nil
}
