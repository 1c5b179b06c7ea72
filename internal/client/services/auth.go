package services

import (
	"context"
	"fmt"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
	"github.com/stitchdesk/stitchdesk/internal/client/token"
	"github.com/stitchdesk/stitchdesk/internal/logging"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist the returned token.
//   - Register: create an account and persist the returned token.
//   - Logout: end the session; the local token is always cleared, even when
//     the server call fails.
//   - Ping: check backend liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.Account, error)
	Register(ctx context.Context, name, email string, password []byte) (*models.Account, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	api    *api.Client
	tokens token.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store.
func NewAuthService(apiClient *api.Client, tokens token.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, tokens: tokens, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string         `json:"token"`
	User    models.Account `json:"user"`
	Message string         `json:"message,omitempty"`
}

// Login authenticates against the backend and persists the returned token.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Account, error) {
	var resp authResponse
	req := loginRequest{Email: email, Password: string(password)}
	if err := a.api.Post(ctx, "/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.tokens.Set(resp.Token); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}
	return &resp.User, nil
}

// Register creates a new account on the server and persists the returned
// token, leaving the user logged in.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.Account, error) {
	var resp authResponse
	req := registerRequest{Name: name, Email: email, Password: string(password)}
	if err := a.api.Post(ctx, "/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	if err := a.tokens.Set(resp.Token); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}
	return &resp.User, nil
}

// Logout ends the session. A failure of the server call is logged and
// swallowed: the user must always be able to end the local session even if
// the backend is unreachable. The local token is cleared regardless.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Post(ctx, "/logout", nil, nil); err != nil {
		a.log.Warn(ctx, "logout call failed, clearing local session anyway", "error", err)
	}
	return a.tokens.Clear()
}

// Ping checks backend liveness via the health endpoint.
func (a *authService) Ping(ctx context.Context) error {
	return a.api.Get(ctx, "/health", nil, nil)
}
