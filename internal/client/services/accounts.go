package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
)

// AccountInput carries the writable fields of an employee account.
// Password is sent on create; leave it empty on update to keep the
// existing one.
type AccountInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact_number,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password,omitempty"`
}

// AccountService exposes CRUD for employee accounts.
type AccountService interface {
	List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Account], error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	Create(ctx context.Context, in AccountInput) (*models.Account, error)
	Update(ctx context.Context, id int64, in AccountInput) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type accountService struct {
	api *api.Client
}

func NewAccountService(apiClient *api.Client) AccountService {
	return &accountService{api: apiClient}
}

func (s *accountService) List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Account], error) {
	var out models.Page[models.Account]
	if err := s.api.Get(ctx, "/accounts", listQuery(page, perPage, filters), &out); err != nil {
		return nil, fmt.Errorf("list accounts error: %w", err)
	}
	return &out, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var out models.Single[models.Account]
	if err := s.api.Get(ctx, "/accounts/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, fmt.Errorf("get account error: %w", err)
	}
	return &out.Data, nil
}

func (s *accountService) Create(ctx context.Context, in AccountInput) (*models.Account, error) {
	var out models.Single[models.Account]
	if err := s.api.Post(ctx, "/accounts", in, &out); err != nil {
		return nil, fmt.Errorf("create account error: %w", err)
	}
	return &out.Data, nil
}

func (s *accountService) Update(ctx context.Context, id int64, in AccountInput) (*models.Account, error) {
	var out models.Single[models.Account]
	if err := s.api.Put(ctx, "/accounts/"+strconv.FormatInt(id, 10), in, &out); err != nil {
		return nil, fmt.Errorf("update account error: %w", err)
	}
	return &out.Data, nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/accounts/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete account error: %w", err)
	}
	return nil
}
