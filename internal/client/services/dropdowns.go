package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
)

// DropdownInput carries the writable fields of a dropdown setting.
type DropdownInput struct {
	Category  string `json:"category"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order,omitempty"`
}

// DropdownService exposes CRUD for dropdown-driven configuration values.
type DropdownService interface {
	List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.DropdownSetting], error)
	GetByID(ctx context.Context, id int64) (*models.DropdownSetting, error)
	Create(ctx context.Context, in DropdownInput) (*models.DropdownSetting, error)
	Update(ctx context.Context, id int64, in DropdownInput) (*models.DropdownSetting, error)
	Delete(ctx context.Context, id int64) error
}

type dropdownService struct {
	api *api.Client
}

func NewDropdownService(apiClient *api.Client) DropdownService {
	return &dropdownService{api: apiClient}
}

func (s *dropdownService) List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.DropdownSetting], error) {
	var out models.Page[models.DropdownSetting]
	if err := s.api.Get(ctx, "/dropdown-settings", listQuery(page, perPage, filters), &out); err != nil {
		return nil, fmt.Errorf("list dropdown settings error: %w", err)
	}
	return &out, nil
}

func (s *dropdownService) GetByID(ctx context.Context, id int64) (*models.DropdownSetting, error) {
	var out models.Single[models.DropdownSetting]
	if err := s.api.Get(ctx, "/dropdown-settings/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, fmt.Errorf("get dropdown setting error: %w", err)
	}
	return &out.Data, nil
}

func (s *dropdownService) Create(ctx context.Context, in DropdownInput) (*models.DropdownSetting, error) {
	var out models.Single[models.DropdownSetting]
	if err := s.api.Post(ctx, "/dropdown-settings", in, &out); err != nil {
		return nil, fmt.Errorf("create dropdown setting error: %w", err)
	}
	return &out.Data, nil
}

func (s *dropdownService) Update(ctx context.Context, id int64, in DropdownInput) (*models.DropdownSetting, error) {
	var out models.Single[models.DropdownSetting]
	if err := s.api.Put(ctx, "/dropdown-settings/"+strconv.FormatInt(id, 10), in, &out); err != nil {
		return nil, fmt.Errorf("update dropdown setting error: %w", err)
	}
	return &out.Data, nil
}

func (s *dropdownService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/dropdown-settings/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete dropdown setting error: %w", err)
	}
	return nil
}
