package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
	"github.com/stitchdesk/stitchdesk/internal/common"
)

// BrandInput is a brand sub-record on a client create/update. Logo, when
// present, forces the whole request into multipart form.
type BrandInput struct {
	Name string  `json:"name"`
	Logo *Upload `json:"-"`
}

// ClientInput carries the writable fields of a client record.
type ClientInput struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Contact  string       `json:"contact_number"`
	Street   string       `json:"street"`
	City     string       `json:"city"`
	Province string       `json:"province"`
	ZipCode  string       `json:"zip_code"`
	Status   string       `json:"status"`
	Brands   []BrandInput `json:"brands,omitempty"`
}

func (in ClientInput) hasAttachments() bool {
	for _, b := range in.Brands {
		if b.Logo != nil {
			return true
		}
	}
	return false
}

// form flattens the input into multipart fields. Brand scalars use the
// indexed field convention (brands[0][name]) the backend expects.
func (in ClientInput) form() api.Form {
	f := api.Form{Fields: map[string]string{
		"name":           in.Name,
		"email":          in.Email,
		"contact_number": in.Contact,
		"street":         in.Street,
		"city":           in.City,
		"province":       in.Province,
		"zip_code":       in.ZipCode,
		"status":         in.Status,
	}}
	for i, b := range in.Brands {
		f.Fields[fmt.Sprintf("brands[%d][name]", i)] = b.Name
		if b.Logo != nil {
			f.Attachments = append(f.Attachments, api.Attachment{
				Field:       fmt.Sprintf("brands[%d][logo]", i),
				FileName:    b.Logo.FileName,
				ContentType: b.Logo.ContentType,
				Reader:      b.Logo.Reader,
			})
		}
	}
	return f
}

// ClientService exposes CRUD for apparel-business clients.
type ClientService interface {
	List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Client], error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Create(ctx context.Context, in ClientInput, progress api.ProgressFunc) (*models.Client, error)
	Update(ctx context.Context, id int64, in ClientInput, progress api.ProgressFunc) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	api *api.Client
}

func NewClientService(apiClient *api.Client) ClientService {
	return &clientService{api: apiClient}
}

func (s *clientService) List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Client], error) {
	var out models.Page[models.Client]
	if err := s.api.Get(ctx, "/clients", listQuery(page, perPage, filters), &out); err != nil {
		return nil, fmt.Errorf("list clients error: %w", err)
	}
	return &out, nil
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var out models.Single[models.Client]
	if err := s.api.Get(ctx, "/clients/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, fmt.Errorf("get client error: %w", err)
	}
	return &out.Data, nil
}

func (s *clientService) Create(ctx context.Context, in ClientInput, progress api.ProgressFunc) (*models.Client, error) {
	var out models.Single[models.Client]
	if in.hasAttachments() {
		if err := s.api.UploadFile(ctx, "/clients", in.form(), progress, &out); err != nil {
			return nil, fmt.Errorf("create client error: %w", err)
		}
	} else {
		if err := s.api.Post(ctx, "/clients", in, &out); err != nil {
			return nil, fmt.Errorf("create client error: %w", err)
		}
	}
	return &out.Data, nil
}

func (s *clientService) Update(ctx context.Context, id int64, in ClientInput, progress api.ProgressFunc) (*models.Client, error) {
	path := "/clients/" + strconv.FormatInt(id, 10)
	var out models.Single[models.Client]
	if in.hasAttachments() {
		// Multipart PUT bodies are not parsed by the backend; tunnel the
		// verb through the override field on a POST.
		f := in.form()
		f.Fields[common.MethodOverrideField] = "PUT"
		if err := s.api.UploadFile(ctx, path, f, progress, &out); err != nil {
			return nil, fmt.Errorf("update client error: %w", err)
		}
	} else {
		if err := s.api.Put(ctx, path, in, &out); err != nil {
			return nil, fmt.Errorf("update client error: %w", err)
		}
	}
	return &out.Data, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/clients/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete client error: %w", err)
	}
	return nil
}
