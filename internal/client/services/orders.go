package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
	"github.com/stitchdesk/stitchdesk/internal/client/models"
	"github.com/stitchdesk/stitchdesk/internal/common"
)

// OrderInput carries the writable fields of a production order. DesignFile,
// when present, forces the request into multipart form.
type OrderInput struct {
	ClientID    int64   `json:"client_id"`
	BrandID     int64   `json:"brand_id,omitempty"`
	GarmentType string  `json:"garment_type"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	DesignFile  *Upload `json:"-"`
}

func (in OrderInput) form() api.Form {
	f := api.Form{Fields: map[string]string{
		"client_id":    strconv.FormatInt(in.ClientID, 10),
		"garment_type": in.GarmentType,
		"description":  in.Description,
		"quantity":     strconv.Itoa(in.Quantity),
		"status":       in.Status,
		"priority":     in.Priority,
		"due_date":     in.DueDate,
	}}
	if in.BrandID != 0 {
		f.Fields["brand_id"] = strconv.FormatInt(in.BrandID, 10)
	}
	if in.DesignFile != nil {
		f.Attachments = append(f.Attachments, api.Attachment{
			Field:       "design_file",
			FileName:    in.DesignFile.FileName,
			ContentType: in.DesignFile.ContentType,
			Reader:      in.DesignFile.Reader,
		})
	}
	return f
}

// OrderService exposes CRUD for production orders.
type OrderService interface {
	List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Order], error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, in OrderInput, progress api.ProgressFunc) (*models.Order, error)
	Update(ctx context.Context, id int64, in OrderInput, progress api.ProgressFunc) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	api *api.Client
}

func NewOrderService(apiClient *api.Client) OrderService {
	return &orderService{api: apiClient}
}

func (s *orderService) List(ctx context.Context, page, perPage int, filters map[string]string) (*models.Page[models.Order], error) {
	var out models.Page[models.Order]
	if err := s.api.Get(ctx, "/orders", listQuery(page, perPage, filters), &out); err != nil {
		return nil, fmt.Errorf("list orders error: %w", err)
	}
	return &out, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Single[models.Order]
	if err := s.api.Get(ctx, "/orders/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, fmt.Errorf("get order error: %w", err)
	}
	return &out.Data, nil
}

func (s *orderService) Create(ctx context.Context, in OrderInput, progress api.ProgressFunc) (*models.Order, error) {
	var out models.Single[models.Order]
	if in.DesignFile != nil {
		if err := s.api.UploadFile(ctx, "/orders", in.form(), progress, &out); err != nil {
			return nil, fmt.Errorf("create order error: %w", err)
		}
	} else {
		if err := s.api.Post(ctx, "/orders", in, &out); err != nil {
			return nil, fmt.Errorf("create order error: %w", err)
		}
	}
	return &out.Data, nil
}

func (s *orderService) Update(ctx context.Context, id int64, in OrderInput, progress api.ProgressFunc) (*models.Order, error) {
	path := "/orders/" + strconv.FormatInt(id, 10)
	var out models.Single[models.Order]
	if in.DesignFile != nil {
		f := in.form()
		f.Fields[common.MethodOverrideField] = "PUT"
		if err := s.api.UploadFile(ctx, path, f, progress, &out); err != nil {
			return nil, fmt.Errorf("update order error: %w", err)
		}
	} else {
		if err := s.api.Put(ctx, path, in, &out); err != nil {
			return nil, fmt.Errorf("update order error: %w", err)
		}
	}
	return &out.Data, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/orders/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete order error: %w", err)
	}
	return nil
}
