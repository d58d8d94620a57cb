package inventoryapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/inventory-management/model"
)

type ArrivalService interface {
	GetArrivals(ctx context.Context) ([]model.ArrivalViewModel, error)
	SearchArrivals(ctx context.Context, name string, date *time.Time) ([]model.ArrivalViewModel, error)
	GetArrivalByID(ctx context.Context, id int64) (*model.ArrivalViewModel, error)
	// GetProductName loads the product a new receipt is being registered for.
	GetProductName(ctx context.Context, productID int64) (*model.ProductNameViewModel, error)
	CreateArrival(ctx context.Context, arrival *model.ArrivalViewModel) (*Response, error)
	UpdateArrival(ctx context.Context, arrival *model.ArrivalViewModel) (*Response, error)
	DeleteArrival(ctx context.Context, id int64) (*Response, error)
}

type arrivalService struct {
	client *Client
}

func NewArrivalService(client *Client) ArrivalService {
	return &arrivalService{client: client}
}

func (s *arrivalService) GetArrivals(ctx context.Context) ([]model.ArrivalViewModel, error) {
	var items []model.ArrivalViewModel
	if err := s.client.getJSON(ctx, "/arrival", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *arrivalService) SearchArrivals(ctx context.Context, name string, date *time.Time) ([]model.ArrivalViewModel, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if date != nil {
		query.Set("date", date.Format("2006-01-02"))
	}

	var items []model.ArrivalViewModel
	if err := s.client.getJSON(ctx, "/arrival/search", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *arrivalService) GetArrivalByID(ctx context.Context, id int64) (*model.ArrivalViewModel, error) {
	var item model.ArrivalViewModel
	if err := s.client.getJSON(ctx, fmt.Sprintf("/arrival/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *arrivalService) GetProductName(ctx context.Context, productID int64) (*model.ProductNameViewModel, error) {
	var item model.ProductNameViewModel
	if err := s.client.getJSON(ctx, fmt.Sprintf("/products/%d", productID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *arrivalService) CreateArrival(ctx context.Context, arrival *model.ArrivalViewModel) (*Response, error) {
	return s.client.do(ctx, http.MethodPost, "/arrival", nil, arrival)
}

func (s *arrivalService) UpdateArrival(ctx context.Context, arrival *model.ArrivalViewModel) (*Response, error) {
	return s.client.do(ctx, http.MethodPut, "/arrival", nil, arrival)
}

func (s *arrivalService) DeleteArrival(ctx context.Context, id int64) (*Response, error) {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/arrival/%d", id), nil, nil)
}
