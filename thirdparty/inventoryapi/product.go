package inventoryapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/muhammadheryan/inventory-management/model"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]model.ProductViewModel, error)
	GetProductByID(ctx context.Context, id int64) (*model.ProductViewModel, error)
	SearchProducts(ctx context.Context, name string, price *decimal.Decimal) ([]model.ProductViewModel, error)
	CreateProduct(ctx context.Context, product *model.ProductViewModel) (*Response, error)
	UpdateProduct(ctx context.Context, product *model.ProductViewModel) (*Response, error)
	DeleteProduct(ctx context.Context, id int64) (*Response, error)
}

type productService struct {
	client *Client
}

func NewProductService(client *Client) ProductService {
	return &productService{client: client}
}

func (s *productService) GetProducts(ctx context.Context) ([]model.ProductViewModel, error) {
	var items []model.ProductViewModel
	if err := s.client.getJSON(ctx, "/products", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*model.ProductViewModel, error) {
	var item model.ProductViewModel
	if err := s.client.getJSON(ctx, fmt.Sprintf("/products/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *productService) SearchProducts(ctx context.Context, name string, price *decimal.Decimal) ([]model.ProductViewModel, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if price != nil {
		query.Set("price", price.String())
	}

	var items []model.ProductViewModel
	if err := s.client.getJSON(ctx, "/products/search", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *model.ProductViewModel) (*Response, error) {
	return s.client.do(ctx, http.MethodPost, "/products", nil, product)
}

func (s *productService) UpdateProduct(ctx context.Context, product *model.ProductViewModel) (*Response, error) {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", product.ProductID), nil, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (*Response, error) {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
