package product

import (
	"context"
	"strings"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	productRepo "github.com/muhammadheryan/inventory-management/repository/product"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgNoProductMatched = "no product matched the search conditions"

// maxStoredPrice is the largest value of a DECIMAL(10,2) price column.
var maxStoredPrice = decimal.RequireFromString("99999999.99")

type ProductApp interface {
	ListProducts(ctx context.Context) ([]model.ProductMaster, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductMaster, error)
	SearchProducts(ctx context.Context, name string, price *decimal.Decimal) ([]model.ProductMaster, error)
	CreateProduct(ctx context.Context, req *model.ProductMaster) (*model.ProductMaster, error)
	UpdateProduct(ctx context.Context, id int64, req *model.ProductMaster) error
	DeleteProduct(ctx context.Context, id int64) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.ProductMaster, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id int64) (*model.ProductMaster, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

// SearchProducts applies a substring filter on the name when it is not blank and
// an exact filter on the price when given. With neither it returns every product.
func (s *productAppImpl) SearchProducts(ctx context.Context, name string, price *decimal.Decimal) ([]model.ProductMaster, error) {
	// no stored price can equal a value the column cannot hold
	if price != nil && !storablePrice(*price) {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrNotFound, msgNoProductMatched)
	}

	filter := &model.ProductFilter{Price: price}
	if strings.TrimSpace(name) != "" {
		filter.Name = name
	}

	items, err := s.productRepo.Search(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("[SearchProducts] error productRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(items) == 0 {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrNotFound, msgNoProductMatched)
	}
	return items, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductMaster) (*model.ProductMaster, error) {
	created, err := s.productRepo.Create(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id int64, req *model.ProductMaster) error {
	if id != req.ProductID {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	matched, err := s.productRepo.Update(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if matched > 0 {
		return nil
	}

	// nothing matched: the row vanished, or the store lost the write to someone else
	exists, err := s.productRepo.Exists(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[UpdateProduct] error productRepo.Exists", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	logger.FromContext(ctx).Error("[UpdateProduct] concurrent update conflict", zap.Int64("product_id", id))
	return errors.SetCustomError(constant.ErrConflict)
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id int64) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[DeleteProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func storablePrice(p decimal.Decimal) bool {
	return p.Equal(p.Truncate(2)) && p.Abs().LessThanOrEqual(maxStoredPrice)
}
