package stock

import (
	"context"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	stockRepo "github.com/muhammadheryan/inventory-management/repository/stock"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	"go.uber.org/zap"
)

// StockApp exposes the inventory and sales tables read-only.
type StockApp interface {
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, id int64) (*model.Inventory, error)
	ListSales(ctx context.Context) ([]model.Sales, error)
	GetSales(ctx context.Context, id int64) (*model.Sales, error)
}

type stockAppImpl struct {
	stockRepo stockRepo.StockRepository
}

func NewStockApp(stockRepo stockRepo.StockRepository) StockApp {
	return &stockAppImpl{stockRepo: stockRepo}
}

func (s *stockAppImpl) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	items, err := s.stockRepo.ListInventory(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[ListInventory] error stockRepo.ListInventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *stockAppImpl) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	item, err := s.stockRepo.GetInventory(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetInventory] error stockRepo.GetInventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}

func (s *stockAppImpl) ListSales(ctx context.Context) ([]model.Sales, error) {
	items, err := s.stockRepo.ListSales(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[ListSales] error stockRepo.ListSales", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *stockAppImpl) GetSales(ctx context.Context, id int64) (*model.Sales, error) {
	item, err := s.stockRepo.GetSales(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetSales] error stockRepo.GetSales", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}
