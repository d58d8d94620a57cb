package arrival

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	arrivalRepo "github.com/muhammadheryan/inventory-management/repository/arrival"
	"github.com/muhammadheryan/inventory-management/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
	"go.uber.org/zap"
)

const msgNoArrivalMatched = "no stock receipt matched the search conditions"

type ArrivalApp interface {
	ListArrivals(ctx context.Context) ([]model.StockReceiptResponse, error)
	GetArrival(ctx context.Context, id int64) (*model.StockReceiptResponse, error)
	SearchArrivals(ctx context.Context, name string, date *time.Time) ([]model.StockReceiptResponse, error)
	CreateArrival(ctx context.Context, req *model.StockReceipt) (*model.StockReceipt, error)
	// UpdateArrival changes quantity and receipt date of the receipt identified by
	// req.ReceiptID and returns every receipt afterwards.
	UpdateArrival(ctx context.Context, req *model.StockReceipt) ([]model.StockReceiptResponse, error)
	DeleteArrival(ctx context.Context, id int64) error
}

// EventPublisher receives stock receipt changes. Optional.
type EventPublisher interface {
	PublishReceiptEvent(ctx context.Context, msg rabbitmq.ReceiptEvent) error
}

type arrivalAppImpl struct {
	arrivalRepo arrivalRepo.ArrivalRepository
	publisher   EventPublisher
}

func NewArrivalApp(arrivalRepo arrivalRepo.ArrivalRepository, publisher EventPublisher) ArrivalApp {
	return &arrivalAppImpl{arrivalRepo: arrivalRepo, publisher: publisher}
}

func (s *arrivalAppImpl) ListArrivals(ctx context.Context) ([]model.StockReceiptResponse, error) {
	items, err := s.arrivalRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[ListArrivals] error arrivalRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *arrivalAppImpl) GetArrival(ctx context.Context, id int64) (*model.StockReceiptResponse, error) {
	result, err := s.arrivalRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetArrival] error arrivalRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *arrivalAppImpl) SearchArrivals(ctx context.Context, name string, date *time.Time) ([]model.StockReceiptResponse, error) {
	filter := &model.ArrivalFilter{Date: date}
	if strings.TrimSpace(name) != "" {
		filter.Name = name
	}

	items, err := s.arrivalRepo.Search(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("[SearchArrivals] error arrivalRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(items) == 0 {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrNotFound, msgNoArrivalMatched)
	}
	return items, nil
}

func (s *arrivalAppImpl) CreateArrival(ctx context.Context, req *model.StockReceipt) (*model.StockReceipt, error) {
	created, err := s.arrivalRepo.Create(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error("[CreateArrival] error arrivalRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ReceiptCreated, created)
	return created, nil
}

func (s *arrivalAppImpl) UpdateArrival(ctx context.Context, req *model.StockReceipt) ([]model.StockReceiptResponse, error) {
	existing, err := s.arrivalRepo.GetReceipt(ctx, req.ReceiptID)
	if err != nil {
		logger.FromContext(ctx).Error("[UpdateArrival] error arrivalRepo.GetReceipt", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// receipt id and product id never change after creation
	existing.Quantity = req.Quantity
	existing.ReceiptDate = req.ReceiptDate

	if err := validatorx.ValidateStruct(existing); err != nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrValidation, strings.Join(validatorx.Messages(err), "; "))
	}

	if err := s.arrivalRepo.UpdateQuantityAndDate(ctx, existing); err != nil {
		logger.FromContext(ctx).Error("[UpdateArrival] error arrivalRepo.UpdateQuantityAndDate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ReceiptUpdated, existing)

	items, err := s.arrivalRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[UpdateArrival] error arrivalRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *arrivalAppImpl) DeleteArrival(ctx context.Context, id int64) error {
	existing, err := s.arrivalRepo.GetReceipt(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[DeleteArrival] error arrivalRepo.GetReceipt", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.arrivalRepo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error("[DeleteArrival] error arrivalRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ReceiptDeleted, existing)
	return nil
}

// publish never fails the caller; a lost event is only logged.
func (s *arrivalAppImpl) publish(ctx context.Context, action constant.ReceiptAction, receipt *model.StockReceipt) {
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.ReceiptEvent{
		Action:      action,
		ReceiptID:   receipt.ReceiptID,
		ProductID:   receipt.ProductID,
		Quantity:    receipt.Quantity,
		ReceiptDate: receipt.ReceiptDate,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.PublishReceiptEvent(ctx, msg); err != nil {
		logger.FromContext(ctx).Error("[publish] error publisher.PublishReceiptEvent",
			zap.String("action", string(action)), zap.String("error", err.Error()))
	}
}
