package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

// StockRepository reads the inventory and sales tables.
type StockRepository interface {
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, id int64) (*model.Inventory, error)
	ListSales(ctx context.Context) ([]model.Sales, error)
	GetSales(ctx context.Context, id int64) (*model.Sales, error)
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	inventoryBase = `SELECT i.inventory_id, i.product_id, p.product_name, i.quantity, i.last_updated
FROM inventory i
JOIN product_master p ON p.product_id = i.product_id`

	salesBase = `SELECT s.sales_id, s.product_id, p.product_name, s.quantity, s.sales_date
FROM sales s
JOIN product_master p ON p.product_id = s.product_id`
)

func (s *SQL) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	items := make([]model.Inventory, 0)
	if err := s.conn.SelectContext(ctx, &items, inventoryBase+" ORDER BY i.inventory_id"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	var item model.Inventory
	if err := s.conn.GetContext(ctx, &item, inventoryBase+" WHERE i.inventory_id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) ListSales(ctx context.Context) ([]model.Sales, error) {
	items := make([]model.Sales, 0)
	if err := s.conn.SelectContext(ctx, &items, salesBase+" ORDER BY s.sales_id"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetSales(ctx context.Context, id int64) (*model.Sales, error) {
	var item model.Sales
	if err := s.conn.GetContext(ctx, &item, salesBase+" WHERE s.sales_id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
