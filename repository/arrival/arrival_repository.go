package arrival

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ArrivalRepository interface {
	List(ctx context.Context) ([]model.StockReceiptResponse, error)
	GetByID(ctx context.Context, id int64) (*model.StockReceiptResponse, error)
	Search(ctx context.Context, filter *model.ArrivalFilter) ([]model.StockReceiptResponse, error)
	GetReceipt(ctx context.Context, id int64) (*model.StockReceipt, error)
	Create(ctx context.Context, data *model.StockReceipt) (*model.StockReceipt, error)
	UpdateQuantityAndDate(ctx context.Context, data *model.StockReceipt) error
	Delete(ctx context.Context, id int64) error
}

func NewArrivalRepository(conn *sqlx.DB) ArrivalRepository {
	return &SQL{conn: conn}
}

const (
	// product_name is always read through the join so it reflects the current product
	projectedReceiptBase = `SELECT sr.receipt_id, sr.product_id, p.product_name, sr.quantity, sr.receipt_date
FROM stock_receipt sr
JOIN product_master p ON p.product_id = sr.product_id
WHERE true`

	getReceiptQuery    = `SELECT receipt_id, product_id, quantity, receipt_date FROM stock_receipt WHERE receipt_id = ?`
	insertReceiptQuery = `INSERT INTO stock_receipt (receipt_id, product_id, quantity, receipt_date) VALUES (?, ?, ?, ?)`
	updateReceiptQuery = `UPDATE stock_receipt SET quantity = ?, receipt_date = ? WHERE receipt_id = ?`
	deleteReceiptQuery = `DELETE FROM stock_receipt WHERE receipt_id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.StockReceiptResponse, error) {
	items := make([]model.StockReceiptResponse, 0)
	if err := s.conn.SelectContext(ctx, &items, projectedReceiptBase+" ORDER BY sr.receipt_id"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id int64) (*model.StockReceiptResponse, error) {
	var item model.StockReceiptResponse
	if err := s.conn.QueryRowxContext(ctx, projectedReceiptBase+" AND sr.receipt_id = ?", id).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) Search(ctx context.Context, filter *model.ArrivalFilter) ([]model.StockReceiptResponse, error) {
	query := projectedReceiptBase
	args := make([]any, 0, 2)

	if filter.Name != "" {
		query += " AND p.product_name LIKE CONCAT('%', ?, '%')"
		args = append(args, filter.Name)
	}
	if filter.Date != nil {
		query += " AND DATE(sr.receipt_date) = ?"
		args = append(args, filter.Date.Format("2006-01-02"))
	}

	items := make([]model.StockReceiptResponse, 0)
	if err := s.conn.SelectContext(ctx, &items, query+" ORDER BY sr.receipt_id", args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetReceipt(ctx context.Context, id int64) (*model.StockReceipt, error) {
	var entity model.StockReceipt
	if err := s.conn.QueryRowxContext(ctx, getReceiptQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.StockReceipt) (*model.StockReceipt, error) {
	result, err := s.conn.ExecContext(ctx, insertReceiptQuery, data.ReceiptID, data.ProductID, data.Quantity, data.ReceiptDate)
	if err != nil {
		return nil, err
	}

	if data.ReceiptID == 0 {
		lastID, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		data.ReceiptID = lastID
	}
	return data, nil
}

func (s *SQL) UpdateQuantityAndDate(ctx context.Context, data *model.StockReceipt) error {
	_, err := s.conn.ExecContext(ctx, updateReceiptQuery, data.Quantity, data.ReceiptDate, data.ReceiptID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id int64) error {
	_, err := s.conn.ExecContext(ctx, deleteReceiptQuery, id)
	return err
}
