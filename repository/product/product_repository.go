package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductMaster, error)
	GetByID(ctx context.Context, id int64) (*model.ProductMaster, error)
	Search(ctx context.Context, filter *model.ProductFilter) ([]model.ProductMaster, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, data *model.ProductMaster) (*model.ProductMaster, error)
	// Update overwrites every column and returns the number of matched rows.
	Update(ctx context.Context, data *model.ProductMaster) (int64, error)
	Delete(ctx context.Context, id int64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsQuery  = `SELECT product_id, product_name, product_description, price FROM product_master`
	searchProductsBase = `SELECT product_id, product_name, product_description, price FROM product_master WHERE true`
	getProductQuery    = `SELECT product_id, product_name, product_description, price FROM product_master WHERE product_id = ?`
	existsProductQuery = `SELECT EXISTS(SELECT 1 FROM product_master WHERE product_id = ?)`
	insertProductQuery = `INSERT INTO product_master (product_id, product_name, product_description, price) VALUES (?, ?, ?, ?)`
	updateProductQuery = `UPDATE product_master SET product_name = ?, product_description = ?, price = ? WHERE product_id = ?`
	deleteProductQuery = `DELETE FROM product_master WHERE product_id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.ProductMaster, error) {
	items := make([]model.ProductMaster, 0)
	if err := s.conn.SelectContext(ctx, &items, listProductsQuery+" ORDER BY product_id"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id int64) (*model.ProductMaster, error) {
	var entity model.ProductMaster
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Search(ctx context.Context, filter *model.ProductFilter) ([]model.ProductMaster, error) {
	query := searchProductsBase
	args := make([]any, 0, 2)

	if filter.Name != "" {
		query += " AND product_name LIKE CONCAT('%', ?, '%')"
		args = append(args, filter.Name)
	}
	if filter.Price != nil {
		// compare as an unrounded DECIMAL, a string operand would otherwise be compared as a double
		query += " AND price = CAST(? AS DECIMAL(65,30))"
		args = append(args, filter.Price.String())
	}

	items := make([]model.ProductMaster, 0)
	if err := s.conn.SelectContext(ctx, &items, query+" ORDER BY product_id", args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsProductQuery, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ProductMaster) (*model.ProductMaster, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery, data.ProductID, data.ProductName, data.ProductDescription, data.Price)
	if err != nil {
		return nil, err
	}

	// product_id 0 lets AUTO_INCREMENT pick the id
	if data.ProductID == 0 {
		lastID, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		data.ProductID = lastID
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductMaster) (int64, error) {
	result, err := s.conn.ExecContext(ctx, updateProductQuery, data.ProductName, data.ProductDescription, data.Price, data.ProductID)
	if err != nil {
		return 0, err
	}
	// the DSN sets clientFoundRows, so this counts matched rows rather than changed rows
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id int64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}
