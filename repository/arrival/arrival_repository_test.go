package arrival_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-management/model"
	arrivalRepo "github.com/muhammadheryan/inventory-management/repository/arrival"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (arrivalRepo.ArrivalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return arrivalRepo.NewArrivalRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Search_ByNameAndDay(t *testing.T) {
	repo, mock := newRepo(t)
	jan1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN product_master p ON p.product_id = sr.product_id WHERE true AND p.product_name LIKE CONCAT('%', ?, '%') AND DATE(sr.receipt_date) = ? ORDER BY sr.receipt_id")).
		WithArgs("lap", "2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"receipt_id", "product_id", "product_name", "quantity", "receipt_date"}).
			AddRow(1, 1, "Laptop", 50, jan1))

	got, err := repo.Search(context.Background(), &model.ArrivalFilter{Name: "lap", Date: &jan1})
	require.NoError(t, err)
	assert.Equal(t, []model.StockReceiptResponse{{ReceiptID: 1, ProductID: 1, ProductName: "Laptop", Quantity: 50, ReceiptDate: jan1}}, got)
}

func TestSQL_GetReceipt_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM stock_receipt WHERE receipt_id = ?")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"receipt_id", "product_id", "quantity", "receipt_date"}))

	got, err := repo.GetReceipt(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_UpdateQuantityAndDate(t *testing.T) {
	repo, mock := newRepo(t)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE stock_receipt SET quantity = ?, receipt_date = ? WHERE receipt_id = ?")).
		WithArgs(99, jan2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateQuantityAndDate(context.Background(), &model.StockReceipt{ReceiptID: 1, ProductID: 1, Quantity: 99, ReceiptDate: jan2})
	require.NoError(t, err)
}
