package product_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-management/model"
	productRepo "github.com/muhammadheryan/inventory-management/repository/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"product_id", "product_name", "product_description", "price"}

func newRepo(t *testing.T) (productRepo.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return productRepo.NewProductRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Search(t *testing.T) {
	price := decimal.RequireFromString("699.99")

	tests := []struct {
		name      string
		filter    *model.ProductFilter
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "no filter",
			filter:    &model.ProductFilter{},
			wantQuery: "FROM product_master WHERE true ORDER BY product_id",
		},
		{
			name:      "name only",
			filter:    &model.ProductFilter{Name: "top"},
			wantQuery: "WHERE true AND product_name LIKE CONCAT('%', ?, '%') ORDER BY product_id",
			wantArgs:  []driver.Value{"top"},
		},
		{
			name:      "name and price",
			filter:    &model.ProductFilter{Name: "phone", Price: &price},
			wantQuery: "WHERE true AND product_name LIKE CONCAT('%', ?, '%') AND price = CAST(? AS DECIMAL(65,30)) ORDER BY product_id",
			wantArgs:  []driver.Value{"phone", "699.99"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery))
			if len(tt.wantArgs) > 0 {
				expect = expect.WithArgs(tt.wantArgs...)
			}
			expect.WillReturnRows(sqlmock.NewRows(productColumns).AddRow(2, "Smartphone", nil, "699.99"))

			got, err := repo.Search(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Smartphone", got[0].ProductName)
			assert.Nil(t, got[0].ProductDescription)
			assert.True(t, got[0].Price.Equal(price))
		})
	}
}

func TestSQL_Search_PriceIsNotRounded(t *testing.T) {
	repo, mock := newRepo(t)
	price := decimal.RequireFromString("999.994")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE true AND price = CAST(? AS DECIMAL(65,30)) ORDER BY product_id")).
		WithArgs("999.994").
		WillReturnRows(sqlmock.NewRows(productColumns))

	got, err := repo.Search(context.Background(), &model.ProductFilter{Price: &price})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQL_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE product_id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(productColumns))

	got, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_Create_AssignsID(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_master")).
		WithArgs(int64(0), "Notebook", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(21, 1))

	got, err := repo.Create(context.Background(), &model.ProductMaster{ProductName: "Notebook", Price: decimal.RequireFromString("10.50")})
	require.NoError(t, err)
	assert.Equal(t, int64(21), got.ProductID)
}

func TestSQL_Update_ReportsMatchedRows(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_master SET product_name = ?, product_description = ?, price = ? WHERE product_id = ?")).
		WithArgs("Laptop", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	matched, err := repo.Update(context.Background(), &model.ProductMaster{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("999.99")})
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestSQL_Exists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}
