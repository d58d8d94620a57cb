package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/muhammadheryan/inventory-management/application/product"
	"github.com/muhammadheryan/inventory-management/constant"
	productmocks "github.com/muhammadheryan/inventory-management/mocks/repository/product"
	"github.com/muhammadheryan/inventory-management/model"
	cerr "github.com/muhammadheryan/inventory-management/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func seedProducts() []model.ProductMaster {
	return []model.ProductMaster{
		{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("999.99")},
		{ProductID: 2, ProductName: "Smartphone", Price: decimal.RequireFromString("699.99")},
	}
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorType() != want {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        []model.ProductMaster
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:   "success: list all products",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything).Return(seedProducts(), nil).Once()
			},
			want: seedProducts(),
		},
		{
			name:   "success: empty store",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything).Return([]model.ProductMaster{}, nil).Once()
			},
			want: []model.ProductMaster{},
		},
		{
			name:   "error: repository failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.ListProducts(tt.args.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		id  int64
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        *model.ProductMaster
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:   "success: product found",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 1},
			mockCall: func(f fields) {
				p := seedProducts()[0]
				f.productRepo.On("GetByID", mock.Anything, int64(1)).Return(&p, nil).Once()
			},
			want: &seedProducts()[0],
		},
		{
			name:   "error: product not found",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 999},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, int64(999)).Return(nil, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 1},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db down")).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.GetProduct(tt.args.ctx, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_SearchProducts(t *testing.T) {
	price := decimal.RequireFromString("699.99")
	unknownPrice := decimal.RequireFromString("1.23")
	subCentPrice := decimal.RequireFromString("999.994")
	overflowPrice := decimal.RequireFromString("100000000")
	trailingZero := decimal.RequireFromString("699.990")

	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx   context.Context
		name  string
		price *decimal.Decimal
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        []model.ProductMaster
		wantErr     bool
		wantErrType constant.ErrorType
		wantErrMsg  string
	}{
		{
			name:   "success: name filter only",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), name: "top"},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{Name: "top"}).
					Return(seedProducts()[:1], nil).
					Once()
			},
			want: seedProducts()[:1],
		},
		{
			name:   "success: price filter only",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), price: &price},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{Price: &price}).
					Return(seedProducts()[1:], nil).
					Once()
			},
			want: seedProducts()[1:],
		},
		{
			name:   "success: blank name is not a filter",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), name: "   "},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{}).
					Return(seedProducts(), nil).
					Once()
			},
			want: seedProducts(),
		},
		{
			name:   "error: name and price combine with AND",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), name: "Laptop", price: &price},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{Name: "Laptop", Price: &price}).
					Return([]model.ProductMaster{}, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
			wantErrMsg:  "no product matched the search conditions",
		},
		{
			name:   "error: no product with price",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), price: &unknownPrice},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{Price: &unknownPrice}).
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
			wantErrMsg:  "no product matched the search conditions",
		},
		{
			name:   "success: trailing zeros still match exactly",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), price: &trailingZero},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, &model.ProductFilter{Price: &trailingZero}).
					Return(seedProducts()[1:], nil).
					Once()
			},
			want: seedProducts()[1:],
		},
		{
			name:        "error: price below one cent is never rounded to a stored price",
			fields:      fields{productRepo: productmocks.NewProductRepository(t)},
			args:        args{ctx: context.Background(), name: "Laptop", price: &subCentPrice},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
			wantErrMsg:  "no product matched the search conditions",
		},
		{
			name:        "error: price beyond the column range is never clipped",
			fields:      fields{productRepo: productmocks.NewProductRepository(t)},
			args:        args{ctx: context.Background(), price: &overflowPrice},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), name: "top"},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.SearchProducts(tt.args.ctx, tt.args.name, tt.args.price)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SearchProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				if tt.wantErrMsg != "" && err.Error() != tt.wantErrMsg {
					t.Fatalf("error message = %q, want %q", err.Error(), tt.wantErrMsg)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SearchProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_CreateProduct(t *testing.T) {
	desc := "14 inch"

	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		req *model.ProductMaster
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductMaster
		wantErr  bool
	}{
		{
			name:   "success: store assigns id",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.ProductMaster{ProductName: "Notebook", ProductDescription: &desc, Price: decimal.RequireFromString("10.50")},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(p *model.ProductMaster) bool {
						return p.ProductName == "Notebook" && p.ProductID == 0
					})).
					Return(&model.ProductMaster{ProductID: 21, ProductName: "Notebook", ProductDescription: &desc, Price: decimal.RequireFromString("10.50")}, nil).
					Once()
			},
			want: &model.ProductMaster{ProductID: 21, ProductName: "Notebook", ProductDescription: &desc, Price: decimal.RequireFromString("10.50")},
		},
		{
			name:   "error: repository failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.ProductMaster{ProductName: "Notebook", Price: decimal.RequireFromString("10.50")},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.CreateProduct(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, constant.ErrInternal)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_UpdateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		id  int64
		req *model.ProductMaster
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:   "success: row overwritten",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.ProductMaster{ProductID: 1, ProductName: "Laptop Pro", Price: decimal.RequireFromString("1299.99")},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Update", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
			},
		},
		{
			name:   "error: path id differs from body id, store untouched",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.ProductMaster{ProductID: 2, ProductName: "Smartphone", Price: decimal.RequireFromString("699.99")},
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidRequest,
		},
		{
			name:   "error: nothing matched and row is gone",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				id:  42,
				req: &model.ProductMaster{ProductID: 42, ProductName: "Ghost", Price: decimal.RequireFromString("1")},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
				f.productRepo.On("Exists", mock.Anything, int64(42)).Return(false, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
		},
		{
			name:   "error: nothing matched but row still exists",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.ProductMaster{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("999.99")},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
				f.productRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrConflict,
		},
		{
			name:   "error: repository failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.ProductMaster{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("999.99")},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Update", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			err := app.UpdateProduct(tt.args.ctx, tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
			}
		})
	}
}

func TestProductApp_DeleteProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		id  int64
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:   "success: product deleted",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 2},
			mockCall: func(f fields) {
				p := seedProducts()[1]
				f.productRepo.On("GetByID", mock.Anything, int64(2)).Return(&p, nil).Once()
				f.productRepo.On("Delete", mock.Anything, int64(2)).Return(nil).Once()
			},
		},
		{
			name:   "error: product not found",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 2},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
		},
		{
			name:   "error: delete failure",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), id: 2},
			mockCall: func(f fields) {
				p := seedProducts()[1]
				f.productRepo.On("GetByID", mock.Anything, int64(2)).Return(&p, nil).Once()
				f.productRepo.On("Delete", mock.Anything, int64(2)).Return(errors.New("fk violation")).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			err := app.DeleteProduct(tt.args.ctx, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
			}
		})
	}
}

// Deleting the same product twice reports NotFound the second time.
func TestProductApp_DeleteProduct_Twice(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	p := seedProducts()[0]
	repo.On("GetByID", mock.Anything, int64(1)).Return(&p, nil).Once()
	repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil).Once()

	app := appproduct.NewProductApp(repo)
	if err := app.DeleteProduct(context.Background(), 1); err != nil {
		t.Fatalf("first DeleteProduct() error = %v", err)
	}
	err := app.DeleteProduct(context.Background(), 1)
	assertErrType(t, err, constant.ErrNotFound)
}
