package inventoryapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	"github.com/muhammadheryan/inventory-management/thirdparty/inventoryapi"
	utilsContext "github.com/muhammadheryan/inventory-management/utils/context"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *inventoryapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return inventoryapi.NewClient(srv.URL+"/", 5*time.Second)
}

func TestProductService_GetProducts(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = io.WriteString(w, `[{"product_id":1,"product_name":"Laptop","product_description":"14 inch","price":"999.99"}]`)
	})

	items, err := inventoryapi.NewProductService(client).GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].ProductName)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("999.99")))
	require.NotNil(t, items[0].ProductDescription)
	assert.Equal(t, "14 inch", *items[0].ProductDescription)
}

func TestProductService_SearchProducts(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		price     *decimal.Decimal
		status    int
		wantQuery string
		wantErr   bool
		notFound  bool
	}{
		{
			name:      "name and price are sent as query",
			search:    "top",
			price:     func() *decimal.Decimal { d := decimal.RequireFromString("999.99"); return &d }(),
			status:    http.StatusOK,
			wantQuery: "name=top&price=999.99",
		},
		{
			name:      "empty result is a not found status",
			search:    "zzz",
			status:    http.StatusNotFound,
			wantQuery: "name=zzz",
			wantErr:   true,
			notFound:  true,
		},
		{
			name:      "server failure",
			status:    http.StatusInternalServerError,
			wantQuery: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products/search", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = io.WriteString(w, `[{"product_id":1,"product_name":"Laptop","price":"999.99"}]`)
					return
				}
				_, _ = io.WriteString(w, `{"code":"0002","message":"data not found"}`)
			})

			items, err := inventoryapi.NewProductService(client).SearchProducts(context.Background(), tt.search, tt.price)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.notFound, inventoryapi.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, 1)
		})
	}
}

func TestProductService_Mutations(t *testing.T) {
	var gotMethod, gotPath, gotRequestID string
	var gotBody map[string]interface{}
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotRequestID = r.Header.Get(constant.RequestIDHeader)
		gotBody = nil
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		switch r.Method {
		case http.MethodPost:
			w.Header().Set("Location", "/products/21")
			w.WriteHeader(http.StatusCreated)
		case http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	svc := inventoryapi.NewProductService(client)
	ctx := utilsContext.WithRequestID(context.Background(), "req-1")

	resp, err := svc.CreateProduct(ctx, &model.ProductViewModel{ProductName: "Notebook", Price: decimal.RequireFromString("10.50")})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessStatusCode())
	assert.Equal(t, "/products/21", resp.Location)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "Notebook", gotBody["product_name"])
	assert.Equal(t, "10.5", gotBody["price"])

	resp, err = svc.UpdateProduct(ctx, &model.ProductViewModel{ProductID: 3, ProductName: "Headphones", Price: decimal.RequireFromString("149.99")})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessStatusCode())
	assert.Equal(t, "/products/3", gotPath)

	resp, err = svc.DeleteProduct(ctx, 99)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessStatusCode())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArrivalService(t *testing.T) {
	var gotPath, gotQuery string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		switch r.URL.Path {
		case "/products/3":
			_, _ = io.WriteString(w, `{"product_id":3,"product_name":"Headphones","price":"149.99"}`)
		case "/arrival/search":
			_, _ = io.WriteString(w, `[{"receipt_id":1,"product_id":1,"product_name":"Laptop","quantity":50,"receipt_date":"2024-01-01T10:00:00Z"}]`)
		case "/arrival":
			_, _ = io.WriteString(w, `[]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	svc := inventoryapi.NewArrivalService(client)
	ctx := context.Background()

	name, err := svc.GetProductName(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &model.ProductNameViewModel{ProductID: 3, ProductName: "Headphones"}, name)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items, err := svc.SearchArrivals(ctx, "Lap", &day)
	require.NoError(t, err)
	assert.Equal(t, "date=2024-01-01&name=Lap", gotQuery)
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity)
	require.NotNil(t, items[0].ReceiptDate)

	quantity := 99
	resp, err := svc.UpdateArrival(ctx, &model.ArrivalViewModel{ReceiptID: 1, ProductID: 1, Quantity: quantity, ReceiptDate: &day})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessStatusCode())
	assert.Equal(t, "/arrival", gotPath)

	_, err = svc.GetArrivalByID(ctx, 77)
	assert.True(t, inventoryapi.IsNotFound(err))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := inventoryapi.NewClient(srv.URL, time.Second)
	_, err := inventoryapi.NewProductService(client).GetProducts(context.Background())
	require.Error(t, err)
	assert.False(t, inventoryapi.IsNotFound(err))
}
