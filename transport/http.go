package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	arrivalapp "github.com/muhammadheryan/inventory-management/application/arrival"
	productapp "github.com/muhammadheryan/inventory-management/application/product"
	stockapp "github.com/muhammadheryan/inventory-management/application/stock"
	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp productapp.ProductApp
	ArrivalApp arrivalapp.ArrivalApp
	StockApp   stockapp.StockApp
}

func NewTransport(ProductApp productapp.ProductApp, ArrivalApp arrivalapp.ArrivalApp, StockApp stockapp.StockApp, metrics *HTTPMetrics) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp: ProductApp,
		ArrivalApp: ArrivalApp,
		StockApp:   StockApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// products; search is registered ahead of {id}
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/search", rh.SearchProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.UpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.DeleteProduct).Methods(http.MethodDelete)

	// stock receipts
	mux.HandleFunc("/arrival", rh.ListArrivals).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/search", rh.SearchArrivals).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/{id:[0-9]+}", rh.GetArrival).Methods(http.MethodGet)
	mux.HandleFunc("/arrival", rh.CreateArrival).Methods(http.MethodPost)
	mux.HandleFunc("/arrival", rh.UpdateArrival).Methods(http.MethodPut)
	mux.HandleFunc("/arrival/{id:[0-9]+}", rh.DeleteArrival).Methods(http.MethodDelete)

	// read-only stock views
	mux.HandleFunc("/inventory", rh.ListInventory).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/{id:[0-9]+}", rh.GetInventory).Methods(http.MethodGet)
	mux.HandleFunc("/sales", rh.ListSales).Methods(http.MethodGet)
	mux.HandleFunc("/sales/{id:[0-9]+}", rh.GetSales).Methods(http.MethodGet)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(metrics.Middleware())

	return mux
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
