package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-management/thirdparty/inventoryapi"
	"github.com/muhammadheryan/inventory-management/transport"
)

// WebHandler renders the server-side pages. It holds no data of its own; every
// read and write goes through the inventory API.
type WebHandler struct {
	ProductService inventoryapi.ProductService
	ArrivalService inventoryapi.ArrivalService
	pages          map[string]*template.Template
}

func NewWebTransport(ProductService inventoryapi.ProductService, ArrivalService inventoryapi.ArrivalService, metrics *transport.HTTPMetrics) http.Handler {
	mux := mux.NewRouter()

	wh := &WebHandler{
		ProductService: ProductService,
		ArrivalService: ArrivalService,
		pages:          parseTemplates(),
	}

	mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/", wh.Home).Methods(http.MethodGet)

	// products
	mux.HandleFunc("/products", wh.ProductIndex).Methods(http.MethodGet)
	mux.HandleFunc("/products/search", wh.ProductSearch).Methods(http.MethodGet)
	mux.HandleFunc("/products/create", wh.ProductCreateForm).Methods(http.MethodGet)
	mux.HandleFunc("/products/create", wh.ProductCreate).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id:[0-9]+}", wh.ProductDetails).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/edit", wh.ProductEditForm).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/edit", wh.ProductEdit).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id:[0-9]+}/delete", wh.ProductDelete).Methods(http.MethodPost)

	// stock receipts
	mux.HandleFunc("/arrival", wh.ArrivalIndex).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/search", wh.ArrivalSearch).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/create", wh.ArrivalCreateForm).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/create", wh.ArrivalCreate).Methods(http.MethodPost)
	mux.HandleFunc("/arrival/{id:[0-9]+}", wh.ArrivalDetails).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/{id:[0-9]+}/update", wh.ArrivalUpdateForm).Methods(http.MethodGet)
	mux.HandleFunc("/arrival/{id:[0-9]+}/update", wh.ArrivalUpdate).Methods(http.MethodPost)
	mux.HandleFunc("/arrival/{id:[0-9]+}/delete", wh.ArrivalDelete).Methods(http.MethodPost)

	// middleware
	mux.Use(transport.RequestIDMiddleware())
	mux.Use(transport.LoggingMiddleware())
	mux.Use(metrics.Middleware())

	return mux
}

func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home.html", page{Title: "Inventory Management"})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// failRead maps a failed API read onto an error page.
func (h *WebHandler) failRead(w http.ResponseWriter, r *http.Request, err error) {
	if inventoryapi.IsNotFound(err) {
		h.renderError(w, r, http.StatusNotFound, "The requested record does not exist.")
		return
	}
	h.renderError(w, r, http.StatusBadGateway, "The inventory service could not be reached.")
}
