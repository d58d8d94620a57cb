package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/muhammadheryan/inventory-management/model"
	"github.com/muhammadheryan/inventory-management/thirdparty/inventoryapi"
	"github.com/muhammadheryan/inventory-management/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgSaveFailed = "The inventory service rejected the change."

func (h *WebHandler) ProductIndex(w http.ResponseWriter, r *http.Request) {
	items, err := h.ProductService.GetProducts(r.Context())
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "products_index.html", page{Title: "Products", Data: items})
}

// ProductSearch shows the search form; with no criteria it lists nothing.
func (h *WebHandler) ProductSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	rawPrice := strings.TrimSpace(r.URL.Query().Get("price"))
	data := page{Title: "Search products", Query: map[string]string{"name": name, "price": rawPrice}}

	if name == "" && rawPrice == "" {
		h.render(w, r, http.StatusOK, "products_search.html", data)
		return
	}

	var price *decimal.Decimal
	if rawPrice != "" {
		p, err := decimal.NewFromString(rawPrice)
		if err != nil {
			data.Errors = []string{"Price must be a number"}
			h.render(w, r, http.StatusBadRequest, "products_search.html", data)
			return
		}
		price = &p
	}

	items, err := h.ProductService.SearchProducts(r.Context(), name, price)
	if err != nil {
		if !inventoryapi.IsNotFound(err) {
			h.failRead(w, r, err)
			return
		}
		data.Message = "No products matched."
	}
	data.Data = items

	h.render(w, r, http.StatusOK, "products_search.html", data)
}

func (h *WebHandler) ProductDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid product id.")
		return
	}

	item, err := h.ProductService.GetProductByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "products_details.html", page{Title: item.ProductName, Data: item})
}

func (h *WebHandler) ProductCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "products_form.html", page{Title: "Create product", Data: &model.ProductViewModel{}})
}

func (h *WebHandler) ProductCreate(w http.ResponseWriter, r *http.Request) {
	vm, msgs := productFromForm(r)
	if len(msgs) > 0 {
		h.render(w, r, http.StatusBadRequest, "products_form.html", page{Title: "Create product", Data: vm, Errors: msgs})
		return
	}
	// the store assigns ids to new products
	vm.ProductID = 0

	resp, err := h.ProductService.CreateProduct(r.Context(), vm)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ProductCreate] error ProductService.CreateProduct", resp, err)
		h.render(w, r, http.StatusBadGateway, "products_form.html", page{Title: "Create product", Data: vm, Errors: []string{msgSaveFailed}})
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *WebHandler) ProductEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid product id.")
		return
	}

	item, err := h.ProductService.GetProductByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "products_form.html", page{Title: "Edit product", Data: item})
}

// ProductEdit reloads the product before writing so a vanished product ends
// in a not found page rather than a failed update.
func (h *WebHandler) ProductEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid product id.")
		return
	}

	current, err := h.ProductService.GetProductByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	vm, msgs := productFromForm(r)
	vm.ProductID = current.ProductID
	if len(msgs) > 0 {
		h.render(w, r, http.StatusBadRequest, "products_form.html", page{Title: "Edit product", Data: vm, Errors: msgs})
		return
	}

	resp, err := h.ProductService.UpdateProduct(r.Context(), vm)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ProductEdit] error ProductService.UpdateProduct", resp, err)
		h.render(w, r, http.StatusBadGateway, "products_form.html", page{Title: "Edit product", Data: vm, Errors: []string{msgSaveFailed}})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/products/%d", vm.ProductID), http.StatusSeeOther)
}

func (h *WebHandler) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid product id.")
		return
	}

	resp, err := h.ProductService.DeleteProduct(r.Context(), id)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ProductDelete] error ProductService.DeleteProduct", resp, err)
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			h.renderError(w, r, http.StatusNotFound, "The product no longer exists.")
			return
		}
		h.renderError(w, r, http.StatusBadGateway, "The product could not be deleted.")
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func logSaveFailure(r *http.Request, msg string, resp *inventoryapi.Response, err error) {
	fields := []zap.Field{}
	if err != nil {
		fields = append(fields, zap.String("error", err.Error()))
	}
	if resp != nil {
		fields = append(fields, zap.Int("status", resp.StatusCode), zap.ByteString("body", resp.Body))
	}
	logger.FromContext(r.Context()).Error(msg, fields...)
}
