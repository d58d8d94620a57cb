package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/muhammadheryan/inventory-management/model"
	"github.com/muhammadheryan/inventory-management/thirdparty/inventoryapi"
)

func (h *WebHandler) ArrivalIndex(w http.ResponseWriter, r *http.Request) {
	items, err := h.ArrivalService.GetArrivals(r.Context())
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "arrival_index.html", page{Title: "Stock receipts", Data: items})
}

func (h *WebHandler) ArrivalSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	rawDate := strings.TrimSpace(r.URL.Query().Get("date"))
	data := page{Title: "Search stock receipts", Query: map[string]string{"name": name, "date": rawDate}}

	if name == "" && rawDate == "" {
		h.render(w, r, http.StatusOK, "arrival_search.html", data)
		return
	}

	date, err := parseFormDate(rawDate)
	if err != nil {
		data.Errors = []string{"Receipt date must be a date"}
		h.render(w, r, http.StatusBadRequest, "arrival_search.html", data)
		return
	}

	items, err := h.ArrivalService.SearchArrivals(r.Context(), name, date)
	if err != nil {
		if !inventoryapi.IsNotFound(err) {
			h.failRead(w, r, err)
			return
		}
		data.Message = "No stock receipts matched."
	}
	data.Data = items

	h.render(w, r, http.StatusOK, "arrival_search.html", data)
}

func (h *WebHandler) ArrivalDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid receipt id.")
		return
	}

	item, err := h.ArrivalService.GetArrivalByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "arrival_details.html", page{Title: "Stock receipt", Data: item})
}

// ArrivalCreateForm starts a receipt for the product given by ?product_id.
func (h *WebHandler) ArrivalCreateForm(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		h.renderError(w, r, http.StatusBadRequest, "A product must be chosen first.")
		return
	}

	product, err := h.ArrivalService.GetProductName(r.Context(), productID)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	vm := &model.ArrivalViewModel{ProductID: product.ProductID, ProductName: product.ProductName}
	h.render(w, r, http.StatusOK, "arrival_form.html", page{Title: "Receive stock", Data: vm})
}

func (h *WebHandler) ArrivalCreate(w http.ResponseWriter, r *http.Request) {
	vm, msgs := arrivalFromForm(r)
	if len(msgs) > 0 {
		h.render(w, r, http.StatusBadRequest, "arrival_form.html", page{Title: "Receive stock", Data: vm, Errors: msgs})
		return
	}
	vm.ReceiptID = 0

	resp, err := h.ArrivalService.CreateArrival(r.Context(), vm)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ArrivalCreate] error ArrivalService.CreateArrival", resp, err)
		h.render(w, r, http.StatusBadGateway, "arrival_form.html", page{Title: "Receive stock", Data: vm, Errors: []string{msgSaveFailed}})
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *WebHandler) ArrivalUpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid receipt id.")
		return
	}

	item, err := h.ArrivalService.GetArrivalByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "arrival_form.html", page{Title: "Edit stock receipt", Data: item})
}

// ArrivalUpdate reloads the receipt and copies only quantity and receipt date
// from the form onto it.
func (h *WebHandler) ArrivalUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid receipt id.")
		return
	}

	current, err := h.ArrivalService.GetArrivalByID(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err)
		return
	}

	posted, msgs := arrivalFromForm(r)
	current.Quantity = posted.Quantity
	current.ReceiptDate = posted.ReceiptDate
	if len(msgs) > 0 {
		h.render(w, r, http.StatusBadRequest, "arrival_form.html", page{Title: "Edit stock receipt", Data: current, Errors: msgs})
		return
	}

	resp, err := h.ArrivalService.UpdateArrival(r.Context(), current)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ArrivalUpdate] error ArrivalService.UpdateArrival", resp, err)
		h.render(w, r, http.StatusBadGateway, "arrival_form.html", page{Title: "Edit stock receipt", Data: current, Errors: []string{msgSaveFailed}})
		return
	}

	http.Redirect(w, r, "/arrival", http.StatusSeeOther)
}

func (h *WebHandler) ArrivalDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid receipt id.")
		return
	}

	resp, err := h.ArrivalService.DeleteArrival(r.Context(), id)
	if err != nil || !resp.IsSuccessStatusCode() {
		logSaveFailure(r, "[ArrivalDelete] error ArrivalService.DeleteArrival", resp, err)
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			h.renderError(w, r, http.StatusNotFound, "The stock receipt no longer exists.")
			return
		}
		h.renderError(w, r, http.StatusBadGateway, "The stock receipt could not be deleted.")
		return
	}

	http.Redirect(w, r, "/arrival", http.StatusSeeOther)
}
