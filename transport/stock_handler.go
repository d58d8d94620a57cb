package transport

import "net/http"

// ListInventory handler
// @Summary List inventory
// @Tags Stock
// @Produce json
// @Success 200 {array} model.Inventory
// @Router /inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.ListInventory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetInventory handler
// @Summary Get inventory row
// @Tags Stock
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} model.Inventory
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [get]
func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.GetInventory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListSales handler
// @Summary List sales
// @Tags Stock
// @Produce json
// @Success 200 {array} model.Sales
// @Router /sales [get]
func (s *RestHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.ListSales(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSales handler
// @Summary Get sale
// @Tags Stock
// @Produce json
// @Param id path int true "Sales ID"
// @Success 200 {object} model.Sales
// @Failure 404 {object} ErrorResponse
// @Router /sales/{id} [get]
func (s *RestHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.GetSales(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
