package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
)

// parseDate accepts a plain calendar day or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// ListArrivals handler
// @Summary List stock receipts
// @Tags Arrival
// @Produce json
// @Success 200 {array} model.StockReceiptResponse
// @Router /arrival [get]
func (s *RestHandler) ListArrivals(w http.ResponseWriter, r *http.Request) {
	res, err := s.ArrivalApp.ListArrivals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetArrival handler
// @Summary Get stock receipt
// @Tags Arrival
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} model.StockReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Router /arrival/{id} [get]
func (s *RestHandler) GetArrival(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ArrivalApp.GetArrival(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchArrivals handler
// @Summary Search stock receipts
// @Description Substring match on product name and calendar day match on receipt date
// @Tags Arrival
// @Produce json
// @Param name query string false "Part of the product name"
// @Param date query string false "Receipt day, 2006-01-02 or RFC 3339"
// @Success 200 {array} model.StockReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /arrival/search [get]
func (s *RestHandler) SearchArrivals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var date *time.Time
	if raw := q.Get("date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "date must be formatted as 2006-01-02"))
			return
		}
		date = &d
	}

	res, err := s.ArrivalApp.SearchArrivals(r.Context(), q.Get("name"), date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateArrival handler
// @Summary Record stock receipt
// @Tags Arrival
// @Accept json
// @Produce json
// @Param request body model.StockReceipt true "Stock receipt"
// @Success 201 {object} model.StockReceipt
// @Failure 400 {object} ErrorResponse
// @Router /arrival [post]
func (s *RestHandler) CreateArrival(w http.ResponseWriter, r *http.Request) {
	var req model.StockReceipt
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, validationError(err))
		return
	}

	res, err := s.ArrivalApp.CreateArrival(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, fmt.Sprintf("/arrival/%d", res.ReceiptID), res)
}

// UpdateArrival handler
// @Summary Update stock receipt
// @Description Changes quantity and receipt date of the receipt named in the body and returns every receipt
// @Tags Arrival
// @Accept json
// @Produce json
// @Param request body model.StockReceipt true "Stock receipt"
// @Success 200 {array} model.StockReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /arrival [put]
func (s *RestHandler) UpdateArrival(w http.ResponseWriter, r *http.Request) {
	var req model.StockReceipt
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ArrivalApp.UpdateArrival(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteArrival handler
// @Summary Delete stock receipt
// @Tags Arrival
// @Param id path int true "Receipt ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /arrival/{id} [delete]
func (s *RestHandler) DeleteArrival(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ArrivalApp.DeleteArrival(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
