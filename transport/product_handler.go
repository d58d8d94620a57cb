package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/model"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
	"github.com/shopspring/decimal"
)

// ListProducts handler
// @Summary List products
// @Description Returns every product ordered by id
// @Tags Products
// @Produce json
// @Success 200 {array} model.ProductMaster
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductMaster
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchProducts handler
// @Summary Search products
// @Description Substring match on name and exact match on price, combined with AND
// @Tags Products
// @Produce json
// @Param name query string false "Part of the product name"
// @Param price query string false "Exact price, e.g. 699.99"
// @Success 200 {array} model.ProductMaster
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/search [get]
func (s *RestHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var price *decimal.Decimal
	if raw := q.Get("price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "price must be a decimal number"))
			return
		}
		price = &p
	}

	res, err := s.ProductApp.SearchProducts(r.Context(), q.Get("name"), price)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.ProductMaster true "Product"
// @Success 201 {object} model.ProductMaster
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductMaster
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, validationError(err))
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, fmt.Sprintf("/products/%d", res.ProductID), res)
}

// UpdateProduct handler
// @Summary Update product
// @Description Overwrites every column; the id in the path must match the body
// @Tags Products
// @Accept json
// @Param id path int true "Product ID"
// @Param request body model.ProductMaster true "Product"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ProductMaster
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, validationError(err))
		return
	}

	if err := s.ProductApp.UpdateProduct(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
