package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/muhammadheryan/inventory-management/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
)

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Code    string `json:"code" example:"0002"`
	Message string `json:"message" example:"data not found"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, location string, body interface{}) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, body)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeError renders a CustomError; anything else is reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

func validationError(err error) errors.CustomError {
	return errors.SetCustomErrorWithMessage(constant.ErrValidation, strings.Join(validatorx.Messages(err), "; "))
}
